package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sectionUC "github.com/portify/portify-api/internal/application/usecase/section"
	"github.com/portify/portify-api/internal/domain/skill"
	"github.com/portify/portify-api/pkg/apperror"
)

type SkillHandler struct {
	useCase *sectionUC.UseCase[*skill.Skill]
}

func NewSkillHandler(uc *sectionUC.UseCase[*skill.Skill]) *SkillHandler {
	return &SkillHandler{useCase: uc}
}

// SkillCategories serves the fixed suggestion set used by skill editors.
func SkillCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": skill.SuggestedCategories})
}

func (h *SkillHandler) Add(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewNotAuthenticated("ownerID not found in context"))
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill", err))
		return
	}

	created, err := h.useCase.Add(c.Request.Context(), ownerID, req.ToDomain())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"error": nil, "success": true, "skill": created})
}

func (h *SkillHandler) Update(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewNotAuthenticated("ownerID not found in context"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewValidation("id", "is not a valid UUID"))
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill", err))
		return
	}

	if err := h.useCase.Update(c.Request.Context(), ownerID, id, req.ToDomain()); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"error": nil, "success": true})
}

func (h *SkillHandler) Delete(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewNotAuthenticated("ownerID not found in context"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewValidation("id", "is not a valid UUID"))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), ownerID, id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"error": nil, "success": true})
}

func (h *SkillHandler) List(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewNotAuthenticated("ownerID not found in context"))
		return
	}

	items, err := h.useCase.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, items)
}
