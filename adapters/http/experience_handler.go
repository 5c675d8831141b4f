package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sectionUC "github.com/portify/portify-api/internal/application/usecase/section"
	"github.com/portify/portify-api/internal/domain/experience"
	"github.com/portify/portify-api/pkg/apperror"
)

type ExperienceHandler struct {
	useCase *sectionUC.UseCase[*experience.Experience]
}

func NewExperienceHandler(uc *sectionUC.UseCase[*experience.Experience]) *ExperienceHandler {
	return &ExperienceHandler{useCase: uc}
}

func (h *ExperienceHandler) Add(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewNotAuthenticated("ownerID not found in context"))
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience", err))
		return
	}

	entity, err := req.ToDomain()
	if err != nil {
		c.Error(err)
		return
	}

	created, err := h.useCase.Add(c.Request.Context(), ownerID, entity)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"error": nil, "success": true, "experience": created})
}

func (h *ExperienceHandler) Update(c *gin.Context) {
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

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience", err))
		return
	}

	entity, err := req.ToDomain()
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.useCase.Update(c.Request.Context(), ownerID, id, entity); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"error": nil, "success": true})
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
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

func (h *ExperienceHandler) List(c *gin.Context) {
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
