package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sectionUC "github.com/portify/portify-api/internal/application/usecase/section"
	"github.com/portify/portify-api/internal/domain/project"
	"github.com/portify/portify-api/pkg/apperror"
)

type ProjectHandler struct {
	useCase *sectionUC.UseCase[*project.Project]
}

func NewProjectHandler(uc *sectionUC.UseCase[*project.Project]) *ProjectHandler {
	return &ProjectHandler{useCase: uc}
}

func (h *ProjectHandler) Add(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewNotAuthenticated("ownerID not found in context"))
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for project", err))
		return
	}

	created, err := h.useCase.Add(c.Request.Context(), ownerID, req.ToDomain())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"error": nil, "success": true, "project": created})
}

func (h *ProjectHandler) Update(c *gin.Context) {
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

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for project", err))
		return
	}

	if err := h.useCase.Update(c.Request.Context(), ownerID, id, req.ToDomain()); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"error": nil, "success": true})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
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

func (h *ProjectHandler) List(c *gin.Context) {
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
