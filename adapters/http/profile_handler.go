package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/portify/portify-api/internal/application/usecase/profile"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc, logger: log}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewNotAuthenticated("ownerID not found in context"))
		return
	}

	p, err := h.profileUseCase.ExecuteGet(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(p))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewNotAuthenticated("ownerID not found in context"))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		OwnerID:   ownerID,
		FullName:  req.FullName,
		Headline:  req.Headline,
		Bio:       req.Bio,
		Location:  req.Location,
		Website:   req.Website,
		Github:    req.Github,
		Linkedin:  req.Linkedin,
		Twitter:   req.Twitter,
		Instagram: req.Instagram,
		Youtube:   req.Youtube,
		Dribbble:  req.Dribbble,
		IsPublic:  req.IsPublic,
	}
	p, err := h.profileUseCase.ExecuteUpdate(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"error": nil, "success": true, "profile": ToProfileDTO(p)})
}

func (h *ProfileHandler) UpdateAvatar(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewNotAuthenticated("ownerID not found in context"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewValidation("file", "is required"))
		return
	}
	if fileHeader.Size > profileUC.MaxAvatarSize {
		c.Error(apperror.NewValidation("file", "must be at most 5MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	output, err := h.profileUseCase.ExecuteUpdateAvatar(c.Request.Context(), profileUC.UpdateAvatarInput{
		OwnerID: ownerID,
		File:    file,
		Size:    fileHeader.Size,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"error": nil, "success": true, "avatar_url": output.AvatarURL})
}
