package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/portify/portify-api/internal/application/usecase/portfolio"
	"github.com/portify/portify-api/pkg/apperror"
)

type PortfolioHandler struct {
	getPortfolio *portfolioUC.GetPortfolioUseCase
}

func NewPortfolioHandler(uc *portfolioUC.GetPortfolioUseCase) *PortfolioHandler {
	return &PortfolioHandler{getPortfolio: uc}
}

// GetPublic serves GET /u/:username without authentication.
func (h *PortfolioHandler) GetPublic(c *gin.Context) {
	username := c.Param("username")

	full, err := h.getPortfolio.ExecutePublic(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, full)
}

func (h *PortfolioHandler) GetOwner(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewNotAuthenticated("ownerID not found in context"))
		return
	}

	full, err := h.getPortfolio.ExecuteOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, full)
}
