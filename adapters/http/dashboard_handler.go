package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dashboardUC "github.com/portify/portify-api/internal/application/usecase/dashboard"
	"github.com/portify/portify-api/pkg/apperror"
)

type DashboardHandler struct {
	dashboard *dashboardUC.DashboardUseCase
}

func NewDashboardHandler(uc *dashboardUC.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: uc}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewNotAuthenticated("ownerID not found in context"))
		return
	}

	out, err := h.dashboard.Execute(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, out)
}
