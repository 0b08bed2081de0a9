package handler

import (
	"github.com/crown/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-only brokerage dashboard
type DashboardHandler struct {
	BaseHandler
	dashboardService *report.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *report.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats godoc
// @ID           getDashboardStats
// @Summary      Dashboard figures
// @Description  Revenue from sold cars, value of the unsold inventory, counts, and per-make and per-status breakdowns
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} APIResponse[report.DashboardResponse]
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}
