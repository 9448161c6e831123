package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelcms/internal/services"
	"travelcms/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardService, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

// GetDashboard godoc
// @Summary Catalogue overview for the admin home screen
// @Tags Dashboard
// @Produce json
// @Param top query int false "Number of countries to rank (default 5, max 50)"
// @Success 200 {object} utils.APIResponse
// @Router /admin/dashboard [get]
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	top := 0
	if raw := c.Query("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondValidationError(c, utils.NewValidationError("top", "must be an integer"))
			return
		}
		top = n
	}

	report, err := dc.dashboardService.BuildDashboard(c.Request.Context(), top)
	if err != nil {
		utils.HandleServiceError(c, dc.logger, err)
		return
	}

	utils.RespondSuccess(c, report, "Fetched dashboard successfully")
}
