package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelcms/internal/infra"
	"travelcms/pkg/utils"
)

type HealthController struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewHealthController(db *gorm.DB, logger *zap.Logger) *HealthController {
	return &HealthController{db: db, logger: logger}
}

func (hc *HealthController) Health(c *gin.Context) {
	if err := infra.HealthCheck(c.Request.Context(), hc.db); err != nil {
		hc.logger.Error("database health check failed", zap.Error(err))
		utils.RespondError(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	utils.RespondSuccess(c, gin.H{"database": "ok"}, "healthy")
}
