package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelcms/internal/models/request_models"
	"travelcms/internal/services"
	"travelcms/pkg/utils"
)

type ReorderController struct {
	reorderService services.ReorderServiceInterface
	logger         *zap.Logger
}

func NewReorderController(reorderService services.ReorderServiceInterface, logger *zap.Logger) *ReorderController {
	return &ReorderController{
		reorderService: reorderService,
		logger:         logger,
	}
}

// Reorder godoc
// @Summary Batch update display positions
// @Description Sets order_index for every listed item. Not atomic: on failure some items may already be updated.
// @Tags Ordering
// @Accept json
// @Produce json
// @Param request body request_models.ReorderRequest true "Entity type and new positions"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /admin/reorder [post]
func (rc *ReorderController) Reorder(c *gin.Context) {
	var req request_models.ReorderRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := rc.reorderService.Reorder(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, rc.logger, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"updated": len(req.Items)}, "Items reordered successfully")
}
