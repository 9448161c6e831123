package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelcms/internal/models/request_models"
	"travelcms/internal/services"
	"travelcms/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	logger         *zap.Logger
}

func NewAccountController(accountService services.AccountServiceInterface, logger *zap.Logger) *AccountController {
	return &AccountController{
		accountService: accountService,
		logger:         logger,
	}
}

// Login godoc
// @Summary Admin login
// @Description Authenticate an admin and return a bearer token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /admin/auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, token, "Login successful")
}
