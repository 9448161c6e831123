package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelcms/internal/models/request_models"
	"travelcms/internal/services"
	"travelcms/pkg/utils"
)

type CountryController struct {
	countryService services.CountryServiceInterface
	logger         *zap.Logger
}

func NewCountryController(countryService services.CountryServiceInterface, logger *zap.Logger) *CountryController {
	return &CountryController{
		countryService: countryService,
		logger:         logger,
	}
}

// ListCountries godoc
// @Summary List countries by name
// @Tags Countries
// @Produce json
// @Param activeOnly query bool false "Only active countries"
// @Success 200 {object} utils.APIResponse
// @Router /admin/countries [get]
func (cc *CountryController) ListCountries(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("activeOnly"))
	countries, err := cc.countryService.ListCountries(c.Request.Context(), activeOnly)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}
	utils.RespondSuccess(c, countries, "Fetched countries successfully")
}

func (cc *CountryController) CreateCountry(c *gin.Context) {
	var req request_models.CreateCountryRequest
	if !bindJSON(c, &req) {
		return
	}
	country, err := cc.countryService.CreateCountry(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}
	utils.RespondCreated(c, country, "Country created successfully")
}

func (cc *CountryController) UpdateCountry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateCountryRequest
	if !bindJSON(c, &req) {
		return
	}
	country, err := cc.countryService.UpdateCountry(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}
	utils.RespondSuccess(c, country, "Country updated successfully")
}

func (cc *CountryController) DeleteCountry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := cc.countryService.DeleteCountry(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Country deleted successfully")
}
