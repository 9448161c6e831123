package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelcms/internal/models/request_models"
	"travelcms/internal/services"
	"travelcms/pkg/utils"
)

type TripController struct {
	tripService     services.TripServiceInterface
	scheduleService services.ScheduleServiceInterface
	logger          *zap.Logger
}

func NewTripController(
	tripService services.TripServiceInterface,
	scheduleService services.ScheduleServiceInterface,
	logger *zap.Logger,
) *TripController {
	return &TripController{
		tripService:     tripService,
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// ListTrips godoc
// @Summary List trips
// @Description Filtered, sorted and paginated trip rows with the total count
// @Tags Trips
// @Produce json
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param countryId query string false "Country ID"
// @Param search query string false "Title search"
// @Param active query bool false "Active flag"
// @Param sort query string false "created_desc|created_asc|title_asc|price_asc|price_desc"
// @Success 200 {object} utils.APIResponse
// @Router /admin/trips [get]
func (tc *TripController) ListTrips(c *gin.Context) {
	page, pageSize, ok := pageParams(c, 20)
	if !ok {
		return
	}
	var query request_models.ListTripsQuery
	if !bindQuery(c, &query) {
		return
	}
	query.Page, query.PageSize = page, pageSize

	trips, total, err := tc.tripService.ListTrips(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}

	utils.RespondSuccess(c, utils.PagedData{
		Items:    trips,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, "Fetched trips successfully")
}

// GetTrip godoc
// @Summary Get a trip
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/trips/{tripId} [get]
func (tc *TripController) GetTrip(c *gin.Context) {
	id, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	trip, err := tc.tripService.GetTrip(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	utils.RespondSuccess(c, trip, "Fetched trip successfully")
}

// CreateTrip godoc
// @Summary Create a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admin/trips [post]
func (tc *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if !bindJSON(c, &req) {
		return
	}
	trip, err := tc.tripService.CreateTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	utils.RespondCreated(c, trip, "Trip created successfully")
}

// UpdateTrip godoc
// @Summary Update a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Router /admin/trips/{tripId} [put]
func (tc *TripController) UpdateTrip(c *gin.Context) {
	id, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	var req request_models.UpdateTripRequest
	if !bindJSON(c, &req) {
		return
	}
	trip, err := tc.tripService.UpdateTrip(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip and everything under it
// @Tags Trips
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Router /admin/trips/{tripId} [delete]
func (tc *TripController) DeleteTrip(c *gin.Context) {
	id, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	if err := tc.tripService.DeleteTrip(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

func (tc *TripController) ListSchedules(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	schedules, err := tc.scheduleService.ListSchedules(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	utils.RespondSuccess(c, schedules, "Fetched schedules successfully")
}

func (tc *TripController) CreateSchedule(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	var req request_models.CreateScheduleRequest
	if !bindJSON(c, &req) {
		return
	}
	schedule, err := tc.scheduleService.CreateSchedule(c.Request.Context(), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	utils.RespondCreated(c, schedule, "Schedule created successfully")
}

func (tc *TripController) UpdateSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateScheduleRequest
	if !bindJSON(c, &req) {
		return
	}
	schedule, err := tc.scheduleService.UpdateSchedule(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	utils.RespondSuccess(c, schedule, "Schedule updated successfully")
}

func (tc *TripController) DeleteSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := tc.scheduleService.DeleteSchedule(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Schedule deleted successfully")
}
