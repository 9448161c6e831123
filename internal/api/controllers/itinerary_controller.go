package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelcms/internal/models/request_models"
	"travelcms/internal/services"
	"travelcms/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	logger           *zap.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, logger *zap.Logger) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// GetItinerary godoc
// @Summary Get a trip itinerary
// @Description Active days in display order, each with ordered activities and images
// @Tags Itinerary
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/trips/{tripId}/itinerary [get]
func (ic *ItineraryController) GetItinerary(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}

	days, err := ic.itineraryService.GetItinerary(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}

	utils.RespondSuccess(c, days, "Fetched itinerary successfully")
}

// CreateDay godoc
// @Summary Add an itinerary day
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.CreateDayRequest true "Day payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admin/trips/{tripId}/days [post]
func (ic *ItineraryController) CreateDay(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	var req request_models.CreateDayRequest
	if !bindJSON(c, &req) {
		return
	}

	day, err := ic.itineraryService.CreateDay(c.Request.Context(), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}

	utils.RespondCreated(c, day, "Day created successfully")
}

// UpdateDay godoc
// @Summary Update an itinerary day
// @Description Partial update; is_active=false hides the day without touching its position
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Day ID"
// @Param request body request_models.UpdateDayRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Router /admin/days/{id} [put]
func (ic *ItineraryController) UpdateDay(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateDayRequest
	if !bindJSON(c, &req) {
		return
	}

	day, err := ic.itineraryService.UpdateDay(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}

	utils.RespondSuccess(c, day, "Day updated successfully")
}

// DeleteDay godoc
// @Summary Delete an itinerary day with its activities and images
// @Tags Itinerary
// @Param id path string true "Day ID"
// @Success 200 {object} utils.APIResponse
// @Router /admin/days/{id} [delete]
func (ic *ItineraryController) DeleteDay(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ic.itineraryService.DeleteDay(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Day deleted successfully")
}

// CreateActivity godoc
// @Summary Add an activity to a day
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Day ID"
// @Param request body request_models.CreateActivityRequest true "Activity payload"
// @Success 201 {object} utils.APIResponse
// @Router /admin/days/{id}/activities [post]
func (ic *ItineraryController) CreateActivity(c *gin.Context) {
	dayID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request_models.CreateActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := ic.itineraryService.CreateActivity(c.Request.Context(), dayID, req)
	if err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}

	utils.RespondCreated(c, activity, "Activity created successfully")
}

// UpdateActivity godoc
// @Summary Update an activity
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body request_models.UpdateActivityRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Router /admin/activities/{id} [put]
func (ic *ItineraryController) UpdateActivity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := ic.itineraryService.UpdateActivity(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Tags Itinerary
// @Param id path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Router /admin/activities/{id} [delete]
func (ic *ItineraryController) DeleteActivity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ic.itineraryService.DeleteActivity(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Activity deleted successfully")
}

// UploadDayImage godoc
// @Summary Upload an image for a day
// @Tags Itinerary
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Day ID"
// @Param file formData file true "Image (jpeg, png, webp, gif)"
// @Param caption formData string false "Caption"
// @Param order_index formData int false "Position, defaults to 0"
// @Success 201 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Failure 415 {object} utils.APIResponse
// @Router /admin/days/{id}/images [post]
func (ic *ItineraryController) UploadDayImage(c *gin.Context) {
	dayID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var form request_models.UploadImageForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondValidationError(c, utils.FromBindingError(err))
		return
	}
	file, closer, ok := uploadFile(c)
	if !ok {
		return
	}
	defer closer.Close()

	image, err := ic.itineraryService.AddDayImage(c.Request.Context(), dayID, form, file)
	if err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}

	utils.RespondCreated(c, image, "Image uploaded successfully")
}

// UpdateDayImage godoc
// @Summary Update a day image caption, position or visibility
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Image ID"
// @Param request body request_models.UpdateImageRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Router /admin/day-images/{id} [put]
func (ic *ItineraryController) UpdateDayImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateImageRequest
	if !bindJSON(c, &req) {
		return
	}

	image, err := ic.itineraryService.UpdateDayImage(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}

	utils.RespondSuccess(c, image, "Image updated successfully")
}

// DeleteDayImage godoc
// @Summary Delete a day image and its stored file
// @Tags Itinerary
// @Param id path string true "Image ID"
// @Success 200 {object} utils.APIResponse
// @Router /admin/day-images/{id} [delete]
func (ic *ItineraryController) DeleteDayImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ic.itineraryService.DeleteDayImage(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Image deleted successfully")
}
