package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelcms/internal/models/request_models"
	"travelcms/internal/services"
	"travelcms/pkg/utils"
)

type FaqController struct {
	faqService services.FaqServiceInterface
	logger     *zap.Logger
}

func NewFaqController(faqService services.FaqServiceInterface, logger *zap.Logger) *FaqController {
	return &FaqController{
		faqService: faqService,
		logger:     logger,
	}
}

// ListFaqs godoc
// @Summary List trip FAQs with their images
// @Tags FAQs
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param includeInactive query bool false "Include hidden FAQs and images"
// @Success 200 {object} utils.APIResponse
// @Router /admin/trips/{tripId}/faqs [get]
func (fc *FaqController) ListFaqs(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}

	faqs, err := fc.faqService.ListFaqs(c.Request.Context(), tripID, includeInactive(c))
	if err != nil {
		utils.HandleServiceError(c, fc.logger, err)
		return
	}

	utils.RespondSuccess(c, faqs, "Fetched FAQs successfully")
}

// CreateFaq godoc
// @Summary Add a FAQ to a trip
// @Tags FAQs
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.CreateFaqRequest true "FAQ payload"
// @Success 201 {object} utils.APIResponse
// @Router /admin/trips/{tripId}/faqs [post]
func (fc *FaqController) CreateFaq(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	var req request_models.CreateFaqRequest
	if !bindJSON(c, &req) {
		return
	}

	faq, err := fc.faqService.CreateFaq(c.Request.Context(), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, fc.logger, err)
		return
	}

	utils.RespondCreated(c, faq, "FAQ created successfully")
}

func (fc *FaqController) UpdateFaq(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateFaqRequest
	if !bindJSON(c, &req) {
		return
	}

	faq, err := fc.faqService.UpdateFaq(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, fc.logger, err)
		return
	}

	utils.RespondSuccess(c, faq, "FAQ updated successfully")
}

func (fc *FaqController) DeleteFaq(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := fc.faqService.DeleteFaq(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, fc.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "FAQ deleted successfully")
}

// UploadFaqImage godoc
// @Summary Upload an image for a FAQ
// @Tags FAQs
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "FAQ ID"
// @Param file formData file true "Image"
// @Success 201 {object} utils.APIResponse
// @Router /admin/faqs/{id}/images [post]
func (fc *FaqController) UploadFaqImage(c *gin.Context) {
	faqID, ok := pathID(c, "id")
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

	image, err := fc.faqService.AddImage(c.Request.Context(), faqID, form, file)
	if err != nil {
		utils.HandleServiceError(c, fc.logger, err)
		return
	}

	utils.RespondCreated(c, image, "Image uploaded successfully")
}

func (fc *FaqController) DeleteFaqImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := fc.faqService.DeleteImage(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, fc.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Image deleted successfully")
}
