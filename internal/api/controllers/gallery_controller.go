package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelcms/internal/models/request_models"
	"travelcms/internal/services"
	"travelcms/pkg/utils"
)

type GalleryController struct {
	galleryService services.GalleryServiceInterface
	logger         *zap.Logger
}

func NewGalleryController(galleryService services.GalleryServiceInterface, logger *zap.Logger) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
		logger:         logger,
	}
}

// ListGallery godoc
// @Summary List trip gallery images in display order
// @Tags Gallery
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(24)
// @Param includeInactive query bool false "Include hidden images"
// @Success 200 {object} utils.APIResponse
// @Router /admin/trips/{tripId}/gallery [get]
func (gc *GalleryController) ListGallery(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	page, pageSize, ok := pageParams(c, 24)
	if !ok {
		return
	}

	images, total, err := gc.galleryService.ListGallery(c.Request.Context(), tripID, includeInactive(c), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, gc.logger, err)
		return
	}

	utils.RespondSuccess(c, utils.PagedData{
		Items:    images,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, "Fetched gallery successfully")
}

// UploadGalleryImage godoc
// @Summary Upload a gallery image
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param file formData file true "Image"
// @Success 201 {object} utils.APIResponse
// @Router /admin/trips/{tripId}/gallery [post]
func (gc *GalleryController) UploadGalleryImage(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
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

	image, err := gc.galleryService.AddImage(c.Request.Context(), tripID, form, file)
	if err != nil {
		utils.HandleServiceError(c, gc.logger, err)
		return
	}

	utils.RespondCreated(c, image, "Image uploaded successfully")
}

func (gc *GalleryController) UpdateGalleryImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateImageRequest
	if !bindJSON(c, &req) {
		return
	}

	image, err := gc.galleryService.UpdateImage(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, gc.logger, err)
		return
	}

	utils.RespondSuccess(c, image, "Image updated successfully")
}

func (gc *GalleryController) DeleteGalleryImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := gc.galleryService.DeleteImage(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, gc.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Image deleted successfully")
}
