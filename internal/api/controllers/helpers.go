package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"travelcms/internal/services"
	"travelcms/pkg/utils"
)

// pathID parses a UUID path parameter, answering 400 when it is malformed.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondValidationError(c, utils.NewValidationError(name, "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.RespondValidationError(c, utils.FromBindingError(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		utils.RespondValidationError(c, utils.FromBindingError(err))
		return false
	}
	return true
}

func pageParams(c *gin.Context, defaultSize int) (int, int, bool) {
	page, pageSize, err := utils.ParsePage(
		c.DefaultQuery("page", "1"),
		c.DefaultQuery("pageSize", strconv.Itoa(defaultSize)),
	)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPage) {
			utils.RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
		} else {
			utils.RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
		}
		return 0, 0, false
	}
	return page, pageSize, true
}

func includeInactive(c *gin.Context) bool {
	v, _ := strconv.ParseBool(c.Query("includeInactive"))
	return v
}

// uploadFile opens the multipart "file" field. The caller closes the file.
func uploadFile(c *gin.Context) (services.UploadedFile, multipart.File, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.RespondValidationError(c, utils.NewValidationError("file", "is required"))
		return services.UploadedFile{}, nil, false
	}
	f, err := header.Open()
	if err != nil {
		utils.RespondValidationError(c, utils.NewValidationError("file", "could not be read"))
		return services.UploadedFile{}, nil, false
	}
	return services.UploadedFile{Name: header.Filename, Size: header.Size, Reader: f}, f, true
}
