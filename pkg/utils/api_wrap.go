package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string       `json:"status"`
	Code    int          `json:"code"`
	Message string       `json:"message,omitempty"`
	TraceID string       `json:"trace_id,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// PagedData wraps list results that carry a total row count.
type PagedData struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func RespondValidationError(c *gin.Context, verr *ValidationError) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Invalid request",
		TraceID: traceID(c),
		Errors:  verr.Fields,
	})
}

// HandleServiceError maps service errors to the response envelope. Backend
// failures are logged and answered with a generic message.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		RespondValidationError(c, verr)
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrUnsupportedMedia):
		RespondError(c, http.StatusUnsupportedMediaType, "Unsupported file type")
	case errors.Is(err, ErrFileTooLarge):
		RespondError(c, http.StatusRequestEntityTooLarge, "File too large")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrSlugTaken):
		RespondError(c, http.StatusConflict, "Slug already in use")
	case errors.Is(err, ErrCountryCodeTaken):
		RespondError(c, http.StatusConflict, "Country code already in use")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrReorderFailed):
		logger.Error("reorder failed", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Failed to reorder items")
	default:
		logger.Error("request failed",
			zap.String("trace_id", traceID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
