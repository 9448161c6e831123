package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type sample struct {
	Kind  string `binding:"required,oneof=a b"`
	Items []struct {
		ID string `binding:"required,uuid"`
	} `binding:"required,min=1,dive"`
}

func TestFromBindingErrorFields(t *testing.T) {
	in := sample{Kind: "c", Items: []struct {
		ID string `binding:"required,uuid"`
	}{{ID: "nope"}}}

	err := binding.Validator.ValidateStruct(&in)
	require.Error(t, err)

	verr := FromBindingError(err)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "Kind", verr.Fields[0].Field)
	assert.Equal(t, "must be one of: a b", verr.Fields[0].Message)
	assert.Equal(t, "Items[0].ID", verr.Fields[1].Field)
	assert.Equal(t, "must be a valid UUID", verr.Fields[1].Message)
	assert.ErrorIs(t, verr, ErrInvalidInput)

	plain := FromBindingError(errors.New("unexpected EOF"))
	assert.Equal(t, "body", plain.Fields[0].Field)
}

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		err     error
		code    int
		message string
	}{
		{NewValidationError("x", "bad"), http.StatusBadRequest, "Invalid request"},
		{ErrTripNotFound, http.StatusNotFound, "Trip not found"},
		{ErrRecordNotFound, http.StatusNotFound, "Not found"},
		{ErrSlugTaken, http.StatusConflict, "Slug already in use"},
		{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{ErrUnsupportedMedia, http.StatusUnsupportedMediaType, "Unsupported file type"},
		{ErrFileTooLarge, http.StatusRequestEntityTooLarge, "File too large"},
		{ErrReorderFailed, http.StatusInternalServerError, "Failed to reorder items"},
		{errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("trace_id", "trace-1")
		HandleServiceError(c, zaptest.NewLogger(t), tt.err)

		var resp APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, tt.code, w.Code, tt.err.Error())
		assert.Equal(t, tt.message, resp.Message)
		assert.Equal(t, "trace-1", resp.TraceID)
	}
}

func TestHandleServiceErrorLogsReorderFailureOnce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("trace_id", "trace-2")
	err := fmt.Errorf("%w: faq: 1 of 3 updates failed: item x: connection reset", ErrReorderFailed)
	HandleServiceError(c, zap.New(core), err)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zap.ErrorLevel, entry.Level)
	assert.Equal(t, "trace-2", entry.ContextMap()["trace_id"])
	assert.Contains(t, entry.ContextMap()["error"], "1 of 3 updates failed")
	assert.NotContains(t, w.Body.String(), "connection reset")
}
