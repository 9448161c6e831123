package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"travelcms/internal/models/request_models"
	"travelcms/pkg/utils"
)

type stubReorderService struct {
	calls int
	err   error
	last  request_models.ReorderRequest
}

func (s *stubReorderService) Reorder(ctx context.Context, req request_models.ReorderRequest) error {
	s.calls++
	s.last = req
	return s.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func serveReorder(t *testing.T, svc *stubReorderService, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	r := gin.New()
	r.POST("/admin/reorder", NewReorderController(svc, zaptest.NewLogger(t)).Reorder)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/reorder", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestReorderHandlerSuccess(t *testing.T) {
	svc := &stubReorderService{}
	id := uuid.NewString()
	w, resp := serveReorder(t, svc, fmt.Sprintf(`{"entityType":"faq","items":[{"id":%q,"order_index":0}]}`, id))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Status)
	require.Equal(t, 1, svc.calls)
	assert.Equal(t, "faq", svc.last.EntityType)
	require.Len(t, svc.last.Items, 1)
	assert.Equal(t, 0, *svc.last.Items[0].OrderIndex)
}

func TestReorderHandlerRejectsBadInput(t *testing.T) {
	id := uuid.NewString()
	tests := []struct {
		name string
		body string
	}{
		{"unknown entity", fmt.Sprintf(`{"entityType":"trip","items":[{"id":%q,"order_index":1}]}`, id)},
		{"empty items", `{"entityType":"day","items":[]}`},
		{"missing items", `{"entityType":"day"}`},
		{"bad uuid", `{"entityType":"day","items":[{"id":"abc","order_index":1}]}`},
		{"missing order index", fmt.Sprintf(`{"entityType":"day","items":[{"id":%q}]}`, id)},
		{"string order index", fmt.Sprintf(`{"entityType":"day","items":[{"id":%q,"order_index":"1"}]}`, id)},
		{"fractional order index", fmt.Sprintf(`{"entityType":"day","items":[{"id":%q,"order_index":1.5}]}`, id)},
		{"malformed json", `{"entityType":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubReorderService{}
			w, resp := serveReorder(t, svc, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "error", resp.Status)
			assert.NotEmpty(t, resp.Errors)
			assert.Zero(t, svc.calls, "service must not run on invalid input")
		})
	}
}

func TestReorderHandlerHidesBackendDetail(t *testing.T) {
	svc := &stubReorderService{err: fmt.Errorf("%w: 1 of 3 updates failed", utils.ErrReorderFailed)}
	w, resp := serveReorder(t, svc, fmt.Sprintf(`{"entityType":"image","items":[{"id":%q,"order_index":2}]}`, uuid.NewString()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to reorder items", resp.Message)
	assert.NotContains(t, w.Body.String(), "1 of 3")
}

func TestReorderHandlerPassesServiceValidation(t *testing.T) {
	svc := &stubReorderService{err: utils.NewValidationError("items[0].id", "must be a valid UUID")}
	w, resp := serveReorder(t, svc, fmt.Sprintf(`{"entityType":"day","items":[{"id":%q,"order_index":2}]}`, uuid.NewString()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "items[0].id", resp.Errors[0].Field)
}
