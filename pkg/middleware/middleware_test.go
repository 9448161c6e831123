package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"travelcms/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func guardedRouter(jwt *utils.JWTManager) *gin.Engine {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	admin := r.Group("/admin", JWTAuthMiddleware(jwt), RoleMiddleware("admin"))
	admin.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserID))
	})
	return r
}

func TestAdminGuard(t *testing.T) {
	jwt := utils.NewJWTManager("secret", time.Hour)
	r := guardedRouter(jwt)
	adminID := uuid.New()

	adminToken, err := jwt.CreateToken(adminID, "admin")
	require.NoError(t, err)
	editorToken, err := jwt.CreateToken(uuid.New(), "editor")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"wrong role", "Bearer " + editorToken, http.StatusForbidden},
		{"admin", "Bearer " + adminToken, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.code, w.Code)
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, adminID.String(), w.Body.String())
}

func TestTraceIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("trace_id")) })

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Body.String())
	assert.Equal(t, incoming, w.Header().Get("X-Trace-ID"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
	assert.NotEqual(t, "<script>", w.Header().Get("X-Trace-ID"))
}

func TestRateLimitRejectsOverBurst(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(1, 2, zaptest.NewLogger(t)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}
