package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"travelcms/pkg/utils"
)

// RateLimit applies one token bucket to every request the server handles.
func RateLimit(perMinute, burst int, logger *zap.Logger) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(perMinute)/60, burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			logger.Warn("rate limit exceeded",
				zap.String("client_ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path))
			utils.RespondError(c, http.StatusTooManyRequests, "Rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}
