package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ratelimitPort "ripple/internal/ports/ratelimit"
)

// RateLimit throttles writes per caller. A broken limiter backend never
// blocks the request; the failure is logged and the write goes through.
func RateLimit(limiter ratelimitPort.Limiter, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.Next()
			return
		}

		ok, err := limiter.Allow(c.Request.Context(), userID, limit, window)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "too many requests"})
			return
		}

		c.Next()
	}
}
