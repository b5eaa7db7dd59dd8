package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-service/pkg/response"
)

// RateLimit rejects requests above the configured per-minute budget with 429.
// A single process-wide token bucket; the service has no per-user identity.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !mw.limiter.Allow() {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			return
		}
		c.Next()
	}
}
