package server

import (
	"time"

	"rbay-web/internal/session"
	"rbay-web/services/web/helpers"
	"rbay-web/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing and a
// generated request id.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()
	requestID := utils.RequestID()
	c.Writer.Header().Set("X-Request-Id", requestID)

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}

// SessionMiddleware resolves the viewer's session once per request and
// injects it into the request context. Header and page render from the same
// resolution, so they cannot disagree within one request.
func SessionMiddleware(resolver *session.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := resolver.Resolve(c.Request.Context(), c.Request)
		if sess != nil {
			c.Set(helpers.SessionContextKey, sess)
		}
		c.Next()
	}
}
