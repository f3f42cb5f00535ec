// File: internal/common/context_helpers.go
package common

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggerFromContext returns the request-scoped logger set by the logging
// middleware, or a no-op logger.
func LoggerFromContext(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(LoggerKey); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.NewNop()
}

// GetRequestIDFromContext retrieves the request ID from the Gin context.
func GetRequestIDFromContext(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
