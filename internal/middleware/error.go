// File: internal/middleware/error.go
package middleware

import (
	"net/http"

	"wedding_directory_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler creates a Gin middleware for centralized error handling of
// errors attached with c.Error.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ginErr := c.Errors.Last()
		if apiErr, ok := common.IsAPIError(ginErr.Err); ok {
			c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
			return
		}
		logger.Error("Unhandled application error",
			zap.Error(ginErr.Err),
			zap.String("path", c.Request.URL.Path),
			zap.Any("meta", ginErr.Meta),
			zap.String("request_id", common.GetRequestIDFromContext(c)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, common.ErrInternalServer)
	}
}

// NoRoute answers unknown endpoints with the standard error body.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		common.RespondWithError(c, common.ErrNotFound.WithDetails("The requested endpoint does not exist."))
	}
}

// NoMethod answers known paths hit with an unsupported method.
func NoMethod() gin.HandlerFunc {
	return func(c *gin.Context) {
		common.RespondWithError(c, common.ErrMethodNotAllowed)
	}
}
