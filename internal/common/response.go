// File: internal/common/response.go
package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SuccessResponse is the body returned by mutating endpoints.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginFailedResponse is the fixed 401 body of the login endpoint.
type LoginFailedResponse struct {
	Error string `json:"error"`
}

// RespondWithError sends a JSON error response. Unclassified errors become a
// generic 500; their detail only reaches the log.
func RespondWithError(c *gin.Context, err error) {
	apiErr, ok := IsAPIError(err)
	if !ok {
		LoggerFromContext(c).Error("Unhandled internal error being wrapped", zap.Error(err))
		apiErr = ErrInternalServer
	} else if apiErr.Cause != nil {
		LoggerFromContext(c).Error("Request failed",
			zap.String("code", apiErr.Code),
			zap.Error(apiErr.Cause),
		)
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
}

// RespondWithStatus sends err's body with an overridden status code.
func RespondWithStatus(c *gin.Context, status int, err error) {
	apiErr, ok := IsAPIError(err)
	if !ok {
		RespondWithError(c, err)
		return
	}
	cp := *apiErr
	cp.StatusCode = status
	RespondWithError(c, &cp)
}

// RespondLoginFailed sends the deliberately uninformative login failure body.
func RespondLoginFailed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, LoginFailedResponse{Error: ErrAuthenticationFailed.Message})
}

// RespondOK sends a 200 OK response with data as the body.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondCreated sends a 201 Created response with data as the body.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// RespondNoContent sends a 204 No Content response.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
