// File: internal/account/handler.go
package account

import (
	"errors"
	"net/http"

	"wedding_directory_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for account handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new account handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("account_handler"),
	}
}

// RegisterRoutes sets up the credentialed account routes.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.POST("/login", h.login)
	router.PUT("/change-password", h.changePassword)
	router.DELETE("/freelancer/:id", h.deleteAccount)
}

// login godoc
// @Summary      Log in
// @Description  Returns the profile linked to the credential. The failure body is the same whatever went wrong.
// @Tags         Account
// @Accept       json
// @Produce      json
// @Param        request  body      account.LoginRequest  true  "Credentials"
// @Success      200      {object}  account.ProfileView
// @Failure      401      {object}  common.LoginFailedResponse
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Login: invalid request body", zap.Error(err))
		common.RespondLoginFailed(c)
		return
	}

	profile, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		common.RespondLoginFailed(c)
		return
	}
	common.RespondOK(c, profile)
}

// changePassword godoc
// @Summary      Change password
// @Tags         Account
// @Accept       json
// @Produce      json
// @Param        request  body      account.ChangePasswordRequest  true  "Passwords"
// @Success      200      {object}  common.SuccessResponse
// @Failure      400      {object}  common.APIError
// @Failure      401      {object}  common.APIError
// @Router       /change-password [put]
func (h *Handler) changePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Change password: invalid request body", zap.Error(err))
		common.RespondWithError(c, common.BindingError(err))
		return
	}

	changed, err := h.service.ChangePassword(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	if !changed {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Password was not changed."))
		return
	}
	common.RespondOK(c, common.SuccessResponse{Success: true, Message: "Password changed."})
}

// deleteAccount godoc
// @Summary      Delete a freelancer account
// @Description  Verifies the password, then removes the profile, its login and its reviews, and records the reason for leaving.
// @Tags         Account
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Freelancer ID"
// @Param        request  body      account.DeleteAccountRequest  true  "Reason and password"
// @Success      200      {object}  account.DeleteAccountResponse
// @Failure      400      {object}  common.APIError
// @Failure      500      {object}  common.APIError
// @Router       /freelancer/{id} [delete]
func (h *Handler) deleteAccount(c *gin.Context) {
	id, ok := common.ParseID(c.Param("id"))
	if !ok {
		common.RespondWithStatus(c, http.StatusBadRequest, common.ErrNotFound.WithDetails("Freelancer not found."))
		return
	}

	var req DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Delete account: invalid request body", zap.Error(err), zap.String("profile_id", id.String()))
		common.RespondWithError(c, common.BindingError(err))
		return
	}

	report, err := h.service.DeleteAccount(c.Request.Context(), id, req)
	if err != nil {
		if rejectedDeletion(err) {
			common.RespondWithStatus(c, http.StatusBadRequest, err)
			return
		}
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, DeleteAccountResponse{Success: true, Message: "Account deleted.", Report: report})
}

// rejectedDeletion reports whether err is a refusal that this endpoint
// surfaces as 400 rather than its own status.
func rejectedDeletion(err error) bool {
	return errors.Is(err, common.ErrNotFound) ||
		errors.Is(err, common.ErrUnauthorized) ||
		errors.Is(err, common.ErrAuthenticationFailed)
}
