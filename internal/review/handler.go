// File: internal/review/handler.go
package review

import (
	"wedding_directory_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for review handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new review handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("review_handler")}
}

// RegisterRoutes sets up the review routes. Individual reviews cannot be deleted over HTTP.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/freelancer/:id")
	{
		group.GET("/reviews", h.list)
		group.POST("/review", h.add)
	}
}

// list godoc
// @Summary      List reviews of a freelancer
// @Tags         Review
// @Produce      json
// @Param        id   path      string  true  "Freelancer ID"
// @Success      200  {array}   review.ReviewResponse
// @Failure      500  {object}  common.APIError
// @Router       /freelancer/{id}/reviews [get]
func (h *Handler) list(c *gin.Context) {
	id, ok := common.ParseID(c.Param("id"))
	if !ok {
		common.RespondOK(c, []ReviewResponse{})
		return
	}
	reviews, err := h.service.ListForProfile(c.Request.Context(), id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, reviews)
}

// add godoc
// @Summary      Review a freelancer
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Freelancer ID"
// @Param        request  body      review.AddReviewRequest  true  "Review"
// @Success      201      {object}  review.AddReviewResponse
// @Failure      400      {object}  common.APIError
// @Failure      404      {object}  common.APIError
// @Router       /freelancer/{id}/review [post]
func (h *Handler) add(c *gin.Context) {
	id, ok := common.ParseID(c.Param("id"))
	if !ok {
		common.RespondWithError(c, common.ErrNotFound.WithDetails("Freelancer not found."))
		return
	}
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Add review: Invalid request body", zap.Error(err), zap.String("profile_ref", id.String()))
		common.RespondWithError(c, common.BindingError(err))
		return
	}
	reviewID, err := h.service.AddReview(c.Request.Context(), id, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, AddReviewResponse{Success: true, ReviewID: reviewID})
}
