// File: internal/freelancer/handler.go
package freelancer

import (
	"net/http"

	"wedding_directory_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for freelancer handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new freelancer handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("freelancer_handler"),
	}
}

// RegisterRoutes sets up the profile routes. DELETE /freelancer/:id belongs
// to the account handler.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/freelancer")
	{
		group.GET("", h.search)
		group.POST("", h.create)
		group.GET("/vocabulary", h.vocabulary)
		group.GET("/:id", h.getByID)
		group.PUT("/:id", h.update)
	}
}

// search godoc
// @Summary      List freelancers
// @Description  Returns every profile matching the filters. Results are not paginated.
// @Tags         Freelancer
// @Produce      json
// @Param        type         query  string  false  "Freelancer type"  Enums(makeup-artist, photographer, videographer)
// @Param        specialized  query  []string  false  "Any of these specializations"  collectionFormat(multi)
// @Param        q            query  string  false  "Free text over name, bio and portfolios"
// @Param        minRate      query  int     false  "Minimum rate (requires rateUnit)"
// @Param        maxRate      query  int     false  "Maximum rate (requires rateUnit)"
// @Param        rateUnit     query  string  false  "Rate unit"  Enums(hour, session)
// @Success      200  {array}   freelancer.Freelancer
// @Failure      400  {object}  common.APIError
// @Failure      500  {object}  common.APIError
// @Router       /freelancer [get]
func (h *Handler) search(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Debug("Search freelancers: invalid query", zap.Error(err))
		common.RespondWithError(c, common.BindingError(err))
		return
	}
	results, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	if results == nil {
		results = []Freelancer{}
	}
	common.RespondOK(c, results)
}

// getByID godoc
// @Summary      Get a freelancer
// @Tags         Freelancer
// @Produce      json
// @Param        id   path      string  true  "Freelancer ID"
// @Success      200  {object}  freelancer.Freelancer
// @Failure      404  {object}  common.APIError
// @Router       /freelancer/{id} [get]
func (h *Handler) getByID(c *gin.Context) {
	id, ok := common.ParseID(c.Param("id"))
	if !ok {
		common.RespondWithError(c, common.ErrNotFound.WithDetails("Freelancer not found."))
		return
	}
	f, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, f)
}

// create godoc
// @Summary      Create a freelancer
// @Description  Creates a profile. Supplying username and password together also provisions a login.
// @Tags         Freelancer
// @Accept       json
// @Produce      json
// @Param        request  body      freelancer.CreateFreelancerRequest  true  "Profile"
// @Success      201      {object}  freelancer.CreateFreelancerResponse
// @Failure      400      {object}  common.APIError
// @Failure      409      {object}  common.APIError
// @Failure      500      {object}  common.APIError
// @Router       /freelancer [post]
func (h *Handler) create(c *gin.Context) {
	var req CreateFreelancerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create freelancer: Invalid request body", zap.Error(err))
		common.RespondWithError(c, common.BindingError(err))
		return
	}
	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, CreateFreelancerResponse{Success: true, FreelancerID: id})
}

// update godoc
// @Summary      Update a freelancer
// @Description  Replaces the mutable profile fields. The linked login and creation date are never changed.
// @Tags         Freelancer
// @Accept       json
// @Produce      json
// @Param        id       path      string                              true  "Freelancer ID"
// @Param        request  body      freelancer.UpdateFreelancerRequest  true  "Profile"
// @Success      200      {object}  freelancer.UpdateFreelancerResponse
// @Failure      400      {object}  common.APIError
// @Failure      500      {object}  common.APIError
// @Router       /freelancer/{id} [put]
func (h *Handler) update(c *gin.Context) {
	notFound := common.ErrNotFound.WithDetails("Freelancer not found.")
	id, ok := common.ParseID(c.Param("id"))
	if !ok {
		common.RespondWithStatus(c, http.StatusBadRequest, notFound)
		return
	}
	var req UpdateFreelancerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Update freelancer: Invalid request body", zap.Error(err), zap.String("id", id.String()))
		common.RespondWithError(c, common.BindingError(err))
		return
	}
	matched, modified, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	if !matched {
		common.RespondWithStatus(c, http.StatusBadRequest, notFound)
		return
	}
	message := "Freelancer profile is unchanged."
	if modified {
		message = "Freelancer profile updated."
	}
	common.RespondOK(c, UpdateFreelancerResponse{Success: true, Modified: modified, Message: message})
}

// vocabulary godoc
// @Summary      Freelancer vocabulary
// @Description  Lists the accepted types, rate units and specializations.
// @Tags         Freelancer
// @Produce      json
// @Success      200  {object}  freelancer.Vocabulary
// @Router       /freelancer/vocabulary [get]
func (h *Handler) vocabulary(c *gin.Context) {
	common.RespondOK(c, GetVocabulary())
}
