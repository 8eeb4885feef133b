package subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/domain/user"
	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Subscribe godoc
// @Summary Follow an author
// @Tags Subscriptions
// @Router /users/{id}/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	authorID, ok := parseAuthorID(c)
	if !ok {
		return
	}
	recipesLimit, err := recipesLimitParam(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	resp, err := h.service.Subscribe(c.Request.Context(), middleware.CurrentUserID(c), authorID, recipesLimit)
	if err != nil {
		h.respondError(c, err, "Failed to subscribe")
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	authorID, ok := parseAuthorID(c)
	if !ok {
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), middleware.CurrentUserID(c), authorID); err != nil {
		h.respondError(c, err, "Failed to unsubscribe")
		return
	}
	c.Status(http.StatusNoContent)
}

// List godoc
// @Summary List followed authors with their recipes
// @Tags Subscriptions
// @Router /users/subscriptions [get]
func (h *Handler) List(c *gin.Context) {
	recipesLimit, err := recipesLimitParam(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	limit, offset := pageParams(c)

	authors, total, err := h.service.List(c.Request.Context(), middleware.CurrentUserID(c), recipesLimit, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list subscriptions")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"count":   total,
		"results": authors,
	})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, user.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrSelfSubscribe):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrAlreadySubscribed):
		// this API reports duplicate subscriptions as 400, not 409
		response.Error(c, http.StatusBadRequest, "ALREADY_EXISTS", err.Error())
	case errors.Is(err, ErrNotSubscribed):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func parseAuthorID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return 0, false
	}
	return id, true
}

// recipesLimitParam returns 0 when the parameter is absent; a non-numeric
// or non-positive value is rejected.
func recipesLimitParam(c *gin.Context) (int, error) {
	raw := c.Query("recipes_limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, ErrInvalidLimit
	}
	return limit, nil
}

func pageParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if limit <= 0 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}
