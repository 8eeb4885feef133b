package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Add godoc
// @Summary Add a recipe to favorites
// @Tags Favorites
// @Router /recipes/{id}/favorite [post]
func (h *Handler) Add(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	summary, err := h.service.Add(c.Request.Context(), middleware.CurrentUserID(c), recipeID)
	if err != nil {
		h.respondError(c, err, "Failed to add favorite")
		return
	}
	response.Success(c, http.StatusCreated, summary)
}

func (h *Handler) Remove(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), middleware.CurrentUserID(c), recipeID); err != nil {
		h.respondError(c, err, "Failed to remove favorite")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, recipe.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrAlreadyFavorited):
		// this API reports duplicate adds as 400, not 409
		response.Error(c, http.StatusBadRequest, "ALREADY_EXISTS", err.Error())
	case errors.Is(err, ErrNotFavorited):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func parseRecipeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return 0, false
	}
	return id, true
}
