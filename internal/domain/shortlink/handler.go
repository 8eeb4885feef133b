package shortlink

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetLink godoc
// @Summary Get a short link for a recipe
// @Tags Recipes
// @Router /recipes/{id}/get-link [get]
func (h *Handler) GetLink(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return
	}

	url, err := h.service.GetOrCreate(c.Request.Context(), recipeID)
	if err != nil {
		if errors.Is(err, recipe.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create short link")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"short-link": url})
}

func (h *Handler) Redirect(c *gin.Context) {
	target, err := h.service.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve short link")
		return
	}

	c.Redirect(http.StatusFound, target)
}
