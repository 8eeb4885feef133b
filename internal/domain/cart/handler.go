package cart

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
// @Summary Add a recipe to the shopping cart
// @Tags ShoppingCart
// @Router /recipes/{id}/shopping_cart [post]
func (h *Handler) Add(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	summary, err := h.service.Add(c.Request.Context(), middleware.CurrentUserID(c), recipeID)
	if err != nil {
		h.respondError(c, err, "Failed to add to shopping cart")
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
		h.respondError(c, err, "Failed to remove from shopping cart")
		return
	}
	c.Status(http.StatusNoContent)
}

// Download godoc
// @Summary Download the aggregated shopping list
// @Description Returns the list as a text attachment; 204 when the cart is empty.
// @Tags ShoppingCart
// @Router /recipes/download_shopping_cart [get]
func (h *Handler) Download(c *gin.Context) {
	report, filename, err := h.service.BuildReport(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			c.Status(http.StatusNoContent)
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build shopping list")
		return
	}

	response.Attachment(c, filename, []byte(report))
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, recipe.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrAlreadyInCart):
		// this API reports duplicate adds as 400, not 409
		response.Error(c, http.StatusBadRequest, "ALREADY_EXISTS", err.Error())
	case errors.Is(err, ErrNotInCart):
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
