package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/pkg/response"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// ListIngredients godoc
// @Summary List ingredients, optionally filtered by name prefix
// @Tags Catalog
// @Router /ingredients [get]
func (h *Handler) ListIngredients(c *gin.Context) {
	ingredients, err := h.repo.ListIngredients(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list ingredients")
		return
	}
	response.Success(c, http.StatusOK, ingredients)
}

func (h *Handler) GetIngredient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ingredient ID")
		return
	}

	ing, err := h.repo.GetIngredient(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrIngredientNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load ingredient")
		}
		return
	}
	response.Success(c, http.StatusOK, ing)
}

func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.repo.ListTags(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list tags")
		return
	}
	response.Success(c, http.StatusOK, tags)
}

func (h *Handler) GetTag(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid tag ID")
		return
	}

	tag, err := h.repo.GetTag(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrTagNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load tag")
		}
		return
	}
	response.Success(c, http.StatusOK, tag)
}
