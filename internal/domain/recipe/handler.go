package recipe

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary List recipes with optional filters
// @Description Filters: author (id), tags (slug, repeatable, match-any),
// @Description is_favorited and is_in_shopping_cart (scoped to the caller).
// @Tags Recipes
// @Router /recipes [get]
func (h *Handler) List(c *gin.Context) {
	viewerID := middleware.CurrentUserID(c)
	limit, offset := pageParams(c)

	f := Filter{
		TagSlugs: c.QueryArray("tags"),
		Limit:    limit,
		Offset:   offset,
	}
	if author := c.Query("author"); author != "" {
		id, err := strconv.ParseInt(author, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid author ID")
			return
		}
		f.AuthorID = id
	}
	// the boolean flags are ignored for anonymous callers
	if viewerID > 0 {
		if boolParam(c, "is_favorited") {
			f.FavoritedBy = viewerID
		}
		if boolParam(c, "is_in_shopping_cart") {
			f.InCartOf = viewerID
		}
	}

	recipes, total, err := h.service.List(c.Request.Context(), viewerID, f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list recipes")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"count":   total,
		"results": recipes,
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	rec, err := h.service.Get(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		h.respondError(c, err, "Failed to load recipe")
		return
	}
	response.Success(c, http.StatusOK, rec)
}

// Create godoc
// @Summary Create a recipe
// @Tags Recipes
// @Router /recipes [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rec, err := h.service.Create(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		h.respondError(c, err, "Failed to create recipe")
		return
	}
	response.Success(c, http.StatusCreated, rec)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rec, err := h.service.Update(c.Request.Context(), middleware.CurrentUserID(c), id, &req)
	if err != nil {
		h.respondError(c, err, "Failed to update recipe")
		return
	}
	response.Success(c, http.StatusOK, rec)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		h.respondError(c, err, "Failed to delete recipe")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case IsValidation(err):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func recipeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return 0, false
	}
	return id, true
}

func boolParam(c *gin.Context, name string) bool {
	v := c.Query(name)
	return v == "1" || v == "true" || v == "True"
}

func pageParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "6"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if limit <= 0 {
		limit = 6
	}
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}
