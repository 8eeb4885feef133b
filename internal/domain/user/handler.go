package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary Register a new user
// @Tags Users
// @Router /users [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid registration data", errs)
		return
	}

	profile, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrAlreadyRegistered:
			response.Error(c, http.StatusBadRequest, "ALREADY_EXISTS", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register user")
		}
		return
	}

	response.Success(c, http.StatusCreated, profile)
}

// Login godoc
// @Summary Exchange credentials for an auth token
// @Tags Users
// @Router /auth/token/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid credentials payload", errs)
		return
	}

	token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(c, http.StatusBadRequest, "INVALID_CREDENTIALS", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		}
		return
	}

	response.Success(c, http.StatusOK, TokenResponse{AuthToken: token})
}

func (h *Handler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	profiles, total, err := h.service.List(c.Request.Context(), middleware.CurrentUserID(c), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list users")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"count":   total,
		"results": profiles,
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
		}
		return
	}

	response.Success(c, http.StatusOK, profile)
}

func (h *Handler) Me(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	profile, err := h.service.GetProfile(c.Request.Context(), userID, userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, profile)
}

func (h *Handler) SetAvatar(c *gin.Context) {
	var req AvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Field avatar is required")
		return
	}

	profile, err := h.service.SetAvatar(c.Request.Context(), middleware.CurrentUserID(c), req.Avatar)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update avatar")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"avatar": profile.Avatar})
}

func (h *Handler) DeleteAvatar(c *gin.Context) {
	err := h.service.DeleteAvatar(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		switch err {
		case ErrNoAvatar:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete avatar")
		}
		return
	}

	c.Status(http.StatusNoContent)
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
