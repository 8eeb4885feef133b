package user

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the public endpoints; optional auth is applied by the
// caller so profile views can carry is_subscribed for logged-in viewers.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/users", h.Register)
	rg.POST("/auth/token/login", h.Login)
	rg.GET("/users", h.List)
	rg.GET("/users/:id", h.GetByID)
}

// RegisterProtectedRoutes wires the endpoints that require authentication.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/me", h.Me)
	rg.PUT("/users/me/avatar", h.SetAvatar)
	rg.DELETE("/users/me/avatar", h.DeleteAvatar)
}
