package subscription

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/subscriptions", h.List)
	rg.POST("/users/:id/subscribe", h.Subscribe)
	rg.DELETE("/users/:id/subscribe", h.Unsubscribe)
}
