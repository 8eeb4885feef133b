package cart

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recipes/download_shopping_cart", h.Download)
	rg.POST("/recipes/:id/shopping_cart", h.Add)
	rg.DELETE("/recipes/:id/shopping_cart", h.Remove)
}
