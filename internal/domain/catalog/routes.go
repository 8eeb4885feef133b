package catalog

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ingredients", h.ListIngredients)
	rg.GET("/ingredients/:id", h.GetIngredient)
	rg.GET("/tags", h.ListTags)
	rg.GET("/tags/:id", h.GetTag)
}
