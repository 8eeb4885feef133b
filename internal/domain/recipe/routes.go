package recipe

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the read endpoints; optional auth is applied by the
// caller so the per-user flags work for logged-in viewers.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recipes", h.List)
	rg.GET("/recipes/:id", h.Get)
}

// RegisterProtectedRoutes wires the author-only write endpoints.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/recipes", h.Create)
	rg.PATCH("/recipes/:id", h.Update)
	rg.DELETE("/recipes/:id", h.Delete)
}
