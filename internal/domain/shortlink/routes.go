package shortlink

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recipes/:id/get-link", h.GetLink)
}

// RegisterRedirect wires the public /s/{code} redirect outside the API group.
func (h *Handler) RegisterRedirect(r gin.IRouter) {
	r.GET("/s/:code", h.Redirect)
}
