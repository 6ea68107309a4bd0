package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	// Windows are owned by providers, so creation and listing hang off the
	// provider resource; individual windows are addressed directly.
	g.GET("/providers/:id/availability", h.ListForProvider)
	g.POST("/providers/:id/availability", h.Create)

	group := g.Group("/availability")
	{
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
