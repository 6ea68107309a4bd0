package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/providers/:id/slots", h.Slots)
	g.GET("/alternatives", h.Alternatives)
	g.POST("/bookings/recurring", h.CreateRecurring)
}
