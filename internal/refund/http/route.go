package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.POST("/refunds", h.Process)
	g.GET("/bookings/:id/refund-eligibility", h.Eligibility)
	g.GET("/bookings/:id/refunds", h.ListByBooking)
}
