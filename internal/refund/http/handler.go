package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skedra/marketplace-backend/internal/pkg/response"
	"github.com/skedra/marketplace-backend/internal/refund"
)

type Handler struct {
	service refund.Service
}

func NewHandler(service refund.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Eligibility(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	elig, err := h.service.CheckEligibility(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEligibilityResponse(elig))
}

func (h *Handler) Process(c *gin.Context) {
	var body ProcessRefundBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ref, err := h.service.Process(c.Request.Context(), refund.ProcessRequest{
		BookingID:     body.BookingID,
		Reason:        body.Reason,
		AmountCents:   body.AmountCents,
		AdminOverride: body.AdminOverride,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRefundResponse(ref))
}

func (h *Handler) ListByBooking(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	refunds, err := h.service.ListByBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RefundResponse, len(refunds))
	for i, r := range refunds {
		items[i] = NewRefundResponse(r)
	}

	c.JSON(http.StatusOK, gin.H{"refunds": items})
}
