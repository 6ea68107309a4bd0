package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skedra/marketplace-backend/internal/availability"
	"github.com/skedra/marketplace-backend/internal/pkg/response"
	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListForProvider(c *gin.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	windows, err := h.service.ListByProvider(c.Request.Context(), providerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]WindowResponse, len(windows))
	for i, w := range windows {
		items[i] = NewWindowResponse(w)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Create(c *gin.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body CreateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	w, err := h.service.Create(c.Request.Context(), availability.CreateRequest{
		ProviderID:  providerID,
		Weekday:     body.Weekday,
		StartMinute: timeutil.ToMinutes(body.StartTime),
		EndMinute:   timeutil.ToMinutes(body.EndTime),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewWindowResponse(w))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req := availability.UpdateRequest{
		Weekday: body.Weekday,
		Active:  body.Active,
	}
	if body.StartTime != nil {
		if !timeutil.ValidClock(*body.StartTime) {
			response.Error(c, availability.ErrInvalidWindow)
			return
		}
		m := timeutil.ToMinutes(*body.StartTime)
		req.StartMinute = &m
	}
	if body.EndTime != nil {
		if !timeutil.ValidClock(*body.EndTime) {
			response.Error(c, availability.ErrInvalidWindow)
			return
		}
		m := timeutil.ToMinutes(*body.EndTime)
		req.EndMinute = &m
	}

	w, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewWindowResponse(w))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
