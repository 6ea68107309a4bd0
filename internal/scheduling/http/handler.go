package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skedra/marketplace-backend/internal/pkg/response"
	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
	"github.com/skedra/marketplace-backend/internal/scheduling"
)

type Handler struct {
	service scheduling.Service
}

func NewHandler(service scheduling.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Slots(c *gin.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var query SlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	date, err := timeutil.ParseDate(query.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	slots, err := h.service.AvailableSlots(c.Request.Context(), providerID, date, query.ServiceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}

	c.JSON(http.StatusOK, gin.H{"date": query.Date, "slots": items})
}

func (h *Handler) Alternatives(c *gin.Context) {
	var query AlternativesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	date, err := timeutil.ParseDate(query.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	alternatives, err := h.service.FindAlternatives(c.Request.Context(), scheduling.AlternativesRequest{
		ServiceID:   query.ServiceID,
		ProviderID:  query.ProviderID,
		Date:        date,
		StartMinute: timeutil.ToMinutes(query.Time),
		Max:         query.Max,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]AlternativeResponse, len(alternatives))
	for i, a := range alternatives {
		items[i] = NewAlternativeResponse(a)
	}

	c.JSON(http.StatusOK, gin.H{"alternatives": items})
}

func (h *Handler) CreateRecurring(c *gin.Context) {
	var body CreateRecurringBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	startDate, err := timeutil.ParseDate(body.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	endDate, err := timeutil.ParseDate(body.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
		return
	}

	result, err := h.service.CreateRecurring(c.Request.Context(), scheduling.RecurringRequest{
		CustomerID:  body.CustomerID,
		ProviderID:  body.ProviderID,
		ServiceID:   body.ServiceID,
		StartDate:   startDate,
		EndDate:     endDate,
		Recurrence:  scheduling.Recurrence(body.Recurrence),
		Weekdays:    body.Weekdays,
		StartMinute: timeutil.ToMinutes(body.StartTime),
		Notes:       body.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// Partial success is still a created batch; per-date failures ride along
	// in the body.
	status := http.StatusCreated
	if !result.Succeeded() {
		status = http.StatusConflict
	}
	c.JSON(status, NewRecurringResponse(result))
}
