package http

import (
	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
	provHttp "github.com/skedra/marketplace-backend/internal/provider/http"
	"github.com/skedra/marketplace-backend/internal/scheduling"
)

type SlotsQuery struct {
	Date      string `form:"date" binding:"required,datetime=2006-01-02"`
	ServiceID string `form:"service_id" binding:"required,uuid"`
}

type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

func NewSlotResponse(s scheduling.Slot) SlotResponse {
	return SlotResponse{
		Time:      timeutil.FromMinutes(s.StartMinute),
		Available: s.Available,
		Reason:    s.Reason,
	}
}

type AlternativesQuery struct {
	ServiceID  string `form:"service_id" binding:"required,uuid"`
	ProviderID string `form:"provider_id" binding:"required,uuid"`
	Date       string `form:"date" binding:"required,datetime=2006-01-02"`
	Time       string `form:"time" binding:"required,datetime=15:04"`
	Max        int    `form:"max" binding:"omitempty,min=1,max=20"`
}

type AlternativeResponse struct {
	Provider provHttp.ProviderTag `json:"provider"`
	Date     string               `json:"date"`
	Time     string               `json:"time"`
}

func NewAlternativeResponse(a scheduling.Alternative) AlternativeResponse {
	return AlternativeResponse{
		Provider: provHttp.ProviderTag{ID: a.ProviderID, Name: a.ProviderName},
		Date:     a.Date.Format(timeutil.DateLayout),
		Time:     timeutil.FromMinutes(a.StartMinute),
	}
}

type CreateRecurringBody struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	ProviderID string `json:"provider_id" binding:"required,uuid"`
	ServiceID  string `json:"service_id" binding:"required,uuid"`
	StartDate  string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Recurrence string `json:"recurrence" binding:"required,oneof=weekly biweekly monthly"`
	Weekdays   []int  `json:"weekdays" binding:"omitempty,dive,min=0,max=6"`
	StartTime  string `json:"start_time" binding:"required,datetime=15:04"`
	Notes      string `json:"notes"`
}

type DateOutcomeResponse struct {
	Date      string `json:"date"`
	BookingID string `json:"booking_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

type RecurringResponse struct {
	Success    bool                  `json:"success"`
	BookingIDs []string              `json:"booking_ids"`
	Errors     []string              `json:"errors"`
	Outcomes   []DateOutcomeResponse `json:"outcomes"`
}

func NewRecurringResponse(r *scheduling.RecurringResult) RecurringResponse {
	outcomes := make([]DateOutcomeResponse, len(r.Outcomes))
	for i, o := range r.Outcomes {
		outcomes[i] = DateOutcomeResponse{
			Date:      o.Date.Format(timeutil.DateLayout),
			BookingID: o.BookingID,
			Error:     o.Err,
		}
	}
	return RecurringResponse{
		Success:    r.Succeeded(),
		BookingIDs: r.BookingIDs(),
		Errors:     r.Errors(),
		Outcomes:   outcomes,
	}
}
