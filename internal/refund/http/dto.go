package http

import (
	"time"

	"github.com/skedra/marketplace-backend/internal/refund"
)

type EligibilityResponse struct {
	Eligible    bool   `json:"eligible"`
	Reason      string `json:"reason,omitempty"`
	AmountCents int64  `json:"amount_cents,omitempty"`
	Percentage  int    `json:"percentage,omitempty"`
}

func NewEligibilityResponse(e *refund.Eligibility) EligibilityResponse {
	return EligibilityResponse{
		Eligible:    e.Eligible,
		Reason:      e.Reason,
		AmountCents: e.AmountCents,
		Percentage:  e.Percentage,
	}
}

type ProcessRefundBody struct {
	BookingID     string `json:"booking_id" binding:"required,uuid"`
	Reason        string `json:"reason" binding:"required"`
	AmountCents   *int64 `json:"amount_cents" binding:"omitempty,min=0"`
	AdminOverride bool   `json:"admin_override"`
}

type RefundResponse struct {
	ID          string    `json:"id"`
	BookingID   string    `json:"booking_id"`
	AmountCents int64     `json:"amount_cents"`
	Percentage  int       `json:"percentage"`
	Reason      string    `json:"reason"`
	ExternalRef string    `json:"external_ref"`
	Status      string    `json:"status"`
	ProcessedAt time.Time `json:"processed_at"`
}

func NewRefundResponse(r *refund.Refund) RefundResponse {
	return RefundResponse{
		ID:          r.ID,
		BookingID:   r.BookingID,
		AmountCents: r.AmountCents,
		Percentage:  r.Percentage,
		Reason:      r.Reason,
		ExternalRef: r.ExternalRef,
		Status:      r.Status,
		ProcessedAt: r.ProcessedAt,
	}
}
