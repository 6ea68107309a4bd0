package http

import (
	"github.com/skedra/marketplace-backend/internal/availability"
	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
)

type WindowResponse struct {
	ID         string `json:"id"`
	ProviderID string `json:"provider_id"`
	Weekday    int    `json:"weekday"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Active     bool   `json:"active"`
}

func NewWindowResponse(w *availability.Window) WindowResponse {
	return WindowResponse{
		ID:         w.ID,
		ProviderID: w.ProviderID,
		Weekday:    w.Weekday,
		StartTime:  timeutil.FromMinutes(w.StartMinute),
		EndTime:    timeutil.FromMinutes(w.EndMinute),
		Active:     w.Active,
	}
}

type CreateBody struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// Validate performs custom validation for CreateBody.
func (b *CreateBody) Validate() error {
	if !timeutil.ValidClock(b.StartTime) || !timeutil.ValidClock(b.EndTime) {
		return availability.ErrInvalidWindow
	}
	return nil
}

type UpdateBody struct {
	Weekday   *int    `json:"weekday" binding:"omitempty,min=0,max=6"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Active    *bool   `json:"active"`
}
