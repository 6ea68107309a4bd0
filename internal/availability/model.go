package availability

import (
	"net/http"
	"time"

	"github.com/skedra/marketplace-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "availability window not found")
	ErrInvalidWeekday  = apperror.New(http.StatusBadRequest, "weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidWindow   = apperror.New(http.StatusBadRequest, "window start must be before window end")
	ErrInvalidProvider = apperror.New(http.StatusBadRequest, "invalid provider_id")
)

// Window is one bookable stretch of a provider's week. A provider may hold
// several windows on the same weekday (e.g. a morning and an evening block);
// each is treated independently.
type Window struct {
	ID          string
	ProviderID  string
	Weekday     int // 0 = Sunday .. 6 = Saturday, matching time.Weekday
	StartMinute int
	EndMinute   int
	Active      bool
	CreatedAt   time.Time
}

// Hours is a bare start/end pair. The slot generator falls back to a single
// default Hours value when a provider has no windows configured for a weekday,
// so "no rows" never silently means "never bookable".
type Hours struct {
	StartMinute int
	EndMinute   int
}
