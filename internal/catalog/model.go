package catalog

import (
	"net/http"
	"time"

	"github.com/skedra/marketplace-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "service not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidDuration = apperror.New(http.StatusBadRequest, "duration must be a positive number of minutes")
	ErrInvalidPrice    = apperror.New(http.StatusBadRequest, "price cannot be negative")
)

// Offering is a bookable service in the marketplace catalogue (e.g. "Deep
// Clean, 120 min"). Its duration is the duration of every booking made for it.
type Offering struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	PriceCents      int64
	Active          bool
	CreatedAt       time.Time
}

// Filter defines parameters for listing offerings.
type Filter struct {
	ActiveOnly bool
	Page       int
	PageSize   int
}
