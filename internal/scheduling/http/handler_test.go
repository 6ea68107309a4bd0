package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
	"github.com/skedra/marketplace-backend/internal/scheduling"
)

type stubService struct {
	slots        []scheduling.Slot
	slotsErr     error
	alternatives []scheduling.Alternative
	result       *scheduling.RecurringResult
	lastRequest  scheduling.RecurringRequest
}

func (s *stubService) AvailableSlots(ctx context.Context, providerID string, date time.Time, serviceID string) ([]scheduling.Slot, error) {
	if s.slotsErr != nil {
		return nil, s.slotsErr
	}
	return s.slots, nil
}

func (s *stubService) FindAlternatives(ctx context.Context, req scheduling.AlternativesRequest) ([]scheduling.Alternative, error) {
	return s.alternatives, nil
}

func (s *stubService) CreateRecurring(ctx context.Context, req scheduling.RecurringRequest) (*scheduling.RecurringResult, error) {
	s.lastRequest = req
	return s.result, nil
}

func newTestRouter(svc scheduling.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	RegisterRoutes(v1, NewHandler(svc))
	return r
}

func TestSlotsEndpoint(t *testing.T) {
	svc := &stubService{slots: []scheduling.Slot{
		{StartMinute: timeutil.ToMinutes("09:00"), Available: true},
		{StartMinute: timeutil.ToMinutes("09:30"), Available: false, Reason: scheduling.ReasonBooked},
	}}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET",
		"/v1/providers/7b0e3a48-92f4-4e5e-95c9-0b8a43c1e111/slots?date=2024-03-01&service_id=9a1b5c3d-1111-4e5e-95c9-0b8a43c1e222", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Date  string         `json:"date"`
		Slots []SlotResponse `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "2024-03-01", body.Date)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, "09:00", body.Slots[0].Time)
	assert.True(t, body.Slots[0].Available)
	assert.Equal(t, "09:30", body.Slots[1].Time)
	assert.Equal(t, scheduling.ReasonBooked, body.Slots[1].Reason)
}

func TestSlotsEndpointValidation(t *testing.T) {
	router := newTestRouter(&stubService{})

	// Malformed provider id.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/providers/not-a-uuid/slots?date=2024-03-01&service_id=9a1b5c3d-1111-4e5e-95c9-0b8a43c1e222", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing date.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/providers/7b0e3a48-92f4-4e5e-95c9-0b8a43c1e111/slots?service_id=9a1b5c3d-1111-4e5e-95c9-0b8a43c1e222", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecurringEndpointPartialSuccess(t *testing.T) {
	svc := &stubService{result: &scheduling.RecurringResult{Outcomes: []scheduling.DateOutcome{
		{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), BookingID: "booking-1"},
		{Date: time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), Err: "2024-01-22 at 10:00: time slot already booked"},
	}}}
	router := newTestRouter(svc)

	payload := CreateRecurringBody{
		CustomerID: "7b0e3a48-92f4-4e5e-95c9-0b8a43c1e111",
		ProviderID: "7b0e3a48-92f4-4e5e-95c9-0b8a43c1e112",
		ServiceID:  "7b0e3a48-92f4-4e5e-95c9-0b8a43c1e113",
		StartDate:  "2024-01-15",
		EndDate:    "2024-01-22",
		Recurrence: "weekly",
		StartTime:  "10:00",
	}
	buf, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/bookings/recurring", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body RecurringResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, []string{"booking-1"}, body.BookingIDs)
	require.Len(t, body.Errors, 1)
	assert.Contains(t, body.Errors[0], "2024-01-22")
	require.Len(t, body.Outcomes, 2)

	assert.Equal(t, timeutil.ToMinutes("10:00"), svc.lastRequest.StartMinute)
	assert.Equal(t, scheduling.RecurrenceWeekly, svc.lastRequest.Recurrence)
}

func TestRecurringEndpointNothingBooked(t *testing.T) {
	svc := &stubService{result: &scheduling.RecurringResult{Outcomes: []scheduling.DateOutcome{
		{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Err: "2024-01-15 at 10:00: time slot already booked"},
	}}}
	router := newTestRouter(svc)

	payload := CreateRecurringBody{
		CustomerID: "7b0e3a48-92f4-4e5e-95c9-0b8a43c1e111",
		ProviderID: "7b0e3a48-92f4-4e5e-95c9-0b8a43c1e112",
		ServiceID:  "7b0e3a48-92f4-4e5e-95c9-0b8a43c1e113",
		StartDate:  "2024-01-15",
		EndDate:    "2024-01-15",
		Recurrence: "weekly",
		StartTime:  "10:00",
	}
	buf, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/bookings/recurring", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRecurringEndpointValidation(t *testing.T) {
	router := newTestRouter(&stubService{})

	payload := map[string]any{
		"customer_id": "7b0e3a48-92f4-4e5e-95c9-0b8a43c1e111",
		"provider_id": "7b0e3a48-92f4-4e5e-95c9-0b8a43c1e112",
		"service_id":  "7b0e3a48-92f4-4e5e-95c9-0b8a43c1e113",
		"start_date":  "2024-01-15",
		"end_date":    "2024-01-22",
		"recurrence":  "daily", // not a supported cadence
		"start_time":  "10:00",
	}
	buf, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/bookings/recurring", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAlternativesEndpoint(t *testing.T) {
	svc := &stubService{alternatives: []scheduling.Alternative{
		{ProviderID: "prov-2", ProviderName: "Brook", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), StartMinute: timeutil.ToMinutes("10:00")},
	}}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET",
		"/v1/alternatives?service_id=9a1b5c3d-1111-4e5e-95c9-0b8a43c1e222&provider_id=7b0e3a48-92f4-4e5e-95c9-0b8a43c1e111&date=2024-03-01&time=10:00", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Alternatives []AlternativeResponse `json:"alternatives"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Len(t, body.Alternatives, 1)
	assert.Equal(t, "Brook", body.Alternatives[0].Provider.Name)
	assert.Equal(t, "2024-03-01", body.Alternatives[0].Date)
	assert.Equal(t, "10:00", body.Alternatives[0].Time)
}
