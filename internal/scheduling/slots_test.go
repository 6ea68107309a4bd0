package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skedra/marketplace-backend/internal/availability"
	"github.com/skedra/marketplace-backend/internal/clock"
	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
)

var defaultHours = availability.Hours{
	StartMinute: timeutil.ToMinutes("09:00"),
	EndMinute:   timeutil.ToMinutes("18:00"),
}

// earlyClock is well before any slot of the test dates.
var earlyClock = clock.NewFixed(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

func newGenerator(bookings *fakeBookingRepo, windows *fakeAvailabilityRepo, clk clock.Clock) *SlotGenerator {
	return NewSlotGenerator(bookings, windows, clk, defaultHours, 30)
}

func slotByTime(t *testing.T, slots []Slot, clockTime string) Slot {
	t.Helper()
	for _, s := range slots {
		if s.StartMinute == timeutil.ToMinutes(clockTime) {
			return s
		}
	}
	t.Fatalf("no slot at %s", clockTime)
	return Slot{}
}

func TestGenerateUsesDefaultHoursWhenNoWindows(t *testing.T) {
	g := newGenerator(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, earlyClock)

	slots, err := g.Generate(context.Background(), "prov-1", date("2024-03-01"), 60)
	require.NoError(t, err)

	// 09:00 through 17:00 inclusive for a 60-minute service, every 30 minutes.
	require.Len(t, slots, 17)
	assert.Equal(t, timeutil.ToMinutes("09:00"), slots[0].StartMinute)
	assert.Equal(t, timeutil.ToMinutes("17:00"), slots[len(slots)-1].StartMinute)
	for _, s := range slots {
		assert.True(t, s.Available, "slot %s should be free", timeutil.FromMinutes(s.StartMinute))
	}
}

func TestGenerateUsesConfiguredWindows(t *testing.T) {
	day := date("2024-03-01") // a Friday
	windows := &fakeAvailabilityRepo{windows: []*availability.Window{
		{ID: "w1", ProviderID: "prov-1", Weekday: int(day.Weekday()), StartMinute: timeutil.ToMinutes("08:00"), EndMinute: timeutil.ToMinutes("10:00"), Active: true},
		{ID: "w2", ProviderID: "prov-1", Weekday: int(day.Weekday()), StartMinute: timeutil.ToMinutes("16:00"), EndMinute: timeutil.ToMinutes("18:00"), Active: true},
	}}
	g := newGenerator(&fakeBookingRepo{}, windows, earlyClock)

	slots, err := g.Generate(context.Background(), "prov-1", day, 60)
	require.NoError(t, err)

	// Each two-hour window yields three starts for a 60-minute service.
	require.Len(t, slots, 6)
	assert.Equal(t, timeutil.ToMinutes("08:00"), slots[0].StartMinute)
	assert.Equal(t, timeutil.ToMinutes("17:00"), slots[5].StartMinute)
}

func TestGenerateSkipsInactiveWindows(t *testing.T) {
	day := date("2024-03-01")
	windows := &fakeAvailabilityRepo{windows: []*availability.Window{
		{ID: "w1", ProviderID: "prov-1", Weekday: int(day.Weekday()), StartMinute: timeutil.ToMinutes("08:00"), EndMinute: timeutil.ToMinutes("12:00"), Active: false},
	}}
	g := newGenerator(&fakeBookingRepo{}, windows, earlyClock)

	slots, err := g.Generate(context.Background(), "prov-1", day, 60)
	require.NoError(t, err)

	// The inactive window is invisible, so the default hours apply.
	assert.Equal(t, timeutil.ToMinutes("09:00"), slots[0].StartMinute)
}

func TestGenerateWindowShorterThanService(t *testing.T) {
	day := date("2024-03-01")
	windows := &fakeAvailabilityRepo{windows: []*availability.Window{
		{ID: "w1", ProviderID: "prov-1", Weekday: int(day.Weekday()), StartMinute: timeutil.ToMinutes("09:00"), EndMinute: timeutil.ToMinutes("10:00"), Active: true},
	}}
	g := newGenerator(&fakeBookingRepo{}, windows, earlyClock)

	slots, err := g.Generate(context.Background(), "prov-1", day, 120)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateMarksBookedSlots(t *testing.T) {
	repo := &fakeBookingRepo{}
	seedBooking(repo, "prov-1", "2024-03-01", "10:00", 60)
	g := newGenerator(repo, &fakeAvailabilityRepo{}, earlyClock)

	slots, err := g.Generate(context.Background(), "prov-1", date("2024-03-01"), 60)
	require.NoError(t, err)

	// Any 60-minute slot intersecting 10:00-11:00 is taken.
	for _, clockTime := range []string{"09:30", "10:00", "10:30"} {
		s := slotByTime(t, slots, clockTime)
		assert.False(t, s.Available, "slot %s", clockTime)
		assert.Equal(t, ReasonBooked, s.Reason, "slot %s", clockTime)
	}

	// Touching slots on either side stay free.
	assert.True(t, slotByTime(t, slots, "09:00").Available)
	assert.True(t, slotByTime(t, slots, "11:00").Available)
}

func TestGenerateMarksPastSlots(t *testing.T) {
	// Midday on the requested date: the morning is gone.
	clk := clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	g := newGenerator(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, clk)

	slots, err := g.Generate(context.Background(), "prov-1", date("2024-03-01"), 60)
	require.NoError(t, err)

	past := slotByTime(t, slots, "09:00")
	assert.False(t, past.Available)
	assert.Equal(t, ReasonPastTime, past.Reason)

	// A slot starting exactly now is not strictly in the future.
	atNoon := slotByTime(t, slots, "12:00")
	assert.False(t, atNoon.Available)
	assert.Equal(t, ReasonPastTime, atNoon.Reason)

	assert.True(t, slotByTime(t, slots, "12:30").Available)
}

func TestGenerateBookedWinsOverPast(t *testing.T) {
	repo := &fakeBookingRepo{}
	seedBooking(repo, "prov-1", "2024-03-01", "09:00", 60)
	clk := clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	g := newGenerator(repo, &fakeAvailabilityRepo{}, clk)

	slots, err := g.Generate(context.Background(), "prov-1", date("2024-03-01"), 60)
	require.NoError(t, err)

	// 09:00 is both booked and in the past; the booked reason is reported.
	s := slotByTime(t, slots, "09:00")
	assert.False(t, s.Available)
	assert.Equal(t, ReasonBooked, s.Reason)
}

func TestGenerateIdempotent(t *testing.T) {
	repo := &fakeBookingRepo{}
	seedBooking(repo, "prov-1", "2024-03-01", "10:00", 60)
	g := newGenerator(repo, &fakeAvailabilityRepo{}, earlyClock)

	first, err := g.Generate(context.Background(), "prov-1", date("2024-03-01"), 60)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), "prov-1", date("2024-03-01"), 60)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
