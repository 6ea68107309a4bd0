package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ClockLayout is the wire format for wall-clock times of day.
const ClockLayout = "15:04"

// ToMinutes converts a "HH:MM" time of day to its minute offset from midnight.
// Callers are expected to pass validated input; malformed strings map to 0.
func ToMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 3)
	if len(parts) < 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return h*60 + m
}

// FromMinutes converts a minute offset from midnight back to a zero-padded "HH:MM" string.
func FromMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidClock reports whether s is a well-formed "HH:MM" time of day.
func ValidClock(s string) bool {
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// Overlaps reports whether the half-open intervals [startA, startA+durA) and
// [startB, startB+durB) intersect. Touching intervals (one ends exactly where
// the other starts) do not overlap.
func Overlaps(startA, durA, startB, durB int) bool {
	return startA < startB+durB && startA+durA > startB
}

// DateOf truncates t to its calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// At combines a calendar date with a minute-of-day offset into an instant in UTC.
func At(date time.Time, minuteOfDay int) time.Time {
	return DateOf(date).Add(time.Duration(minuteOfDay) * time.Minute)
}

// ParseDate parses a "2006-01-02" calendar date into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
