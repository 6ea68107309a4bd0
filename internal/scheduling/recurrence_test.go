package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func dateStrings(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format("2006-01-02")
	}
	return out
}

func TestExpandWeeklyWithWeekdays(t *testing.T) {
	// Mondays between Jan 15 and Feb 15 2024.
	dates := ExpandRecurrence(date("2024-01-15"), date("2024-02-15"), RecurrenceWeekly, []int{1})
	assert.Equal(t, []string{
		"2024-01-15", "2024-01-22", "2024-01-29", "2024-02-05", "2024-02-12",
	}, dateStrings(dates))
}

func TestExpandWeeklyMultipleWeekdays(t *testing.T) {
	// Mondays and Wednesdays over two weeks.
	dates := ExpandRecurrence(date("2024-01-15"), date("2024-01-28"), RecurrenceWeekly, []int{1, 3})
	assert.Equal(t, []string{
		"2024-01-15", "2024-01-17", "2024-01-22", "2024-01-24",
	}, dateStrings(dates))
}

func TestExpandWeeklyNoWeekdays(t *testing.T) {
	// Without a filter, the start date's weekday repeats.
	dates := ExpandRecurrence(date("2024-01-15"), date("2024-02-05"), RecurrenceWeekly, nil)
	assert.Equal(t, []string{
		"2024-01-15", "2024-01-22", "2024-01-29", "2024-02-05",
	}, dateStrings(dates))
}

func TestExpandBiweekly(t *testing.T) {
	dates := ExpandRecurrence(date("2024-01-15"), date("2024-02-26"), RecurrenceBiweekly, nil)
	assert.Equal(t, []string{
		"2024-01-15", "2024-01-29", "2024-02-12", "2024-02-26",
	}, dateStrings(dates))
}

func TestExpandBiweeklyWithWeekdays(t *testing.T) {
	// Every other week, Monday and Friday.
	dates := ExpandRecurrence(date("2024-01-15"), date("2024-02-04"), RecurrenceBiweekly, []int{1, 5})
	assert.Equal(t, []string{
		"2024-01-15", "2024-01-19", "2024-01-29", "2024-02-02",
	}, dateStrings(dates))
}

func TestExpandMonthly(t *testing.T) {
	dates := ExpandRecurrence(date("2024-01-15"), date("2024-04-20"), RecurrenceMonthly, nil)
	assert.Equal(t, []string{
		"2024-01-15", "2024-02-15", "2024-03-15", "2024-04-15",
	}, dateStrings(dates))
}

func TestExpandMonthlySkipsShortMonths(t *testing.T) {
	// A Jan 31 recurrence has no valid date in February or April.
	dates := ExpandRecurrence(date("2024-01-31"), date("2024-05-31"), RecurrenceMonthly, nil)
	assert.Equal(t, []string{
		"2024-01-31", "2024-03-31", "2024-05-31",
	}, dateStrings(dates))
}

func TestExpandInvertedRangeIsEmpty(t *testing.T) {
	dates := ExpandRecurrence(date("2024-02-15"), date("2024-01-15"), RecurrenceWeekly, []int{1})
	assert.Empty(t, dates)
}

func TestExpandOutputSortedAndInRange(t *testing.T) {
	start, end := date("2024-01-10"), date("2024-03-10")
	dates := ExpandRecurrence(start, end, RecurrenceWeekly, []int{0, 2, 4, 6})
	require.NotEmpty(t, dates)

	seen := make(map[time.Time]bool)
	for i, d := range dates {
		assert.False(t, d.Before(start), "date %s before range", d)
		assert.False(t, d.After(end), "date %s after range", d)
		assert.False(t, seen[d], "duplicate date %s", d)
		seen[d] = true
		if i > 0 {
			assert.True(t, dates[i-1].Before(d), "output not sorted at index %d", i)
		}
	}
}
