package scheduling

import (
	"sort"
	"time"

	"github.com/skedra/marketplace-backend/internal/pkg/timeutil"
)

// ExpandRecurrence turns a date range and a cadence into the concrete list of
// dates the recurrence implies, sorted ascending and de-duplicated. An
// inverted range returns no dates rather than an error. An unknown cadence
// also returns no dates; callers validate with ValidRecurrence first.
//
// With a weekday filter, weekly and biweekly walk the range in week windows
// and keep the days whose weekday is in the filter. Without one, they repeat
// the start date's weekday at the cadence interval. Monthly repeats the start
// date's day-of-month and skips months that are too short to contain it (a
// Jan 31 monthly recurrence has no February date).
func ExpandRecurrence(start, end time.Time, rec Recurrence, weekdays []int) []time.Time {
	start = timeutil.DateOf(start)
	end = timeutil.DateOf(end)
	if start.After(end) {
		return nil
	}

	seen := make(map[time.Time]bool)
	var dates []time.Time
	add := func(d time.Time) {
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}

	switch rec {
	case RecurrenceMonthly:
		day := start.Day()
		for month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !month.After(end); month = month.AddDate(0, 1, 0) {
			d := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
			if d.Day() != day {
				continue
			}
			if d.Before(start) || d.After(end) {
				continue
			}
			add(d)
		}

	case RecurrenceWeekly, RecurrenceBiweekly:
		step := 7
		if rec == RecurrenceBiweekly {
			step = 14
		}
		if len(weekdays) == 0 {
			for d := start; !d.After(end); d = d.AddDate(0, 0, step) {
				add(d)
			}
			break
		}
		wanted := make(map[time.Weekday]bool, len(weekdays))
		for _, w := range weekdays {
			wanted[time.Weekday(w)] = true
		}
		for week := start; !week.After(end); week = week.AddDate(0, 0, step) {
			for i := 0; i < 7; i++ {
				d := week.AddDate(0, 0, i)
				if d.After(end) {
					break
				}
				if wanted[d.Weekday()] {
					add(d)
				}
			}
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
