package refund

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierPercentage(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  int
	}{
		{"service passed", -1, 0},
		{"just passed", -0.01, 0},
		{"right now", 0, 25},
		{"under six hours", 5.9, 25},
		{"six hours", 6, 50},
		{"under twelve hours", 11.9, 50},
		{"twelve hours", 12, 75},
		{"eighteen hours", 18, 75},
		{"under a day", 23.9, 75},
		{"a day", 24, 100},
		{"a week", 168, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TierPercentage(tc.hours))
		})
	}
}

func TestTierPercentageMonotonic(t *testing.T) {
	prev := TierPercentage(-48)
	for h := -48.0; h <= 48; h += 0.5 {
		pct := TierPercentage(h)
		assert.GreaterOrEqual(t, pct, prev, "percentage dropped at %v hours", h)
		assert.GreaterOrEqual(t, pct, 0)
		assert.LessOrEqual(t, pct, 100)
		prev = pct
	}
}

func TestAmount(t *testing.T) {
	assert.Equal(t, int64(750), Amount(1000, 75))
	assert.Equal(t, int64(1000), Amount(1000, 100))
	assert.Equal(t, int64(0), Amount(1000, 0))

	// Half-up rounding: 25% of 999 is 249.75, rounds to 250.
	assert.Equal(t, int64(250), Amount(999, 25))
	// 50% of 999 is 499.5, rounds up.
	assert.Equal(t, int64(500), Amount(999, 50))
	// 75% of 333 is 249.75, rounds to 250.
	assert.Equal(t, int64(250), Amount(333, 75))
}
