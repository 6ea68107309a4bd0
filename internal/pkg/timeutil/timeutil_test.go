package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	assert.Equal(t, 0, ToMinutes("00:00"))
	assert.Equal(t, 570, ToMinutes("09:30"))
	assert.Equal(t, 1050, ToMinutes("17:30"))
	assert.Equal(t, 1439, ToMinutes("23:59"))
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FromMinutes(0))
	assert.Equal(t, "09:30", FromMinutes(570))
	assert.Equal(t, "09:05", FromMinutes(545))
	assert.Equal(t, "23:59", FromMinutes(1439))
}

func TestOverlaps(t *testing.T) {
	// Existing booking 10:00-11:00
	existing := ToMinutes("10:00")

	tests := []struct {
		name  string
		start string
		dur   int
		want  bool
	}{
		{"same interval", "10:00", 60, true},
		{"starts inside", "10:30", 60, true},
		{"ends inside", "09:30", 60, true},
		{"contains", "09:00", 180, true},
		{"contained", "10:15", 30, true},
		{"touching end to start", "11:00", 60, false},
		{"touching start to end", "09:00", 60, false},
		{"well before", "07:00", 60, false},
		{"well after", "13:00", 60, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(ToMinutes(tc.start), tc.dur, existing, 60))
		})
	}
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2024, 3, 15, 14, 23, 11, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), DateOf(ts))
}

func TestAt(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC), At(date, 570))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("09:00"))
	assert.True(t, ValidClock("23:59"))
	assert.False(t, ValidClock("24:00"))
	assert.False(t, ValidClock("9am"))
}
