package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	// 22:30 local on the 14th is 03:30 UTC on the 15th.
	local := time.Date(2025, 3, 14, 22, 30, 0, 0, loc)
	assert.Equal(t, "20250315", DateKey(local))
}

func TestDayBounds(t *testing.T) {
	ts := time.Date(2025, 3, 14, 13, 5, 0, 0, time.UTC)

	start := StartOfDayUTC(ts)
	end := EndOfDayUTC(ts)

	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 14, 23, 59, 59, 999999999, time.UTC), end)
	assert.True(t, SameDayUTC(start, end))
	assert.False(t, SameDayUTC(end, end.Add(time.Nanosecond)))
}

func TestFixedClock(t *testing.T) {
	c := NewFixedClock(time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, "20250101", DateKey(c.Now()))

	c.Advance(2 * time.Hour)
	assert.Equal(t, "20250102", DateKey(c.Now()))
}
