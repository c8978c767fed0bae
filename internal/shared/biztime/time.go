// Package biztime provides the time helpers the billing core relies on.
// All storage and day boundaries are UTC: a "day" for the ticket sequence and
// for the internal conference cap is the UTC calendar date.
package biztime

import (
	"sync"
	"time"
)

// DateKeyLayout formats the per-day counter suffix, e.g. 20250314.
const DateKeyLayout = "20060102"

// Clock abstracts the wall clock so day boundaries can be pinned in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return NowUTC() }

// SystemClock returns a Clock backed by time.Now in UTC.
func SystemClock() Clock { return systemClock{} }

// FixedClock always reports the same instant until Set or Advance is called.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t.UTC()}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t.UTC()
	c.mu.Unlock()
}

func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DateKey returns the UTC calendar date of t as YYYYMMDD.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateKeyLayout)
}

// StartOfDayUTC returns 00:00:00 of t's UTC calendar date.
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDayUTC returns the last nanosecond of t's UTC calendar date.
func EndOfDayUTC(t time.Time) time.Time {
	return StartOfDayUTC(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SameDayUTC reports whether a and b fall on the same UTC calendar date.
func SameDayUTC(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}

// FormatMetadataTime formats a UTC time using RFC3339.
func FormatMetadataTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
