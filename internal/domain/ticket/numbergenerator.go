package ticket

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/hartlaw/hartlaw/internal/domain/setting"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
)

const (
	TicketIDPrefix   = "TKT-"
	MaxDailySequence = 9999
	counterKeyPrefix = "ticket_counter_"
)

var ticketIDPattern = regexp.MustCompile(`^TKT-\d{8}-\d{4}$`)

type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// CounterNumberGenerator mints TKT-YYYYMMDD-NNNN ids from a per-UTC-day counter.
// Uniqueness rests entirely on the counter's atomic increment.
type CounterNumberGenerator struct {
	counter setting.Counter
	clock   biztime.Clock
}

func NewCounterNumberGenerator(counter setting.Counter, clock biztime.Clock) *CounterNumberGenerator {
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &CounterNumberGenerator{
		counter: counter,
		clock:   clock,
	}
}

func (g *CounterNumberGenerator) Generate(ctx context.Context) (string, error) {
	dateKey := biztime.DateKey(g.clock.Now())

	seq, err := g.counter.Increment(ctx, CounterKey(dateKey))
	if err != nil {
		return "", fmt.Errorf("failed to increment ticket counter: %w", err)
	}
	if seq > MaxDailySequence {
		return "", fmt.Errorf("%w: %s reached %d", ErrDailySequenceExhausted, dateKey, seq)
	}

	return FormatTicketID(dateKey, seq), nil
}

// CounterKey is the setting key holding the sequence for a YYYYMMDD date.
func CounterKey(dateKey string) string {
	return counterKeyPrefix + dateKey
}

func FormatTicketID(dateKey string, seq int64) string {
	return fmt.Sprintf("%s%s-%04d", TicketIDPrefix, dateKey, seq)
}

func IsTicketID(s string) bool {
	return ticketIDPattern.MatchString(s)
}

// DateOf returns the UTC date encoded in a ticket id.
func DateOf(id string) (time.Time, error) {
	if !IsTicketID(id) {
		return time.Time{}, fmt.Errorf("invalid ticket ID: %s", id)
	}
	return time.ParseInLocation(biztime.DateKeyLayout, id[len(TicketIDPrefix):len(TicketIDPrefix)+8], time.UTC)
}
