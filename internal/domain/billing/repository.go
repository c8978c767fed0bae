package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TimeEntryRepository interface {
	Save(ctx context.Context, entry *TimeEntry) error
	// ListByCase returns entries ordered by creation time, then id.
	ListByCase(ctx context.Context, caseID string) ([]*TimeEntry, error)
	// SumInternalHours totals internal-conference hours with created_at in [from, to).
	SumInternalHours(ctx context.Context, caseID string, from, to time.Time) (decimal.Decimal, error)
}
