package rate

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Entry is one row of the rate table: the USD hourly rate of a role at a tier.
// Entries are immutable once seeded and unique per (role, tier).
type Entry struct {
	role string
	tier Tier
	rate decimal.Decimal
}

func NewEntry(role string, tier Tier, rate decimal.Decimal) (*Entry, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, fmt.Errorf("role is required")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier: %s", tier)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("rate cannot be negative")
	}
	return &Entry{role: role, tier: tier, rate: rate}, nil
}

func (e *Entry) Role() string { return e.role }
func (e *Entry) Tier() Tier { return e.tier }
func (e *Entry) Rate() decimal.Decimal { return e.rate }

// Repository is the read side of the rate table plus the one-time seed.
type Repository interface {
	// GetRate reports found=false when (role, tier) has no row.
	GetRate(ctx context.Context, role string, tier Tier) (rate decimal.Decimal, found bool, err error)
	ListByTier(ctx context.Context, tier Tier) ([]*Entry, error)
	Count(ctx context.Context) (int64, error)
	SaveAll(ctx context.Context, entries []*Entry) error
}
