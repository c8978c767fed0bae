package seeds

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartlaw/hartlaw/internal/domain/rate"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

func TestDefaultRates(t *testing.T) {
	entries, err := DefaultRates()
	require.NoError(t, err)
	require.Len(t, entries, 42)

	lead := map[rate.Tier]string{}
	for _, e := range entries {
		if e.Role() == "Equity Partner (Lead Counsel)" {
			lead[e.Tier()] = e.Rate().String()
		}
	}
	assert.Equal(t, map[rate.Tier]string{
		rate.TierStandard:    "400",
		rate.TierHighProfile: "700",
		rate.TierSCOTUS:      "900",
	}, lead)

	assert.Equal(t, "Managing Partner / Trial Chair", entries[0].Role())
	assert.Equal(t, rate.TierStandard, entries[0].Tier())
}

func TestParseRates_Invalid(t *testing.T) {
	_, err := parseRates([]byte("roles:\n  - role: X\n    standard: abc\n    high-profile: \"1\"\n    scotus: \"1\"\n"))
	assert.Error(t, err)

	_, err = parseRates([]byte("roles: [\n"))
	assert.Error(t, err)
}

type fakeRateRepo struct {
	count int64
	saved []*rate.Entry
}

func (f *fakeRateRepo) GetRate(context.Context, string, rate.Tier) (decimal.Decimal, bool, error) {
	return decimal.Zero, false, nil
}

func (f *fakeRateRepo) ListByTier(context.Context, rate.Tier) ([]*rate.Entry, error) {
	return nil, nil
}

func (f *fakeRateRepo) Count(context.Context) (int64, error) { return f.count, nil }

func (f *fakeRateRepo) SaveAll(_ context.Context, entries []*rate.Entry) error {
	f.saved = append(f.saved, entries...)
	return nil
}

func TestSeedRates(t *testing.T) {
	t.Run("empty table is seeded", func(t *testing.T) {
		repo := &fakeRateRepo{}
		require.NoError(t, SeedRates(context.Background(), repo, logger.NewNopLogger()))
		assert.Len(t, repo.saved, 42)
	})

	t.Run("populated table is left alone", func(t *testing.T) {
		repo := &fakeRateRepo{count: 3}
		require.NoError(t, SeedRates(context.Background(), repo, logger.NewNopLogger()))
		assert.Empty(t, repo.saved)
	})
}
