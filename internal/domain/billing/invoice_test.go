package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartlaw/hartlaw/internal/domain/rate"
)

func entry(t *testing.T, id string, hours string, travel bool) *TimeEntry {
	t.Helper()
	req := baseRequest()
	req.Hours = d(hours)
	req.IsTravel = travel
	calc, err := Compute(req, DefaultPolicy(), leadCounselLedger())
	require.NoError(t, err)
	e, err := NewTimeEntry(id, req, calc, time.Now())
	require.NoError(t, err)
	return e
}

func TestSummarize(t *testing.T) {
	entries := []*TimeEntry{
		entry(t, "te_1", "1", false),
		entry(t, "te_2", "0.5", true),
	}

	usd := Summarize("CASE-abc123-acme", CurrencyUSD, entries)
	assert.True(t, d("500").Equal(usd.SubtotalUSD), usd.SubtotalUSD.String())
	assert.True(t, d("50").Equal(usd.SubtotalRBX), usd.SubtotalRBX.String())
	assert.True(t, usd.Subtotal.Equal(usd.SubtotalUSD))
	assert.True(t, d("1.5").Equal(usd.TotalHours))
	assert.Len(t, usd.Entries, 2)

	rbx := Summarize("CASE-abc123-acme", CurrencyRBX, entries)
	assert.True(t, rbx.Subtotal.Equal(rbx.SubtotalRBX))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize("CASE-abc123-acme", CurrencyUSD, nil)
	assert.NotNil(t, s.Entries)
	assert.True(t, s.Subtotal.IsZero())
}

func TestQuoteRetainer(t *testing.T) {
	q := QuoteRetainer(rate.TierStandard, CurrencyUSD, d("400"))
	assert.True(t, d("4000").Equal(q.Amount))
	assert.Equal(t, RetainerBasis, q.Basis)

	for tier, want := range map[rate.Tier]string{
		rate.TierStandard:    "400",
		rate.TierHighProfile: "600",
		rate.TierSCOTUS:      "750",
	} {
		q := QuoteRetainer(tier, CurrencyRBX, d("999"))
		assert.True(t, d(want).Equal(q.Amount), tier)
	}
}

func TestParseCurrency(t *testing.T) {
	for in, want := range map[string]Currency{"USD": CurrencyUSD, "usd": CurrencyUSD, "R$": CurrencyRBX, "RBX": CurrencyRBX, "robux": CurrencyRBX} {
		got, err := ParseCurrency(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseCurrency("EUR")
	assert.Error(t, err)
}
