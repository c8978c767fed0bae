package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRoundHours(t *testing.T) {
	tests := []struct {
		name      string
		hours     string
		increment string
		want      string
	}{
		{"rounds up to next tenth", "0.16", "0.1", "0.2"},
		{"exact multiple unchanged", "0.2", "0.1", "0.2"},
		{"exact whole hour unchanged", "1", "0.1", "1"},
		{"tiny value rounds to one increment", "0.01", "0.1", "0.1"},
		{"just above a multiple", "0.3000001", "0.1", "0.3"},
		{"clearly above a multiple", "0.301", "0.1", "0.4"},
		{"quarter hour increment", "0.26", "0.25", "0.5"},
		{"quarter hour exact", "0.75", "0.25", "0.75"},
		{"non-positive increment falls back to tenth", "0.11", "0", "0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundHours(d(tt.hours), d(tt.increment))
			assert.True(t, d(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestRoundHours_Properties(t *testing.T) {
	tolerance := d("0.000001")
	for _, inc := range []string{"0.1", "0.25", "0.5", "1"} {
		increment := d(inc)
		for i := 1; i <= 400; i++ {
			h := decimal.NewFromInt(int64(i)).Div(decimal.NewFromInt(97))

			r := RoundHours(h, increment)

			assert.True(t, r.GreaterThanOrEqual(h.Sub(tolerance)), "inc %s h %s r %s below h-eps", inc, h, r)
			assert.True(t, r.Mod(increment).IsZero(), "inc %s h %s r %s not a multiple", inc, h, r)
			assert.True(t, r.Sub(increment).LessThan(h.Sub(tolerance)) || r.Equal(increment),
				"inc %s h %s r %s is not the smallest multiple", inc, h, r)
			assert.True(t, RoundHours(r, increment).Equal(r), "inc %s h %s not idempotent", inc, h)
		}
	}
}
