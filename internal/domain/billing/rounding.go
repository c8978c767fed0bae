package billing

import "github.com/shopspring/decimal"

// roundingTolerance keeps exact multiples from being pushed up an extra increment.
var roundingTolerance = decimal.New(1, -6)

const hoursPlaces = 2

// RoundHours returns the smallest multiple of increment that is >= hours - 1e-6,
// stored at two decimals. Positive input never rounds below one increment.
// The result is a fixed point: RoundHours(RoundHours(h)) == RoundHours(h).
func RoundHours(hours, increment decimal.Decimal) decimal.Decimal {
	if !increment.IsPositive() {
		increment = defaultMinIncrement
	}
	steps := hours.Sub(roundingTolerance).Div(increment).Ceil()
	if steps.LessThan(decimal.NewFromInt(1)) {
		steps = decimal.NewFromInt(1)
	}
	return steps.Mul(increment).Round(hoursPlaces)
}

// RoundMoney rounds an amount to cents.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
