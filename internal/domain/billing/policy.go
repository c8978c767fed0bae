package billing

import "github.com/shopspring/decimal"

var (
	defaultMinIncrement = decimal.RequireFromString("0.1")
	defaultInternalCap  = decimal.RequireFromString("0.3")
)

const defaultMaxSimultaneousBillable = 3

// Policy is the configuration surface the billing calculation reads.
// A cap of zero or less disables the internal-conference daily cap.
type Policy struct {
	MinIncrementHours           decimal.Decimal
	InternalConferenceCapPerDay decimal.Decimal
	MaxSimultaneousBillable     int
	TravelHalfRate              bool
}

func DefaultPolicy() Policy {
	return Policy{
		MinIncrementHours:           defaultMinIncrement,
		InternalConferenceCapPerDay: defaultInternalCap,
		MaxSimultaneousBillable:     defaultMaxSimultaneousBillable,
		TravelHalfRate:              true,
	}
}

// Normalized replaces unusable values with the defaults.
func (p Policy) Normalized() Policy {
	if !p.MinIncrementHours.IsPositive() {
		p.MinIncrementHours = defaultMinIncrement
	}
	if p.MaxSimultaneousBillable < 1 {
		p.MaxSimultaneousBillable = defaultMaxSimultaneousBillable
	}
	return p
}

func (p Policy) CapEnabled() bool {
	return p.InternalConferenceCapPerDay.IsPositive()
}
