package billing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hartlaw/hartlaw/internal/domain/rate"
)

// Request is a raw time-logging request.
type Request struct {
	CaseID               string
	StaffUserID          string
	Role                 string
	Tier                 rate.Tier
	Hours                decimal.Decimal
	Description          string
	IsTravel             bool
	IsInternalConference bool
	TeamSize             int
}

func (r Request) trimmedDescription() string {
	return strings.TrimSpace(r.Description)
}

// Ledger is what the calculation needs to know about state outside the request.
type Ledger struct {
	// InternalHoursToday is the sum of internal-conference hours already logged
	// on the case for the current UTC day.
	InternalHoursToday decimal.Decimal
	// AllowExceedTeam is the per-case override of the simultaneous-billable maximum.
	AllowExceedTeam bool
	BaseRateUSD     decimal.Decimal
	RateFound       bool
}

// CapAdjustment records that the internal-conference cap reduced an entry.
type CapAdjustment struct {
	RequestedHours decimal.Decimal
	AllowedHours   decimal.Decimal
}

// Calculation is the priced outcome for a request. Rates are the effective
// rates after any travel discount.
type Calculation struct {
	RoundedHours  decimal.Decimal
	Hours         decimal.Decimal
	RequestedTeam int
	TeamSize      int
	RateUSD       decimal.Decimal
	RateRBX       decimal.Decimal
	AmountUSD     decimal.Decimal
	AmountRBX     decimal.Decimal
	Tags          Tags
	RateFound     bool
	CapAdjustment *CapAdjustment
}

var two = decimal.NewFromInt(2)

// Compute applies, in order: rounding, the internal-conference cap, the team
// clamp, the USD rate, the Robux rate, the travel discount and the amounts.
func Compute(req Request, policy Policy, ledger Ledger) (*Calculation, error) {
	if !req.Hours.IsPositive() {
		return nil, ErrInvalidHours
	}
	policy = policy.Normalized()

	calc := &Calculation{Tags: Tags{}}

	rounded := RoundHours(req.Hours, policy.MinIncrementHours)
	calc.RoundedHours = rounded
	hours := rounded

	if req.IsInternalConference {
		if policy.CapEnabled() {
			remaining := decimal.Max(decimal.Zero, policy.InternalConferenceCapPerDay.Sub(ledger.InternalHoursToday))
			if !remaining.IsPositive() {
				return nil, ErrInternalConferenceCapReached
			}
			if remaining.LessThan(rounded) {
				// Truncate so the stored hours never exceed the allowance.
				hours = remaining.Truncate(hoursPlaces)
				if !hours.IsPositive() {
					return nil, ErrInternalConferenceCapReached
				}
				calc.CapAdjustment = &CapAdjustment{RequestedHours: rounded, AllowedHours: hours}
			}
		}
		calc.Tags = append(calc.Tags, TagInternal())
	}
	calc.Hours = hours

	teamSize := req.TeamSize
	if teamSize < 1 {
		teamSize = 1
	}
	calc.RequestedTeam = teamSize
	if teamSize > policy.MaxSimultaneousBillable && !ledger.AllowExceedTeam {
		teamSize = policy.MaxSimultaneousBillable
		calc.Tags = append(calc.Tags, TagTeamClamped(teamSize))
	}
	calc.TeamSize = teamSize

	rateUSD := decimal.Zero
	if ledger.RateFound {
		rateUSD = ledger.BaseRateUSD
	}
	calc.RateFound = ledger.RateFound

	rateRBX := rate.RobuxRate(req.Tier, teamSize)

	if req.IsTravel && policy.TravelHalfRate {
		rateUSD = rateUSD.Div(two)
		rateRBX = rateRBX.Div(two)
		calc.Tags = append(calc.Tags, TagTravel())
	}
	calc.RateUSD = rateUSD
	calc.RateRBX = rateRBX

	calc.AmountUSD = RoundMoney(rateUSD.Mul(hours))
	calc.AmountRBX = RoundMoney(rateRBX.Mul(hours))

	return calc, nil
}
