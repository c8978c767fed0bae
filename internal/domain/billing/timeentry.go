package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hartlaw/hartlaw/internal/domain/rate"
)

// TimeEntry is one priced, billable increment against a case. All fields are
// fixed at construction; there are no mutators.
type TimeEntry struct {
	id                 string
	caseID             string
	staffUserID        string
	role               string
	tier               rate.Tier
	hours              decimal.Decimal
	rateUSD            decimal.Decimal
	rateRBX            decimal.Decimal
	amountUSD          decimal.Decimal
	amountRBX          decimal.Decimal
	text               string
	tags               Tags
	teamSize           int
	internalConference bool
	travel             bool
	createdAt          time.Time
}

// NewTimeEntry builds an entry from a finished calculation.
func NewTimeEntry(id string, req Request, calc *Calculation, createdAt time.Time) (*TimeEntry, error) {
	if id == "" {
		return nil, fmt.Errorf("time entry ID is required")
	}
	if calc == nil {
		return nil, fmt.Errorf("calculation is required")
	}
	if req.CaseID == "" {
		return nil, fmt.Errorf("case ID is required")
	}
	if !calc.Hours.IsPositive() {
		return nil, ErrInvalidHours
	}

	tags := make(Tags, len(calc.Tags))
	copy(tags, calc.Tags)

	return &TimeEntry{
		id:                 id,
		caseID:             req.CaseID,
		staffUserID:        req.StaffUserID,
		role:               req.Role,
		tier:               req.Tier,
		hours:              calc.Hours,
		rateUSD:            calc.RateUSD,
		rateRBX:            calc.RateRBX,
		amountUSD:          calc.AmountUSD,
		amountRBX:          calc.AmountRBX,
		text:               req.trimmedDescription(),
		tags:               tags,
		teamSize:           calc.TeamSize,
		internalConference: req.IsInternalConference,
		travel:             calc.Tags.Has(TagKindTravel),
		createdAt:          createdAt.UTC(),
	}, nil
}

// ReconstructTimeEntry rebuilds an entry loaded from storage.
func ReconstructTimeEntry(
	id, caseID, staffUserID, role string,
	tier rate.Tier,
	hours, rateUSD, rateRBX, amountUSD, amountRBX decimal.Decimal,
	text string,
	tags Tags,
	teamSize int,
	internalConference, travel bool,
	createdAt time.Time,
) (*TimeEntry, error) {
	if id == "" {
		return nil, fmt.Errorf("time entry ID is required")
	}
	if caseID == "" {
		return nil, fmt.Errorf("case ID is required")
	}
	if tags == nil {
		tags = Tags{}
	}

	return &TimeEntry{
		id:                 id,
		caseID:             caseID,
		staffUserID:        staffUserID,
		role:               role,
		tier:               tier,
		hours:              hours,
		rateUSD:            rateUSD,
		rateRBX:            rateRBX,
		amountUSD:          amountUSD,
		amountRBX:          amountRBX,
		text:               text,
		tags:               tags,
		teamSize:           teamSize,
		internalConference: internalConference,
		travel:             travel,
		createdAt:          createdAt,
	}, nil
}

func (e *TimeEntry) ID() string { return e.id }
func (e *TimeEntry) CaseID() string { return e.caseID }
func (e *TimeEntry) StaffUserID() string { return e.staffUserID }
func (e *TimeEntry) Role() string { return e.role }
func (e *TimeEntry) Tier() rate.Tier { return e.tier }
func (e *TimeEntry) Hours() decimal.Decimal { return e.hours }
func (e *TimeEntry) RateUSD() decimal.Decimal { return e.rateUSD }
func (e *TimeEntry) RateRBX() decimal.Decimal { return e.rateRBX }
func (e *TimeEntry) AmountUSD() decimal.Decimal { return e.amountUSD }
func (e *TimeEntry) AmountRBX() decimal.Decimal { return e.amountRBX }
func (e *TimeEntry) Text() string { return e.text }
func (e *TimeEntry) TeamSize() int { return e.teamSize }
func (e *TimeEntry) IsInternalConference() bool { return e.internalConference }
func (e *TimeEntry) IsTravel() bool { return e.travel }
func (e *TimeEntry) CreatedAt() time.Time { return e.createdAt }

func (e *TimeEntry) Tags() Tags {
	tagsCopy := make(Tags, len(e.tags))
	copy(tagsCopy, e.tags)
	return tagsCopy
}

// Description is the text with its policy tags rendered in front.
func (e *TimeEntry) Description() string {
	return e.tags.Render(e.text)
}

// Amount returns the amount in the ledger of the given currency.
func (e *TimeEntry) Amount(c Currency) decimal.Decimal {
	if c == CurrencyRBX {
		return e.amountRBX
	}
	return e.amountUSD
}
