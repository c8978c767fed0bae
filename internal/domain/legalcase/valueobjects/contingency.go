package valueobjects

import "fmt"

const DefaultContingencyPercent = 30

var allowedContingencyPercents = map[int]bool{20: true, 30: true}

// Contingency describes a success-fee arrangement. With Only set the fee
// replaces hourly billing; a percent without Only is the hybrid hourly plus
// success-fee arrangement; neither is plain hourly billing.
type Contingency struct {
	only    bool
	percent *int
}

func NoContingency() Contingency {
	return Contingency{}
}

// NewContingency validates percent against {20, 30}. Contingency-only without
// a percent defaults to 30.
func NewContingency(only bool, percent *int) (Contingency, error) {
	if percent != nil && !allowedContingencyPercents[*percent] {
		return Contingency{}, fmt.Errorf("contingency percent must be 20 or 30, got %d", *percent)
	}
	if only && percent == nil {
		p := DefaultContingencyPercent
		percent = &p
	}
	c := Contingency{only: only}
	if percent != nil {
		p := *percent
		c.percent = &p
	}
	return c, nil
}

func (c Contingency) Only() bool {
	return c.only
}

func (c Contingency) Percent() *int {
	if c.percent == nil {
		return nil
	}
	p := *c.percent
	return &p
}

func (c Contingency) IsHybrid() bool {
	return !c.only && c.percent != nil
}

func (c Contingency) IsNone() bool {
	return !c.only && c.percent == nil
}

// Note is the line invoices carry for the arrangement; empty for hourly billing.
func (c Contingency) Note() string {
	switch {
	case c.only:
		return fmt.Sprintf("%d%% of recovery (contingency only).", *c.percent)
	case c.percent != nil:
		return fmt.Sprintf("%d%% contingent success fee in addition to hourly.", *c.percent)
	default:
		return ""
	}
}
