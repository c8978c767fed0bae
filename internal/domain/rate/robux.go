package rate

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RobuxBand is the fixed per-tier Robux formula: the lead bills Lead R$/hr and
// every additional simultaneous team member adds Additional R$/hr.
type RobuxBand struct {
	Lead       int64
	Additional int64
}

var robuxBands = map[Tier]RobuxBand{
	TierStandard:    {Lead: 40, Additional: 20},
	TierHighProfile: {Lead: 60, Additional: 30},
	TierSCOTUS:      {Lead: 75, Additional: 35},
}

// BandFor returns the Robux band of a tier and whether the tier has one.
func BandFor(t Tier) (RobuxBand, bool) {
	b, ok := robuxBands[t]
	return b, ok
}

// RobuxRate computes lead + (teamSize-1) * additional. teamSize is floored at 1
// and an unknown tier bills zero.
func RobuxRate(t Tier, teamSize int) decimal.Decimal {
	band, ok := robuxBands[t]
	if !ok {
		return decimal.Zero
	}
	if teamSize < 1 {
		teamSize = 1
	}
	return decimal.NewFromInt(band.Lead + int64(teamSize-1)*band.Additional)
}

// Describe renders the band for rate listings.
func (b RobuxBand) Describe() string {
	return fmt.Sprintf("Lead %d R$/hr; each additional team member +%d R$/hr", b.Lead, b.Additional)
}
