package rate

import "fmt"

// Tier is the billing pricing band. It scales both the USD table and the Robux formula.
type Tier string

const (
	TierStandard    Tier = "standard"
	TierHighProfile Tier = "high-profile"
	TierSCOTUS      Tier = "scotus"
)

var validTiers = map[Tier]bool{
	TierStandard:    true,
	TierHighProfile: true,
	TierSCOTUS:      true,
}

// Tiers lists every tier in display order.
func Tiers() []Tier {
	return []Tier{TierStandard, TierHighProfile, TierSCOTUS}
}

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	return validTiers[t]
}

func NewTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tier: %s", s)
	}
	return t, nil
}
