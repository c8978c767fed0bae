package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hartlaw/hartlaw/internal/domain/rate"
	"github.com/hartlaw/hartlaw/internal/shared/mapper"
)

type RateDTO struct {
	Role string          `json:"role"`
	Tier string          `json:"tier"`
	Rate decimal.Decimal `json:"rate_usd"`
}

type RobuxBandDTO struct {
	Lead        int64  `json:"lead"`
	Additional  int64  `json:"additional"`
	Description string `json:"description"`
}

// RateTableDTO is the USD table of one tier plus its Robux formula.
type RateTableDTO struct {
	Tier  string       `json:"tier"`
	Rates []*RateDTO   `json:"rates"`
	Robux RobuxBandDTO `json:"robux"`
}

func ToRateDTO(e *rate.Entry) *RateDTO {
	return &RateDTO{
		Role: e.Role(),
		Tier: e.Tier().String(),
		Rate: e.Rate(),
	}
}

func ToRateTableDTO(tier rate.Tier, entries []*rate.Entry) *RateTableDTO {
	rates := mapper.MapSlicePtr(entries, ToRateDTO)
	band, _ := rate.BandFor(tier)
	return &RateTableDTO{
		Tier:  tier.String(),
		Rates: rates,
		Robux: RobuxBandDTO{
			Lead:        band.Lead,
			Additional:  band.Additional,
			Description: band.Describe(),
		},
	}
}
