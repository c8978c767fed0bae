package billing

import (
	"github.com/shopspring/decimal"

	"github.com/hartlaw/hartlaw/internal/domain/rate"
)

// RetainerHours is the number of lead-counsel hours a retainer covers.
const RetainerHours = 10

const RetainerBasis = "10 hours at the lead-partner rate as required before work commences."

var robuxRetainers = map[rate.Tier]int64{
	rate.TierStandard:    400,
	rate.TierHighProfile: 600,
	rate.TierSCOTUS:      750,
}

type RetainerQuote struct {
	Tier     rate.Tier
	Currency Currency
	Amount   decimal.Decimal
	Basis    string
}

// QuoteRetainer prices a retainer. USD is the lead-counsel hourly rate times
// RetainerHours; R$ is a fixed amount per tier.
func QuoteRetainer(tier rate.Tier, currency Currency, leadCounselRateUSD decimal.Decimal) RetainerQuote {
	q := RetainerQuote{Tier: tier, Currency: currency, Basis: RetainerBasis}
	if currency == CurrencyRBX {
		q.Amount = decimal.NewFromInt(robuxRetainers[tier])
		return q
	}
	q.Amount = RoundMoney(leadCounselRateUSD.Mul(decimal.NewFromInt(RetainerHours)))
	return q
}
