package models

import (
	"github.com/shopspring/decimal"

	"github.com/hartlaw/hartlaw/internal/shared/constants"
)

// RateModel is one row of the seeded rate table.
type RateModel struct {
	ID   uint            `gorm:"primaryKey"`
	Role string          `gorm:"not null;size:100;uniqueIndex:idx_rate_role_tier"`
	Tier string          `gorm:"not null;size:20;uniqueIndex:idx_rate_role_tier;index:idx_rate_tier"`
	Rate decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (RateModel) TableName() string {
	return constants.TableRates
}
