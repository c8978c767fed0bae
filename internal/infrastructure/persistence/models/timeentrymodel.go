package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/hartlaw/hartlaw/internal/shared/constants"
)

// TimeEntryModel represents the database persistence model for billed time.
// CreatedAt is unix milliseconds so range scans compare integers.
type TimeEntryModel struct {
	ID                 string          `gorm:"primaryKey;size:40"`
	CaseID             string          `gorm:"not null;size:64;index:idx_time_entry_case_created,priority:1"`
	StaffUserID        string          `gorm:"not null;size:64"`
	Role               string          `gorm:"not null;size:100"`
	Tier               string          `gorm:"not null;size:20"`
	Hours              decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	RateUSD            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	RateRBX            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AmountUSD          decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	AmountRBX          decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Text               string          `gorm:"type:text"`
	Tags               datatypes.JSON  `gorm:"type:json"`
	TeamSize           int             `gorm:"not null;default:1"`
	InternalConference bool            `gorm:"not null;default:false"`
	Travel             bool            `gorm:"not null;default:false"`
	CreatedAt          int64           `gorm:"not null;autoCreateTime:false;index:idx_time_entry_case_created,priority:2"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TimeEntryModel) TableName() string {
	return constants.TableTimeEntries
}
