package models

import (
	"time"

	"github.com/hartlaw/hartlaw/internal/shared/constants"
)

// CaseModel represents the database persistence model for legal cases.
type CaseModel struct {
	ID                   string `gorm:"primaryKey;size:64"`
	Division             string `gorm:"not null;size:20"`
	ClientName           string `gorm:"not null;size:200"`
	ChannelRef           string `gorm:"size:100;index:idx_case_channel_ref"`
	Status               string `gorm:"not null;size:20;index:idx_case_status"`
	Currency             string `gorm:"not null;size:8;default:USD"`
	ContingencyOnly      bool   `gorm:"not null;default:false"`
	ContingencyPercent   *int
	ArchivedCategoryCode *string `gorm:"size:20"`
	CreatedAt            time.Time
	ArchivedAt           *time.Time
	Version              int `gorm:"not null;default:1"`
}

// TableName specifies the table name for GORM.
func (CaseModel) TableName() string {
	return constants.TableCases
}
