package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/hartlaw/hartlaw/internal/shared/constants"
)

// TicketModel represents the database persistence model for intake tickets.
type TicketModel struct {
	ID              string         `gorm:"primaryKey;size:20"` // TKT-YYYYMMDD-NNNN
	Type            string         `gorm:"not null;size:20"`
	Status          string         `gorm:"not null;size:20;index:idx_ticket_status"`
	ClientUserID    string         `gorm:"not null;size:64;index:idx_ticket_client"`
	Intake          datatypes.JSON `gorm:"type:json"`
	IntakeOriginRef string         `gorm:"size:100"`
	ThreadRef       string         `gorm:"size:100;index:idx_ticket_thread_ref"`
	AssignedUserID  *string        `gorm:"size:64"`
	LinkedCaseID    *string        `gorm:"size:64;index:idx_ticket_case"`
	CreatedAt       time.Time      `gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime:false"`
	Version         int            `gorm:"not null;default:1"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
