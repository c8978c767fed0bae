package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
)

const EventInternalConferenceCapped = "billing.internal_conference_capped"

// InternalConferenceCappedEvent is emitted when the daily cap reduced an entry
// that was still recorded.
type InternalConferenceCappedEvent struct {
	events.BaseEvent
	EntryID        string          `json:"entry_id"`
	RequestedHours decimal.Decimal `json:"requested_hours"`
	AllowedHours   decimal.Decimal `json:"allowed_hours"`
}

func NewInternalConferenceCappedEvent(caseID, entryID string, adj CapAdjustment, at time.Time) InternalConferenceCappedEvent {
	return InternalConferenceCappedEvent{
		BaseEvent:      events.NewBaseEvent(caseID, EventInternalConferenceCapped, at),
		EntryID:        entryID,
		RequestedHours: adj.RequestedHours,
		AllowedHours:   adj.AllowedHours,
	}
}
