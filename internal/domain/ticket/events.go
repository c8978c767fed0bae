package ticket

import (
	"time"

	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
)

const (
	EventTicketCreated       = "ticket.created"
	EventTicketAssigned      = "ticket.assigned"
	EventTicketStatusChanged = "ticket.status_changed"
	EventTicketCaseLinked    = "ticket.case_linked"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	Type         string `json:"type"`
	ClientUserID string `json:"client_user_id"`
}

func NewTicketCreatedEvent(t *Ticket) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent:    events.NewBaseEvent(t.ID(), EventTicketCreated, t.CreatedAt()),
		Type:         t.Type().String(),
		ClientUserID: t.ClientUserID(),
	}
}

type TicketAssignedEvent struct {
	events.BaseEvent
	AssigneeID *string `json:"assignee_id"`
	AssignedBy string  `json:"assigned_by"`
}

func NewTicketAssignedEvent(t *Ticket, assignedBy string) TicketAssignedEvent {
	return TicketAssignedEvent{
		BaseEvent:  events.NewBaseEvent(t.ID(), EventTicketAssigned, t.UpdatedAt()),
		AssigneeID: t.AssignedUserID(),
		AssignedBy: assignedBy,
	}
}

type TicketStatusChangedEvent struct {
	events.BaseEvent
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	ChangedBy string `json:"changed_by"`
	Reason    string `json:"reason,omitempty"`
}

func NewTicketStatusChangedEvent(ticketID, oldStatus, newStatus, changedBy, reason string, at time.Time) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		BaseEvent: events.NewBaseEvent(ticketID, EventTicketStatusChanged, at),
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedBy: changedBy,
		Reason:    reason,
	}
}

type TicketCaseLinkedEvent struct {
	events.BaseEvent
	CaseID string `json:"case_id"`
}

func NewTicketCaseLinkedEvent(ticketID, caseID string, at time.Time) TicketCaseLinkedEvent {
	return TicketCaseLinkedEvent{
		BaseEvent: events.NewBaseEvent(ticketID, EventTicketCaseLinked, at),
		CaseID:    caseID,
	}
}
