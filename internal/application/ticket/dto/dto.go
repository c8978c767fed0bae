package dto

import (
	"time"

	"github.com/hartlaw/hartlaw/internal/domain/ticket"
)

type TicketDTO struct {
	ID              string            `json:"id"`
	Type            string            `json:"type"`
	Status          string            `json:"status"`
	ClientUserID    string            `json:"client_user_id"`
	Intake          map[string]string `json:"intake"`
	IntakeOriginRef string            `json:"intake_origin_ref,omitempty"`
	ThreadRef       string            `json:"thread_ref,omitempty"`
	AssignedUserID  *string           `json:"assigned_user_id"`
	LinkedCaseID    *string           `json:"linked_case_id"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:              t.ID(),
		Type:            t.Type().String(),
		Status:          t.Status().String(),
		ClientUserID:    t.ClientUserID(),
		Intake:          t.Intake(),
		IntakeOriginRef: t.IntakeOriginRef(),
		ThreadRef:       t.ThreadRef(),
		AssignedUserID:  t.AssignedUserID(),
		LinkedCaseID:    t.LinkedCaseID(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

// ConvertTicketResult pairs the ticket with the case it was converted into.
type ConvertTicketResult struct {
	Ticket *TicketDTO `json:"ticket"`
	CaseID string     `json:"case_id"`
}
