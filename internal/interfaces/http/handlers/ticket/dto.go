package ticket

import "github.com/hartlaw/hartlaw/internal/application/ticket/usecases"

type CreateTicketRequest struct {
	Type string `json:"type" binding:"required,oneof=civil criminal appellate"`
	// ClientUserID defaults to the calling actor.
	ClientUserID    string            `json:"client_user_id" binding:"max=64"`
	Intake          map[string]string `json:"intake" binding:"max=50"`
	IntakeOriginRef string            `json:"intake_origin_ref" binding:"max=100"`
	ThreadRef       string            `json:"thread_ref" binding:"max=100"`
	CaseID          string            `json:"case_id" binding:"max=64"`
}

func (r *CreateTicketRequest) ToCommand(actorID string) usecases.CreateTicketCommand {
	client := r.ClientUserID
	if client == "" {
		client = actorID
	}
	return usecases.CreateTicketCommand{
		Type:            r.Type,
		ClientUserID:    client,
		Intake:          r.Intake,
		IntakeOriginRef: r.IntakeOriginRef,
		ThreadRef:       r.ThreadRef,
		CaseID:          r.CaseID,
	}
}

// AssignTicketRequest with a null assignee_id unassigns; "me" claims.
type AssignTicketRequest struct {
	AssigneeID *string `json:"assignee_id"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING ACTIVE CLOSED"`
	Reason string `json:"reason" binding:"max=500"`
}

type LinkCaseRequest struct {
	CaseID string `json:"case_id" binding:"required,max=64"`
}

type ConvertTicketRequest struct {
	ClientName string `json:"client_name" binding:"max=200"`
	ChannelRef string `json:"channel_ref" binding:"max=100"`
	Currency   string `json:"currency" binding:"omitempty,currency"`
}
