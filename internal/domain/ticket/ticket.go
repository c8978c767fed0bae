package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/hartlaw/hartlaw/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id              string
	ticketType      vo.TicketType
	status          vo.TicketStatus
	clientUserID    string
	intake          map[string]string
	intakeOriginRef string
	threadRef       string
	assignedUserID  *string
	linkedCaseID    *string
	createdAt       time.Time
	updatedAt       time.Time
	version         int // optimistic locking version
}

func NewTicket(
	id string,
	ticketType vo.TicketType,
	clientUserID string,
	intake map[string]string,
	intakeOriginRef string,
	threadRef string,
	now time.Time,
) (*Ticket, error) {
	if !IsTicketID(id) {
		return nil, fmt.Errorf("invalid ticket ID: %s", id)
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type: %s", ticketType)
	}
	if strings.TrimSpace(clientUserID) == "" {
		return nil, fmt.Errorf("client user ID is required")
	}

	intakeCopy := make(map[string]string, len(intake))
	for k, v := range intake {
		intakeCopy[k] = v
	}

	at := now.UTC()
	return &Ticket{
		id:              id,
		ticketType:      ticketType,
		status:          vo.StatusPending,
		clientUserID:    clientUserID,
		intake:          intakeCopy,
		intakeOriginRef: intakeOriginRef,
		threadRef:       threadRef,
		createdAt:       at,
		updatedAt:       at,
		version:         1,
	}, nil
}

func ReconstructTicket(
	id string,
	ticketType vo.TicketType,
	status vo.TicketStatus,
	clientUserID string,
	intake map[string]string,
	intakeOriginRef string,
	threadRef string,
	assignedUserID *string,
	linkedCaseID *string,
	createdAt, updatedAt time.Time,
	version int,
) (*Ticket, error) {
	if id == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if version < 1 {
		return nil, fmt.Errorf("invalid version: %d", version)
	}

	if intake == nil {
		intake = make(map[string]string)
	}

	return &Ticket{
		id:              id,
		ticketType:      ticketType,
		status:          status,
		clientUserID:    clientUserID,
		intake:          intake,
		intakeOriginRef: intakeOriginRef,
		threadRef:       threadRef,
		assignedUserID:  assignedUserID,
		linkedCaseID:    linkedCaseID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		version:         version,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

// Version is the stored row version this ticket was loaded at.
func (t *Ticket) Version() int {
	return t.version
}

// SetVersion records the row version after a successful write.
func (t *Ticket) SetVersion(version int) {
	t.version = version
}

func (t *Ticket) Type() vo.TicketType {
	return t.ticketType
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) ClientUserID() string {
	return t.clientUserID
}

func (t *Ticket) Intake() map[string]string {
	intakeCopy := make(map[string]string, len(t.intake))
	for k, v := range t.intake {
		intakeCopy[k] = v
	}
	return intakeCopy
}

// IntakeValue returns the answer recorded under label, or def when absent.
func (t *Ticket) IntakeValue(label, def string) string {
	if v, ok := t.intake[label]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func (t *Ticket) IntakeOriginRef() string {
	return t.intakeOriginRef
}

func (t *Ticket) ThreadRef() string {
	return t.threadRef
}

func (t *Ticket) AssignedUserID() *string {
	return t.assignedUserID
}

func (t *Ticket) LinkedCaseID() *string {
	return t.linkedCaseID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// AssignTo sets or, with nil, clears the assignee. Status is untouched and
// repeated calls are allowed until the ticket is closed.
func (t *Ticket) AssignTo(userID *string, now time.Time) error {
	if t.status.IsTerminal() {
		return fmt.Errorf("%w: cannot assign a %s ticket", ErrTicketClosed, t.status)
	}
	if userID != nil && strings.TrimSpace(*userID) == "" {
		return fmt.Errorf("assignee ID cannot be blank")
	}

	if userID == nil {
		t.assignedUserID = nil
	} else {
		u := *userID
		t.assignedUserID = &u
	}
	t.touch(now)
	return nil
}

// ChangeStatus moves along the transition table. Changing to the current status is a no-op.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus, now time.Time) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, t.status, newStatus)
	}

	t.status = newStatus
	t.touch(now)
	return nil
}

// LinkCase records the case this ticket became. The link is set once;
// relinking to the same case is a no-op and to another case is rejected.
func (t *Ticket) LinkCase(caseID string, now time.Time) error {
	if strings.TrimSpace(caseID) == "" {
		return fmt.Errorf("case ID is required")
	}
	if t.linkedCaseID != nil {
		if *t.linkedCaseID == caseID {
			return nil
		}
		return fmt.Errorf("%w: ticket %s is linked to %s", ErrCaseAlreadyLinked, t.id, *t.linkedCaseID)
	}
	if t.status.IsTerminal() {
		return fmt.Errorf("%w: cannot link a %s ticket", ErrTicketClosed, t.status)
	}

	c := caseID
	t.linkedCaseID = &c
	t.touch(now)
	return nil
}

func (t *Ticket) IsLinked() bool {
	return t.linkedCaseID != nil
}

func (t *Ticket) touch(now time.Time) {
	at := now.UTC()
	if at.Before(t.updatedAt) {
		at = t.updatedAt
	}
	t.updatedAt = at
}
