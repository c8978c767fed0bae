package usecases

import (
	"context"

	"github.com/hartlaw/hartlaw/internal/application/ticket/dto"
	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
	"github.com/hartlaw/hartlaw/internal/domain/ticket"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

// AssignTicketCommand claims, reassigns or, with a nil AssigneeID, unassigns.
type AssignTicketCommand struct {
	TicketID   string
	AssigneeID *string
	AssignedBy string
}

type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	publisher  events.EventPublisher
	clock      biztime.Clock
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *AssignTicketUseCase {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID,
		"assignee_id", cmd.AssigneeID,
		"assigned_by", cmd.AssignedBy)

	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.AssignTo(cmd.AssigneeID, uc.clock.Now()); err != nil {
		uc.logger.Warnw("failed to assign ticket", "ticket_id", t.ID(), "error", err)
		return nil, domainError(err)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, updateError(uc.logger, t, err)
	}

	publishAll(uc.publisher, uc.logger, ticket.NewTicketAssignedEvent(t, cmd.AssignedBy))

	uc.logger.Infow("ticket assignment updated", "ticket_id", t.ID(), "assignee_id", t.AssignedUserID())
	return dto.ToTicketDTO(t), nil
}
