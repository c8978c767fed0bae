package usecases

import (
	"context"

	"github.com/hartlaw/hartlaw/internal/application/ticket/dto"
	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
	"github.com/hartlaw/hartlaw/internal/domain/ticket"
	vo "github.com/hartlaw/hartlaw/internal/domain/ticket/valueobjects"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  string
	Status    string
	ChangedBy string
	// Reason is carried on the status event, typically for closures.
	Reason string
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	publisher  events.EventPublisher
	clock      biztime.Clock
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *ChangeStatusUseCase {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID,
		"status", cmd.Status,
		"changed_by", cmd.ChangedBy)

	newStatus, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	oldStatus := t.Status()
	if oldStatus == newStatus {
		return dto.ToTicketDTO(t), nil
	}

	now := uc.clock.Now()
	if err := t.ChangeStatus(newStatus, now); err != nil {
		uc.logger.Warnw("rejected ticket status change",
			"ticket_id", t.ID(),
			"from", oldStatus.String(),
			"to", newStatus.String())
		return nil, domainError(err)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, updateError(uc.logger, t, err)
	}

	publishAll(uc.publisher, uc.logger, ticket.NewTicketStatusChangedEvent(
		t.ID(), oldStatus.String(), newStatus.String(), cmd.ChangedBy, cmd.Reason, t.UpdatedAt()))

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"from", oldStatus.String(),
		"to", newStatus.String())
	return dto.ToTicketDTO(t), nil
}
