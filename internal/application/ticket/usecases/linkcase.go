package usecases

import (
	"context"
	"strings"

	"github.com/hartlaw/hartlaw/internal/application/ticket/dto"
	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
	"github.com/hartlaw/hartlaw/internal/domain/ticket"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type LinkCaseCommand struct {
	TicketID string
	CaseID   string
}

type LinkCaseUseCase struct {
	ticketRepo ticket.TicketRepository
	caseRepo   legalcase.Repository
	publisher  events.EventPublisher
	clock      biztime.Clock
	logger     logger.Interface
}

func NewLinkCaseUseCase(
	ticketRepo ticket.TicketRepository,
	caseRepo legalcase.Repository,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *LinkCaseUseCase {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &LinkCaseUseCase{
		ticketRepo: ticketRepo,
		caseRepo:   caseRepo,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *LinkCaseUseCase) Execute(ctx context.Context, cmd LinkCaseCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing link case use case", "ticket_id", cmd.TicketID, "case_id", cmd.CaseID)

	caseID := strings.TrimSpace(cmd.CaseID)
	if caseID == "" {
		return nil, errors.NewValidationError("case ID is required")
	}

	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	legalCase, err := uc.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		uc.logger.Errorw("failed to load case", "case_id", caseID, "error", err)
		return nil, errors.NewInternalError("failed to load case")
	}
	if legalCase == nil {
		return nil, errors.NewNotFoundError("case not found", caseID).WithCause(legalcase.ErrCaseNotFound)
	}

	alreadyLinked := t.IsLinked()
	if err := t.LinkCase(caseID, uc.clock.Now()); err != nil {
		uc.logger.Warnw("rejected case link", "ticket_id", t.ID(), "case_id", caseID, "error", err)
		return nil, domainError(err)
	}
	if alreadyLinked {
		return dto.ToTicketDTO(t), nil
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, updateError(uc.logger, t, err)
	}

	publishAll(uc.publisher, uc.logger, ticket.NewTicketCaseLinkedEvent(t.ID(), caseID, t.UpdatedAt()))

	uc.logger.Infow("ticket linked to case", "ticket_id", t.ID(), "case_id", caseID)
	return dto.ToTicketDTO(t), nil
}
