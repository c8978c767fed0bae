package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/hartlaw/hartlaw/internal/application/ticket/dto"
	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
	"github.com/hartlaw/hartlaw/internal/domain/ticket"
	vo "github.com/hartlaw/hartlaw/internal/domain/ticket/valueobjects"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type CreateTicketCommand struct {
	Type            string
	ClientUserID    string
	Intake          map[string]string
	IntakeOriginRef string
	ThreadRef       string
	// CaseID links the ticket to an existing case and opens it as ACTIVE.
	CaseID string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	caseRepo   legalcase.Repository
	numbers    ticket.NumberGenerator
	publisher  events.EventPublisher
	clock      biztime.Clock
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	caseRepo legalcase.Repository,
	numbers ticket.NumberGenerator,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *CreateTicketUseCase {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		caseRepo:   caseRepo,
		numbers:    numbers,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case",
		"type", cmd.Type,
		"client_user_id", cmd.ClientUserID,
		"thread_ref", cmd.ThreadRef,
		"case_id", cmd.CaseID)

	ticketType, err := vo.NewTicketType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if strings.TrimSpace(cmd.ClientUserID) == "" {
		return nil, errors.NewValidationError("client user ID is required")
	}

	caseID := strings.TrimSpace(cmd.CaseID)
	if caseID != "" {
		existing, err := uc.caseRepo.GetByID(ctx, caseID)
		if err != nil {
			uc.logger.Errorw("failed to load case", "case_id", caseID, "error", err)
			return nil, errors.NewInternalError("failed to load case")
		}
		if existing == nil {
			return nil, errors.NewNotFoundError("case not found", caseID).WithCause(legalcase.ErrCaseNotFound)
		}
	}

	ticketID, err := uc.numbers.Generate(ctx)
	if err != nil {
		if stderrors.Is(err, ticket.ErrDailySequenceExhausted) {
			uc.logger.Warnw("daily ticket sequence exhausted", "error", err)
			return nil, errors.NewCapacityError("daily ticket limit reached").WithCause(err)
		}
		uc.logger.Errorw("failed to mint ticket ID", "error", err)
		return nil, errors.NewInternalError("failed to mint ticket ID")
	}

	now := uc.clock.Now()
	newTicket, err := ticket.NewTicket(ticketID, ticketType, cmd.ClientUserID, cmd.Intake, cmd.IntakeOriginRef, cmd.ThreadRef, now)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	published := []events.DomainEvent{ticket.NewTicketCreatedEvent(newTicket)}
	if caseID != "" {
		if err := newTicket.LinkCase(caseID, now); err != nil {
			return nil, domainError(err)
		}
		if err := newTicket.ChangeStatus(vo.StatusActive, now); err != nil {
			return nil, domainError(err)
		}
		published = append(published, ticket.NewTicketCaseLinkedEvent(ticketID, caseID, now))
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "ticket_id", ticketID, "error", err)
		return nil, errors.NewInternalError("failed to save ticket")
	}

	publishAll(uc.publisher, uc.logger, published...)

	uc.logger.Infow("ticket created successfully", "ticket_id", ticketID, "status", newTicket.Status().String())
	return dto.ToTicketDTO(newTicket), nil
}
