package usecases

import (
	"context"
	"strings"

	casedto "github.com/hartlaw/hartlaw/internal/application/legalcase/dto"
	caseusecases "github.com/hartlaw/hartlaw/internal/application/legalcase/usecases"
	"github.com/hartlaw/hartlaw/internal/application/ticket/dto"
	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
	"github.com/hartlaw/hartlaw/internal/domain/ticket"
	vo "github.com/hartlaw/hartlaw/internal/domain/ticket/valueobjects"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/db"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

const (
	// IntakeClientNameLabel is the intake answer a converted case is named after.
	IntakeClientNameLabel = "client_name"
	defaultClientName     = "client"
)

type ConvertTicketCommand struct {
	TicketID string
	// ClientName overrides the intake answer.
	ClientName  string
	ChannelRef  string
	Currency    string
	ConvertedBy string
}

// ConvertTicketUseCase opens a case from a ticket, links the two and marks the
// ticket ACTIVE in one transaction.
type ConvertTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	createCase caseusecases.CreateCaseExecutor
	txManager  db.Transactor
	publisher  events.EventPublisher
	clock      biztime.Clock
	logger     logger.Interface
}

func NewConvertTicketUseCase(
	ticketRepo ticket.TicketRepository,
	createCase caseusecases.CreateCaseExecutor,
	txManager db.Transactor,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *ConvertTicketUseCase {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &ConvertTicketUseCase{
		ticketRepo: ticketRepo,
		createCase: createCase,
		txManager:  txManager,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *ConvertTicketUseCase) Execute(ctx context.Context, cmd ConvertTicketCommand) (*dto.ConvertTicketResult, error) {
	uc.logger.Infow("executing convert ticket use case", "ticket_id", cmd.TicketID, "converted_by", cmd.ConvertedBy)

	var (
		converted *ticket.Ticket
		created   *casedto.CaseDTO
		oldStatus vo.TicketStatus
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := loadTicket(txCtx, uc.ticketRepo, uc.logger, cmd.TicketID)
		if err != nil {
			return err
		}
		if t.IsLinked() {
			return errors.NewConflictError("ticket already converted", *t.LinkedCaseID()).WithCause(ticket.ErrCaseAlreadyLinked)
		}
		if t.Status().IsTerminal() {
			return errors.NewConflictError("cannot convert a closed ticket").WithCause(ticket.ErrTicketClosed)
		}

		clientName := strings.TrimSpace(cmd.ClientName)
		if clientName == "" {
			clientName = t.IntakeValue(IntakeClientNameLabel, defaultClientName)
		}
		channelRef := cmd.ChannelRef
		if channelRef == "" {
			channelRef = t.ThreadRef()
		}

		created, err = uc.createCase.Execute(txCtx, caseusecases.CreateCaseCommand{
			Division:   t.Type().String(),
			ClientName: clientName,
			ChannelRef: channelRef,
			Currency:   cmd.Currency,
		})
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		oldStatus = t.Status()
		if err := t.LinkCase(created.ID, now); err != nil {
			return domainError(err)
		}
		if err := t.ChangeStatus(vo.StatusActive, now); err != nil {
			return domainError(err)
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return updateError(uc.logger, t, err)
		}
		converted = t
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to convert ticket", "ticket_id", cmd.TicketID, "error", err)
			return nil, errors.NewInternalError("failed to convert ticket")
		}
		return nil, err
	}

	published := []events.DomainEvent{
		ticket.NewTicketCaseLinkedEvent(converted.ID(), created.ID, converted.UpdatedAt()),
	}
	if oldStatus != converted.Status() {
		published = append(published, ticket.NewTicketStatusChangedEvent(
			converted.ID(), oldStatus.String(), converted.Status().String(), cmd.ConvertedBy, "converted to case", converted.UpdatedAt()))
	}
	publishAll(uc.publisher, uc.logger, published...)

	uc.logger.Infow("ticket converted to case", "ticket_id", converted.ID(), "case_id", created.ID)
	return &dto.ConvertTicketResult{
		Ticket: dto.ToTicketDTO(converted),
		CaseID: created.ID,
	}, nil
}
