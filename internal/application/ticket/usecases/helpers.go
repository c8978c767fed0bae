package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
	"github.com/hartlaw/hartlaw/internal/domain/ticket"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

func loadTicket(ctx context.Context, repo ticket.TicketRepository, log logger.Interface, ticketID string) (*ticket.Ticket, error) {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	t, err := repo.GetByID(ctx, ticketID)
	if err != nil {
		log.Errorw("failed to load ticket", "ticket_id", ticketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found", ticketID).WithCause(ticket.ErrTicketNotFound)
	}
	return t, nil
}

// domainError maps ticket state errors onto AppErrors. Anything else is a
// plain validation failure.
func domainError(err error) error {
	if errors.IsAppError(err) {
		return err
	}
	switch {
	case stderrors.Is(err, ticket.ErrInvalidTransition),
		stderrors.Is(err, ticket.ErrTicketClosed),
		stderrors.Is(err, ticket.ErrCaseAlreadyLinked):
		return errors.NewConflictError(err.Error()).WithCause(err)
	default:
		return errors.NewValidationError(err.Error())
	}
}

func publishAll(publisher events.EventPublisher, log logger.Interface, evts ...events.DomainEvent) {
	for _, e := range evts {
		if err := publisher.Publish(e); err != nil {
			log.Warnw("failed to dispatch event", "event_type", e.GetEventType(), "error", err)
		}
	}
}

// updateError maps a failed ticket write. A version mismatch means another
// request changed the ticket after it was loaded, so the caller may retry.
func updateError(log logger.Interface, t *ticket.Ticket, err error) error {
	if errors.IsAppError(err) {
		return err
	}
	if stderrors.Is(err, ticket.ErrConcurrentUpdate) {
		appErr := errors.NewConflictError("ticket was modified concurrently, retry", t.ID())
		appErr.Retryable = true
		return appErr.WithCause(err)
	}
	if stderrors.Is(err, ticket.ErrTicketNotFound) {
		return errors.NewNotFoundError("ticket not found", t.ID()).WithCause(err)
	}
	log.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
	return errors.NewInternalError("failed to update ticket")
}
