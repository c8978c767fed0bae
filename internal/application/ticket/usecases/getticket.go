package usecases

import (
	"context"
	"strings"

	"github.com/hartlaw/hartlaw/internal/application/ticket/dto"
	"github.com/hartlaw/hartlaw/internal/domain/ticket"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

// GetTicketQuery finds a ticket by id, or the newest one opened in ThreadRef.
type GetTicketQuery struct {
	TicketID  string
	ThreadRef string
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if strings.TrimSpace(query.TicketID) != "" {
		t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, query.TicketID)
		if err != nil {
			return nil, err
		}
		return dto.ToTicketDTO(t), nil
	}

	threadRef := strings.TrimSpace(query.ThreadRef)
	if threadRef == "" {
		return nil, errors.NewValidationError("ticket ID or thread reference is required")
	}
	t, err := uc.ticketRepo.GetLatestByThread(ctx, threadRef)
	if err != nil {
		uc.logger.Errorw("failed to load ticket by thread", "thread_ref", threadRef, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("no ticket in thread", threadRef).WithCause(ticket.ErrTicketNotFound)
	}
	return dto.ToTicketDTO(t), nil
}
