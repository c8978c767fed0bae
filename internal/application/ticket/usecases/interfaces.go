package usecases

import (
	"context"

	"github.com/hartlaw/hartlaw/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error)
}

type LinkCaseExecutor interface {
	Execute(ctx context.Context, cmd LinkCaseCommand) (*dto.TicketDTO, error)
}

type ConvertTicketExecutor interface {
	Execute(ctx context.Context, cmd ConvertTicketCommand) (*dto.ConvertTicketResult, error)
}
