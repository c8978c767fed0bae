package usecases

import (
	"context"

	"github.com/hartlaw/hartlaw/internal/application/legalcase/dto"
)

type CreateCaseExecutor interface {
	Execute(ctx context.Context, cmd CreateCaseCommand) (*dto.CaseDTO, error)
}

type GetCaseExecutor interface {
	Execute(ctx context.Context, query GetCaseQuery) (*dto.CaseDTO, error)
}

type SetCurrencyExecutor interface {
	Execute(ctx context.Context, cmd SetCurrencyCommand) (*dto.CaseDTO, error)
}

type SetContingencyExecutor interface {
	Execute(ctx context.Context, cmd SetContingencyCommand) (*dto.CaseDTO, error)
}

type ArchiveCaseExecutor interface {
	Execute(ctx context.Context, cmd ArchiveCaseCommand) (*dto.CaseDTO, error)
}
