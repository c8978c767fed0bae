package usecases

import (
	"context"

	"github.com/hartlaw/hartlaw/internal/application/rate/dto"
)

type ListRatesExecutor interface {
	Execute(ctx context.Context, query ListRatesQuery) (*dto.RateTableDTO, error)
}
