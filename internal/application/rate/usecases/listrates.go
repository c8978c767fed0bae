package usecases

import (
	"context"

	"github.com/hartlaw/hartlaw/internal/application/rate/dto"
	"github.com/hartlaw/hartlaw/internal/domain/rate"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type ListRatesQuery struct {
	// Tier defaults to standard when empty.
	Tier string
}

type ListRatesUseCase struct {
	rateRepo rate.Repository
	logger   logger.Interface
}

func NewListRatesUseCase(rateRepo rate.Repository, logger logger.Interface) *ListRatesUseCase {
	return &ListRatesUseCase{
		rateRepo: rateRepo,
		logger:   logger,
	}
}

func (uc *ListRatesUseCase) Execute(ctx context.Context, query ListRatesQuery) (*dto.RateTableDTO, error) {
	tier := rate.TierStandard
	if query.Tier != "" {
		var err error
		if tier, err = rate.NewTier(query.Tier); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	entries, err := uc.rateRepo.ListByTier(ctx, tier)
	if err != nil {
		uc.logger.Errorw("failed to list rates", "tier", tier.String(), "error", err)
		return nil, errors.NewInternalError("failed to list rates")
	}
	if len(entries) == 0 {
		uc.logger.Warnw("rate table has no rows for tier", "tier", tier.String())
	}

	return dto.ToRateTableDTO(tier, entries), nil
}
