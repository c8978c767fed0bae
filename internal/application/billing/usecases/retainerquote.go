package usecases

import (
	"context"

	"github.com/hartlaw/hartlaw/internal/application/billing/dto"
	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/domain/rate"
	"github.com/hartlaw/hartlaw/internal/shared/constants"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type RetainerQuoteQuery struct {
	Tier     string
	Currency string
}

type RetainerQuoteUseCase struct {
	rateRepo rate.Repository
	logger   logger.Interface
}

func NewRetainerQuoteUseCase(rateRepo rate.Repository, logger logger.Interface) *RetainerQuoteUseCase {
	return &RetainerQuoteUseCase{
		rateRepo: rateRepo,
		logger:   logger,
	}
}

func (uc *RetainerQuoteUseCase) Execute(ctx context.Context, query RetainerQuoteQuery) (*dto.RetainerQuoteDTO, error) {
	uc.logger.Infow("executing retainer quote use case", "tier", query.Tier, "currency", query.Currency)

	tier, err := rate.NewTier(query.Tier)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	currency, err := billing.ParseCurrency(query.Currency)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	leadRate, found, err := uc.rateRepo.GetRate(ctx, constants.LeadCounselRole, tier)
	if err != nil {
		uc.logger.Errorw("failed to look up lead counsel rate", "tier", tier, "error", err)
		return nil, errors.NewInternalError("failed to look up lead counsel rate")
	}
	if !found && currency == billing.CurrencyUSD {
		uc.logger.Warnw("no lead counsel rate for tier, quoting zero", "tier", tier.String())
	}

	return dto.ToRetainerQuoteDTO(billing.QuoteRetainer(tier, currency, leadRate)), nil
}
