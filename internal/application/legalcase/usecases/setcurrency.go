package usecases

import (
	"context"

	"github.com/hartlaw/hartlaw/internal/application/legalcase/dto"
	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type SetCurrencyCommand struct {
	CaseID   string
	Currency string
}

type SetCurrencyUseCase struct {
	caseRepo legalcase.Repository
	logger   logger.Interface
}

func NewSetCurrencyUseCase(caseRepo legalcase.Repository, logger logger.Interface) *SetCurrencyUseCase {
	return &SetCurrencyUseCase{
		caseRepo: caseRepo,
		logger:   logger,
	}
}

func (uc *SetCurrencyUseCase) Execute(ctx context.Context, cmd SetCurrencyCommand) (*dto.CaseDTO, error) {
	uc.logger.Infow("executing set currency use case", "case_id", cmd.CaseID, "currency", cmd.Currency)

	currency, err := billing.ParseCurrency(cmd.Currency)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	legalCase, err := loadCase(ctx, uc.caseRepo, uc.logger, cmd.CaseID)
	if err != nil {
		return nil, err
	}

	if err := legalCase.SetCurrency(currency); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.caseRepo.Update(ctx, legalCase); err != nil {
		return nil, updateError(uc.logger, legalCase, err, "failed to update case")
	}

	uc.logger.Infow("case currency updated", "case_id", legalCase.ID(), "currency", currency.String())
	return dto.ToCaseDTO(legalCase), nil
}
