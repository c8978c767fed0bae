package usecases

import (
	"context"

	"github.com/hartlaw/hartlaw/internal/application/legalcase/dto"
	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	vo "github.com/hartlaw/hartlaw/internal/domain/legalcase/valueobjects"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type SetContingencyCommand struct {
	CaseID string
	Only   bool
	// Percent must be 20 or 30 when set.
	Percent *int
}

type SetContingencyUseCase struct {
	caseRepo legalcase.Repository
	logger   logger.Interface
}

func NewSetContingencyUseCase(caseRepo legalcase.Repository, logger logger.Interface) *SetContingencyUseCase {
	return &SetContingencyUseCase{
		caseRepo: caseRepo,
		logger:   logger,
	}
}

func (uc *SetContingencyUseCase) Execute(ctx context.Context, cmd SetContingencyCommand) (*dto.CaseDTO, error) {
	uc.logger.Infow("executing set contingency use case", "case_id", cmd.CaseID, "only", cmd.Only, "percent", cmd.Percent)

	contingency, err := vo.NewContingency(cmd.Only, cmd.Percent)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	legalCase, err := loadCase(ctx, uc.caseRepo, uc.logger, cmd.CaseID)
	if err != nil {
		return nil, err
	}

	legalCase.SetContingency(contingency)
	if err := uc.caseRepo.Update(ctx, legalCase); err != nil {
		return nil, updateError(uc.logger, legalCase, err, "failed to update case")
	}

	uc.logger.Infow("case contingency updated", "case_id", legalCase.ID(), "note", contingency.Note())
	return dto.ToCaseDTO(legalCase), nil
}
