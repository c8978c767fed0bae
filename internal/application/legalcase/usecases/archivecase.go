package usecases

import (
	"context"
	stderrors "errors"

	"github.com/hartlaw/hartlaw/internal/application/legalcase/dto"
	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	vo "github.com/hartlaw/hartlaw/internal/domain/legalcase/valueobjects"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type ArchiveCaseCommand struct {
	CaseID string
	// CategoryCode defaults to the division's category when empty.
	CategoryCode string
}

type ArchiveCaseUseCase struct {
	caseRepo legalcase.Repository
	clock    biztime.Clock
	logger   logger.Interface
}

func NewArchiveCaseUseCase(caseRepo legalcase.Repository, clock biztime.Clock, logger logger.Interface) *ArchiveCaseUseCase {
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &ArchiveCaseUseCase{
		caseRepo: caseRepo,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *ArchiveCaseUseCase) Execute(ctx context.Context, cmd ArchiveCaseCommand) (*dto.CaseDTO, error) {
	uc.logger.Infow("executing archive case use case", "case_id", cmd.CaseID, "category_code", cmd.CategoryCode)

	legalCase, err := loadCase(ctx, uc.caseRepo, uc.logger, cmd.CaseID)
	if err != nil {
		return nil, err
	}

	code := legalCase.Division().DefaultCategory()
	if cmd.CategoryCode != "" {
		if code, err = vo.NewCategoryCode(cmd.CategoryCode); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	wasArchived := legalCase.IsArchived()
	if err := legalCase.Archive(code, uc.clock.Now()); err != nil {
		if stderrors.Is(err, legalcase.ErrInvalidTransition) {
			return nil, errors.NewConflictError(err.Error()).WithCause(err)
		}
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.caseRepo.Update(ctx, legalCase); err != nil {
		return nil, updateError(uc.logger, legalCase, err, "failed to archive case")
	}

	uc.logger.Infow("case archived",
		"case_id", legalCase.ID(),
		"category_code", code.String(),
		"rearchived", wasArchived)
	return dto.ToCaseDTO(legalCase), nil
}
