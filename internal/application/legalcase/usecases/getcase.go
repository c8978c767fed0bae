package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/hartlaw/hartlaw/internal/application/legalcase/dto"
	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

// GetCaseQuery looks a case up by id, or by the channel it was opened in when
// CaseID is empty.
type GetCaseQuery struct {
	CaseID     string
	ChannelRef string
}

type GetCaseUseCase struct {
	caseRepo legalcase.Repository
	logger   logger.Interface
}

func NewGetCaseUseCase(caseRepo legalcase.Repository, logger logger.Interface) *GetCaseUseCase {
	return &GetCaseUseCase{
		caseRepo: caseRepo,
		logger:   logger,
	}
}

func (uc *GetCaseUseCase) Execute(ctx context.Context, query GetCaseQuery) (*dto.CaseDTO, error) {
	caseID := strings.TrimSpace(query.CaseID)
	channelRef := strings.TrimSpace(query.ChannelRef)
	if caseID == "" && channelRef == "" {
		return nil, errors.NewValidationError("case ID or channel reference is required")
	}

	var (
		legalCase *legalcase.Case
		err       error
	)
	if caseID != "" {
		legalCase, err = uc.caseRepo.GetByID(ctx, caseID)
	} else {
		legalCase, err = uc.caseRepo.GetByChannel(ctx, channelRef)
	}
	if err != nil {
		uc.logger.Errorw("failed to load case", "case_id", caseID, "channel_ref", channelRef, "error", err)
		return nil, errors.NewInternalError("failed to load case")
	}
	if legalCase == nil {
		return nil, errors.NewNotFoundError("case not found").WithCause(legalcase.ErrCaseNotFound)
	}

	return dto.ToCaseDTO(legalCase), nil
}

// loadCase is shared by the mutating use cases.
func loadCase(ctx context.Context, repo legalcase.Repository, log logger.Interface, caseID string) (*legalcase.Case, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return nil, errors.NewValidationError("case ID is required")
	}
	legalCase, err := repo.GetByID(ctx, caseID)
	if err != nil {
		log.Errorw("failed to load case", "case_id", caseID, "error", err)
		return nil, errors.NewInternalError("failed to load case")
	}
	if legalCase == nil {
		return nil, errors.NewNotFoundError("case not found", caseID).WithCause(legalcase.ErrCaseNotFound)
	}
	return legalCase, nil
}

// updateError maps a failed case write. A version mismatch means another
// request changed the case after it was loaded, so the caller may retry.
func updateError(log logger.Interface, c *legalcase.Case, err error, message string) error {
	if stderrors.Is(err, legalcase.ErrConcurrentUpdate) {
		appErr := errors.NewConflictError("case was modified concurrently, retry", c.ID())
		appErr.Retryable = true
		return appErr.WithCause(err)
	}
	if stderrors.Is(err, legalcase.ErrCaseNotFound) {
		return errors.NewNotFoundError("case not found", c.ID()).WithCause(err)
	}
	log.Errorw("failed to update case", "case_id", c.ID(), "error", err)
	return errors.NewInternalError(message)
}
