package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/hartlaw/hartlaw/internal/application/legalcase/dto"
	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	vo "github.com/hartlaw/hartlaw/internal/domain/legalcase/valueobjects"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

// maxMintAttempts bounds how many fresh ids are drawn when an insert collides.
const maxMintAttempts = 3

type CreateCaseCommand struct {
	Division   string
	ClientName string
	ChannelRef string
	// Currency defaults to USD when empty.
	Currency string
}

type CreateCaseUseCase struct {
	caseRepo legalcase.Repository
	mintID   func(clientName string) (string, error)
	clock    biztime.Clock
	logger   logger.Interface
}

func NewCreateCaseUseCase(caseRepo legalcase.Repository, clock biztime.Clock, logger logger.Interface) *CreateCaseUseCase {
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &CreateCaseUseCase{
		caseRepo: caseRepo,
		mintID:   legalcase.MintCaseID,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *CreateCaseUseCase) Execute(ctx context.Context, cmd CreateCaseCommand) (*dto.CaseDTO, error) {
	uc.logger.Infow("executing create case use case",
		"division", cmd.Division,
		"client_name", cmd.ClientName,
		"channel_ref", cmd.ChannelRef)

	division, err := vo.NewDivision(cmd.Division)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if strings.TrimSpace(cmd.ClientName) == "" {
		return nil, errors.NewValidationError("client name is required")
	}
	var currency billing.Currency
	if cmd.Currency != "" {
		if currency, err = billing.ParseCurrency(cmd.Currency); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	for attempt := 1; attempt <= maxMintAttempts; attempt++ {
		caseID, err := uc.mintID(cmd.ClientName)
		if err != nil {
			uc.logger.Errorw("failed to mint case ID", "error", err)
			return nil, errors.NewInternalError("failed to mint case ID")
		}

		legalCase, err := legalcase.NewCase(caseID, division, cmd.ClientName, cmd.ChannelRef, currency, uc.clock.Now())
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		err = uc.caseRepo.Create(ctx, legalCase)
		if err == nil {
			uc.logger.Infow("case created", "case_id", caseID, "attempt", attempt)
			return dto.ToCaseDTO(legalCase), nil
		}
		if !stderrors.Is(err, legalcase.ErrCaseIDCollision) {
			uc.logger.Errorw("failed to create case", "case_id", caseID, "error", err)
			return nil, errors.NewInternalError("failed to create case")
		}
		uc.logger.Warnw("case ID collision, minting a new one", "case_id", caseID, "attempt", attempt)
	}

	appErr := errors.NewConflictError("could not allocate a unique case ID")
	appErr.Retryable = true
	return nil, appErr.WithCause(legalcase.ErrCaseIDCollision)
}
