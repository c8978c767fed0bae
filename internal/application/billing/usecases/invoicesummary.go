package usecases

import (
	"context"
	"strings"

	"github.com/hartlaw/hartlaw/internal/application/billing/dto"
	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type InvoiceSummaryQuery struct {
	CaseID string
	// Currency defaults to the case's own currency when empty.
	Currency string
}

type InvoiceSummaryUseCase struct {
	caseRepo  legalcase.Repository
	entryRepo billing.TimeEntryRepository
	logger    logger.Interface
}

func NewInvoiceSummaryUseCase(
	caseRepo legalcase.Repository,
	entryRepo billing.TimeEntryRepository,
	logger logger.Interface,
) *InvoiceSummaryUseCase {
	return &InvoiceSummaryUseCase{
		caseRepo:  caseRepo,
		entryRepo: entryRepo,
		logger:    logger,
	}
}

// Execute reads the ledger as it is at call time; nothing is cached.
func (uc *InvoiceSummaryUseCase) Execute(ctx context.Context, query InvoiceSummaryQuery) (*dto.InvoiceSummaryDTO, error) {
	uc.logger.Infow("executing invoice summary use case", "case_id", query.CaseID, "currency", query.Currency)

	caseID := strings.TrimSpace(query.CaseID)
	if caseID == "" {
		return nil, errors.NewValidationError("case ID is required")
	}

	legalCase, err := uc.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		uc.logger.Errorw("failed to load case", "case_id", caseID, "error", err)
		return nil, errors.NewInternalError("failed to load case")
	}
	if legalCase == nil {
		return nil, errors.NewNotFoundError("case not found", caseID).WithCause(legalcase.ErrCaseNotFound)
	}

	currency := legalCase.Currency()
	if query.Currency != "" {
		currency, err = billing.ParseCurrency(query.Currency)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	entries, err := uc.entryRepo.ListByCase(ctx, caseID)
	if err != nil {
		uc.logger.Errorw("failed to list time entries", "case_id", caseID, "error", err)
		return nil, errors.NewInternalError("failed to list time entries")
	}

	summary := billing.Summarize(caseID, currency, entries)

	uc.logger.Infow("invoice summary built",
		"case_id", caseID,
		"entries", len(summary.Entries),
		"subtotal", summary.Subtotal.StringFixed(2),
		"currency", currency.String())

	return dto.ToInvoiceSummaryDTO(summary, legalCase.ClientName(), legalCase.Contingency().Note()), nil
}
