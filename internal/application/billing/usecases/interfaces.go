package usecases

import (
	"context"

	"github.com/hartlaw/hartlaw/internal/application/billing/dto"
)

type AddTimeEntryExecutor interface {
	Execute(ctx context.Context, cmd AddTimeEntryCommand) (*AddTimeEntryResult, error)
}

type InvoiceSummaryExecutor interface {
	Execute(ctx context.Context, query InvoiceSummaryQuery) (*dto.InvoiceSummaryDTO, error)
}

type RetainerQuoteExecutor interface {
	Execute(ctx context.Context, query RetainerQuoteQuery) (*dto.RetainerQuoteDTO, error)
}
