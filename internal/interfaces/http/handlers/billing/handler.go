package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hartlaw/hartlaw/internal/application/billing/dto"
	"github.com/hartlaw/hartlaw/internal/application/billing/usecases"
	"github.com/hartlaw/hartlaw/internal/interfaces/http/middleware"
	"github.com/hartlaw/hartlaw/internal/shared/constants"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
	"github.com/hartlaw/hartlaw/internal/shared/utils"
)

const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

// InvoiceRenderer turns an invoice summary into a document.
type InvoiceRenderer interface {
	Markdown(summary *dto.InvoiceSummaryDTO) (string, error)
	HTML(summary *dto.InvoiceSummaryDTO) (string, error)
}

type BillingHandler struct {
	addTimeEntryUC   usecases.AddTimeEntryExecutor
	invoiceSummaryUC usecases.InvoiceSummaryExecutor
	retainerQuoteUC  usecases.RetainerQuoteExecutor
	renderer         InvoiceRenderer
	logger           logger.Interface
}

func NewBillingHandler(
	addTimeEntryUC usecases.AddTimeEntryExecutor,
	invoiceSummaryUC usecases.InvoiceSummaryExecutor,
	retainerQuoteUC usecases.RetainerQuoteExecutor,
	renderer InvoiceRenderer,
	logger logger.Interface,
) *BillingHandler {
	return &BillingHandler{
		addTimeEntryUC:   addTimeEntryUC,
		invoiceSummaryUC: invoiceSummaryUC,
		retainerQuoteUC:  retainerQuoteUC,
		renderer:         renderer,
		logger:           logger,
	}
}

// AddTimeEntry handles POST /cases/:id/time-entries
func (h *BillingHandler) AddTimeEntry(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id", "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add time entry", "error", err, "case_id", caseID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addTimeEntryUC.Execute(c.Request.Context(), req.ToCommand(caseID, middleware.GetActorID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Time entry recorded"
	if result.Capped {
		message = "Internal conference hours capped at the daily limit"
	}
	utils.CreatedResponse(c, toTimeEntryResponse(result), message)
}

// InvoiceSummary handles GET /cases/:id/invoice?currency=&format=
func (h *BillingHandler) InvoiceSummary(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id", "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	format := c.DefaultQuery("format", formatJSON)
	if format != formatJSON && format != formatMarkdown && format != formatHTML {
		utils.ErrorResponseWithError(c, errors.NewValidationError("format must be json, markdown or html"))
		return
	}

	summary, err := h.invoiceSummaryUC.Execute(c.Request.Context(), usecases.InvoiceSummaryQuery{
		CaseID:   caseID,
		Currency: c.Query("currency"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	switch format {
	case formatMarkdown:
		doc, err := h.renderer.Markdown(summary)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewInternalError("failed to render invoice"))
			return
		}
		c.Data(http.StatusOK, constants.ContentTypeMarkdown, []byte(doc))
	case formatHTML:
		doc, err := h.renderer.HTML(summary)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewInternalError("failed to render invoice"))
			return
		}
		c.Data(http.StatusOK, constants.ContentTypeHTML, []byte(doc))
	default:
		utils.SuccessResponse(c, http.StatusOK, "", summary)
	}
}

// RetainerQuote handles GET /retainer?tier=&currency=
func (h *BillingHandler) RetainerQuote(c *gin.Context) {
	result, err := h.retainerQuoteUC.Execute(c.Request.Context(), usecases.RetainerQuoteQuery{
		Tier:     c.DefaultQuery("tier", "standard"),
		Currency: c.DefaultQuery("currency", "USD"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
