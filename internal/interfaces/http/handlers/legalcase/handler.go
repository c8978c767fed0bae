package legalcase

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hartlaw/hartlaw/internal/application/legalcase/usecases"
	"github.com/hartlaw/hartlaw/internal/interfaces/http/middleware"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
	"github.com/hartlaw/hartlaw/internal/shared/utils"
)

type CaseHandler struct {
	createCaseUC     usecases.CreateCaseExecutor
	getCaseUC        usecases.GetCaseExecutor
	setCurrencyUC    usecases.SetCurrencyExecutor
	setContingencyUC usecases.SetContingencyExecutor
	archiveCaseUC    usecases.ArchiveCaseExecutor
	logger           logger.Interface
}

func NewCaseHandler(
	createCaseUC usecases.CreateCaseExecutor,
	getCaseUC usecases.GetCaseExecutor,
	setCurrencyUC usecases.SetCurrencyExecutor,
	setContingencyUC usecases.SetContingencyExecutor,
	archiveCaseUC usecases.ArchiveCaseExecutor,
	logger logger.Interface,
) *CaseHandler {
	return &CaseHandler{
		createCaseUC:     createCaseUC,
		getCaseUC:        getCaseUC,
		setCurrencyUC:    setCurrencyUC,
		setContingencyUC: setContingencyUC,
		archiveCaseUC:    archiveCaseUC,
		logger:           logger,
	}
}

// CreateCase handles POST /cases
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var req CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create case", "error", err, "actor_id", middleware.GetActorID(c))
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCaseUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Case created successfully")
}

// GetCase handles GET /cases/:id
func (h *CaseHandler) GetCase(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id", "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCaseUC.Execute(c.Request.Context(), usecases.GetCaseQuery{CaseID: caseID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SetCurrency handles PUT /cases/:id/currency
func (h *CaseHandler) SetCurrency(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id", "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setCurrencyUC.Execute(c.Request.Context(), usecases.SetCurrencyCommand{
		CaseID:   caseID,
		Currency: req.Currency,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Billing currency updated", result)
}

// SetContingency handles PUT /cases/:id/contingency
func (h *CaseHandler) SetContingency(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id", "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetContingencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setContingencyUC.Execute(c.Request.Context(), usecases.SetContingencyCommand{
		CaseID:  caseID,
		Only:    req.Only,
		Percent: req.Percent,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contingency updated", result)
}

// ArchiveCase handles POST /cases/:id/archive. The body is optional.
func (h *CaseHandler) ArchiveCase(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "id", "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ArchiveCaseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.archiveCaseUC.Execute(c.Request.Context(), usecases.ArchiveCaseCommand{
		CaseID:       caseID,
		CategoryCode: req.CategoryCode,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("case archived via API", "case_id", caseID, "actor_id", middleware.GetActorID(c))
	utils.SuccessResponse(c, http.StatusOK, "Case archived", result)
}
