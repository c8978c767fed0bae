package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hartlaw/hartlaw/internal/application/rate/usecases"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
	"github.com/hartlaw/hartlaw/internal/shared/utils"
)

// RateHandler serves the published hourly rate table.
type RateHandler struct {
	listRatesUC usecases.ListRatesExecutor
	logger      logger.Interface
}

// NewRateHandler creates a new rate handler
func NewRateHandler(listRatesUC usecases.ListRatesExecutor, logger logger.Interface) *RateHandler {
	return &RateHandler{
		listRatesUC: listRatesUC,
		logger:      logger,
	}
}

// ListRates handles GET /rates
// Query parameters:
//   - tier: standard (default), high-profile or scotus
func (h *RateHandler) ListRates(c *gin.Context) {
	result, err := h.listRatesUC.Execute(c.Request.Context(), usecases.ListRatesQuery{
		Tier: c.Query("tier"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
