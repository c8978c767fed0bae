package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hartlaw/hartlaw/internal/application/setting/dto"
	"github.com/hartlaw/hartlaw/internal/application/setting/usecases"
	"github.com/hartlaw/hartlaw/internal/interfaces/http/middleware"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
	"github.com/hartlaw/hartlaw/internal/shared/utils"
)

// SettingHandler exposes the runtime policy settings to staff.
type SettingHandler struct {
	getSettingsUC   usecases.GetSettingsExecutor
	updateSettingUC usecases.UpdateSettingExecutor
	logger          logger.Interface
}

// NewSettingHandler creates a new setting handler
func NewSettingHandler(
	getSettingsUC usecases.GetSettingsExecutor,
	updateSettingUC usecases.UpdateSettingExecutor,
	logger logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		getSettingsUC:   getSettingsUC,
		updateSettingUC: updateSettingUC,
		logger:          logger,
	}
}

// GetSettings handles GET /settings
func (h *SettingHandler) GetSettings(c *gin.Context) {
	result, err := h.getSettingsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateSetting handles PUT /settings/:key
func (h *SettingHandler) UpdateSetting(c *gin.Context) {
	key, err := utils.ParseIDParam(c, "key", "setting")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateSettingUC.Execute(c.Request.Context(), usecases.UpdateSettingCommand{
		Key:       key,
		Value:     req.Value,
		UpdatedBy: middleware.GetActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Setting updated", result)
}
