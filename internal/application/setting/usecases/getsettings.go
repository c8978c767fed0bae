package usecases

import (
	"context"

	"github.com/hartlaw/hartlaw/internal/application/setting/dto"
	"github.com/hartlaw/hartlaw/internal/domain/setting"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

// GetSettingsUseCase lists every runtime setting, falling back to the
// built-in defaults for keys never written. Counter keys are not listed.
type GetSettingsUseCase struct {
	settingRepo setting.Repository
	defaults    map[string]string
	logger      logger.Interface
}

func NewGetSettingsUseCase(settingRepo setting.Repository, defaults map[string]string, logger logger.Interface) *GetSettingsUseCase {
	if defaults == nil {
		defaults = setting.DefaultValues
	}
	return &GetSettingsUseCase{
		settingRepo: settingRepo,
		defaults:    defaults,
		logger:      logger,
	}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*dto.SettingsResponse, error) {
	stored, err := uc.settingRepo.All(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list settings", "error", err)
		return nil, errors.NewInternalError("failed to list settings")
	}
	return dto.ToSettingsResponse(setting.Resolve(stored, uc.defaults)), nil
}
