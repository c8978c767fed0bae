package usecases

import (
	"context"

	"github.com/hartlaw/hartlaw/internal/application/setting/dto"
)

type GetSettingsExecutor interface {
	Execute(ctx context.Context) (*dto.SettingsResponse, error)
}

type UpdateSettingExecutor interface {
	Execute(ctx context.Context, cmd UpdateSettingCommand) (*dto.SettingResponse, error)
}
