package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/hartlaw/hartlaw/internal/application/setting/dto"
	"github.com/hartlaw/hartlaw/internal/domain/setting"
	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type UpdateSettingCommand struct {
	Key       string
	Value     string
	UpdatedBy string
}

// UpdateSettingUseCase writes one allow-listed key. Writes are last write wins.
type UpdateSettingUseCase struct {
	settingRepo setting.Repository
	publisher   events.EventPublisher
	clock       biztime.Clock
	logger      logger.Interface
}

func NewUpdateSettingUseCase(
	settingRepo setting.Repository,
	publisher events.EventPublisher,
	clock biztime.Clock,
	logger logger.Interface,
) *UpdateSettingUseCase {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &UpdateSettingUseCase{
		settingRepo: settingRepo,
		publisher:   publisher,
		clock:       clock,
		logger:      logger,
	}
}

func (uc *UpdateSettingUseCase) Execute(ctx context.Context, cmd UpdateSettingCommand) (*dto.SettingResponse, error) {
	key := strings.TrimSpace(cmd.Key)
	value := strings.TrimSpace(cmd.Value)
	uc.logger.Infow("executing update setting use case", "key", key, "updated_by", cmd.UpdatedBy)

	if err := setting.ValidateWrite(key, value); err != nil {
		uc.logger.Warnw("rejected setting write", "key", key, "error", err)
		if stderrors.Is(err, setting.ErrInvalidSettingKey) {
			return nil, errors.NewValidationError("unknown setting key", key).WithCause(err)
		}
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	previous, err := uc.settingRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Errorw("failed to read setting", "key", key, "error", err)
		return nil, errors.NewInternalError("failed to read setting")
	}

	if err := uc.settingRepo.Upsert(ctx, key, value); err != nil {
		uc.logger.Errorw("failed to write setting", "key", key, "error", err)
		return nil, errors.NewInternalError("failed to write setting")
	}

	var oldValue string
	if previous != nil {
		oldValue = previous.Value()
	}
	if oldValue != value {
		event := setting.NewSettingChangedEvent(key, oldValue, value, cmd.UpdatedBy, uc.clock.Now())
		if err := uc.publisher.Publish(event); err != nil {
			uc.logger.Warnw("failed to notify setting change", "key", key, "error", err)
		}
	}

	uc.logger.Infow("setting updated", "key", key, "value", value)
	return &dto.SettingResponse{Key: key, Value: value, Source: setting.SourceDatabase}, nil
}
