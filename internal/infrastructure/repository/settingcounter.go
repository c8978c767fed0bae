package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hartlaw/hartlaw/internal/domain/setting"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/models"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/db"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

const (
	defaultCounterAttempts = 25
	counterRetryBackoff    = 2 * time.Millisecond
)

// SettingCounter is a setting.Counter stored in the settings table. Each
// increment is a compare-and-swap on the row version, retried a bounded
// number of times before giving up with ErrCounterContention.
type SettingCounter struct {
	db          *gorm.DB
	logger      logger.Interface
	clock       biztime.Clock
	maxAttempts int
}

func NewSettingCounter(db *gorm.DB, logger logger.Interface, clock biztime.Clock) *SettingCounter {
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &SettingCounter{
		db:          db,
		logger:      logger,
		clock:       clock,
		maxAttempts: defaultCounterAttempts,
	}
}

var _ setting.Counter = (*SettingCounter)(nil)

func (c *SettingCounter) Increment(ctx context.Context, key string) (int64, error) {
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		next, ok, err := c.tryIncrement(ctx, key)
		if err != nil {
			return 0, err
		}
		if ok {
			return next, nil
		}

		c.logger.Debugw("counter compare-and-swap lost, retrying", "key", key, "attempt", attempt)
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(time.Duration(attempt) * counterRetryBackoff):
		}
	}

	c.logger.Warnw("counter increment gave up", "key", key, "attempts", c.maxAttempts)
	return 0, fmt.Errorf("%w: %s", setting.ErrCounterContention, key)
}

// tryIncrement makes one attempt. ok is false when another writer got there first.
func (c *SettingCounter) tryIncrement(ctx context.Context, key string) (int64, bool, error) {
	tx := db.GetTxFromContext(ctx, c.db)
	now := c.clock.Now()

	var model models.SettingModel
	err := tx.Where("setting_key = ?", key).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.SettingModel{
			SettingKey: key,
			Value:      "1",
			Version:    1,
			UpdatedAt:  now,
		})
		if result.Error != nil {
			c.logger.Errorw("failed to create counter", "key", key, "error", result.Error)
			return 0, false, fmt.Errorf("failed to create counter: %w", result.Error)
		}
		return 1, result.RowsAffected == 1, nil
	}
	if err != nil {
		c.logger.Errorw("failed to read counter", "key", key, "error", err)
		return 0, false, fmt.Errorf("failed to read counter: %w", err)
	}

	current := int64(0)
	if model.Value != "" {
		current, err = strconv.ParseInt(model.Value, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("%w: counter %s holds %q", setting.ErrInvalidValue, key, model.Value)
		}
	}
	next := current + 1

	result := tx.Model(&models.SettingModel{}).
		Where("setting_key = ? AND version = ?", key, model.Version).
		Updates(map[string]interface{}{
			"value":      strconv.FormatInt(next, 10),
			"version":    model.Version + 1,
			"updated_at": now,
		})
	if result.Error != nil {
		c.logger.Errorw("failed to update counter", "key", key, "error", result.Error)
		return 0, false, fmt.Errorf("failed to update counter: %w", result.Error)
	}

	return next, result.RowsAffected == 1, nil
}
