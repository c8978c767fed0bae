package repository

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hartlaw/hartlaw/internal/domain/setting"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/mappers"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/models"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/db"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

// SettingRepository implements setting.Repository
type SettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SettingMapper
	clock  biztime.Clock
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(db *gorm.DB, logger logger.Interface, clock biztime.Clock) *SettingRepository {
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &SettingRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewSettingMapper(),
		clock:  clock,
	}
}

var _ setting.Repository = (*SettingRepository)(nil)

// Get retrieves a setting by key
func (r *SettingRepository) Get(ctx context.Context, key string) (*setting.Setting, error) {
	var model models.SettingModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("setting_key = ?", key).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get setting by key", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get setting by key: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// All retrieves all settings
func (r *SettingRepository) All(ctx context.Context) ([]*setting.Setting, error) {
	var modelList []*models.SettingModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("setting_key ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get all settings", "error", err)
		return nil, fmt.Errorf("failed to get all settings: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// Upsert creates or updates a setting. An overwrite bumps the version.
func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	model := &models.SettingModel{
		SettingKey: key,
		Value:      value,
		Version:    1,
		UpdatedAt:  r.clock.Now(),
	}

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"version":    gorm.Expr("version + 1"),
			"updated_at": model.UpdatedAt,
		}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert setting", "key", key, "error", err)
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	return nil
}

// SeedDefaults inserts missing keys and leaves existing values alone
func (r *SettingRepository) SeedDefaults(ctx context.Context, defaults map[string]string) error {
	if len(defaults) == 0 {
		return nil
	}

	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	now := r.clock.Now()
	modelList := make([]*models.SettingModel, 0, len(keys))
	for _, k := range keys {
		modelList = append(modelList, &models.SettingModel{
			SettingKey: k,
			Value:      defaults[k],
			Version:    1,
			UpdatedAt:  now,
		})
	}

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoNothing: true,
	}).Create(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to seed default settings", "count", len(keys), "error", err)
		return fmt.Errorf("failed to seed default settings: %w", err)
	}

	return nil
}
