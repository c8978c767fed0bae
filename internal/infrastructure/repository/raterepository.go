package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hartlaw/hartlaw/internal/domain/rate"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/mappers"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/models"
	"github.com/hartlaw/hartlaw/internal/shared/db"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

const rateSeedBatchSize = 50

// RateRepositoryImpl implements rate.Repository using GORM.
type RateRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RateMapper
	logger logger.Interface
}

// NewRateRepository creates a new rate repository instance.
func NewRateRepository(db *gorm.DB, logger logger.Interface) rate.Repository {
	return &RateRepositoryImpl{
		db:     db,
		mapper: mappers.NewRateMapper(),
		logger: logger,
	}
}

func (r *RateRepositoryImpl) GetRate(ctx context.Context, role string, tier rate.Tier) (decimal.Decimal, bool, error) {
	var model models.RateModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("role = ? AND tier = ?", role, tier.String()).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return decimal.Zero, false, nil
		}
		r.logger.Errorw("failed to get rate", "role", role, "tier", tier, "error", err)
		return decimal.Zero, false, fmt.Errorf("failed to get rate: %w", err)
	}

	return model.Rate, true, nil
}

// ListByTier returns rows in seed order.
func (r *RateRepositoryImpl) ListByTier(ctx context.Context, tier rate.Tier) ([]*rate.Entry, error) {
	var modelList []*models.RateModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("tier = ?", tier.String()).Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list rates", "tier", tier, "error", err)
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}

	entries := make([]*rate.Entry, 0, len(modelList))
	for _, model := range modelList {
		entry, err := r.mapper.ToEntity(model)
		if err != nil {
			r.logger.Errorw("failed to map rate model", "id", model.ID, "error", err)
			return nil, fmt.Errorf("failed to map rate: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *RateRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.RateModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count rates: %w", err)
	}

	return count, nil
}

// SaveAll inserts the rows, skipping any (role, tier) already present.
func (r *RateRepositoryImpl) SaveAll(ctx context.Context, entries []*rate.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	modelList := make([]*models.RateModel, 0, len(entries))
	for _, entry := range entries {
		modelList = append(modelList, r.mapper.ToModel(entry))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role"}, {Name: "tier"}},
		DoNothing: true,
	}).CreateInBatches(modelList, rateSeedBatchSize).Error
	if err != nil {
		r.logger.Errorw("failed to save rates", "count", len(entries), "error", err)
		return fmt.Errorf("failed to save rates: %w", err)
	}

	return nil
}
