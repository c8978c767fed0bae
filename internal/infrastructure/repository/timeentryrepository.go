package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/mappers"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/models"
	"github.com/hartlaw/hartlaw/internal/shared/db"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

// TimeEntryRepositoryImpl implements billing.TimeEntryRepository using GORM.
type TimeEntryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TimeEntryMapper
	logger logger.Interface
}

// NewTimeEntryRepository creates a new time entry repository instance.
func NewTimeEntryRepository(db *gorm.DB, logger logger.Interface) billing.TimeEntryRepository {
	return &TimeEntryRepositoryImpl{
		db:     db,
		mapper: mappers.NewTimeEntryMapper(),
		logger: logger,
	}
}

func (r *TimeEntryRepositoryImpl) Save(ctx context.Context, entry *billing.TimeEntry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		r.logger.Errorw("failed to map time entry entity to model", "error", err)
		return fmt.Errorf("failed to map time entry: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to save time entry", "entry_id", entry.ID(), "case_id", entry.CaseID(), "error", err)
		return fmt.Errorf("failed to save time entry: %w", err)
	}

	return nil
}

func (r *TimeEntryRepositoryImpl) ListByCase(ctx context.Context, caseID string) ([]*billing.TimeEntry, error) {
	var modelList []*models.TimeEntryModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("case_id = ?", caseID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list time entries", "case_id", caseID, "error", err)
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

// SumInternalHours adds the hours in Go so the total stays exact on every driver.
func (r *TimeEntryRepositoryImpl) SumInternalHours(ctx context.Context, caseID string, from, to time.Time) (decimal.Decimal, error) {
	var hours []decimal.Decimal

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.TimeEntryModel{}).
		Where("case_id = ? AND internal_conference = ?", caseID, true).
		Where("created_at >= ? AND created_at < ?", from.UnixMilli(), to.UnixMilli()).
		Pluck("hours", &hours).Error
	if err != nil {
		r.logger.Errorw("failed to sum internal hours", "case_id", caseID, "error", err)
		return decimal.Zero, fmt.Errorf("failed to sum internal hours: %w", err)
	}

	return decimal.Sum(decimal.Zero, hours...), nil
}
