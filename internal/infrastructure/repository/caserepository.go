package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/mappers"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/models"
	"github.com/hartlaw/hartlaw/internal/shared/db"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

// CaseRepositoryImpl implements legalcase.Repository using GORM.
type CaseRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CaseMapper
	logger logger.Interface
}

// NewCaseRepository creates a new case repository instance.
func NewCaseRepository(db *gorm.DB, logger logger.Interface) legalcase.Repository {
	return &CaseRepositoryImpl{
		db:     db,
		mapper: mappers.NewCaseMapper(),
		logger: logger,
	}
}

// Create inserts a case. A taken id surfaces as ErrCaseIDCollision so the
// caller can mint a new one.
func (r *CaseRepositoryImpl) Create(ctx context.Context, c *legalcase.Case) error {
	model := r.mapper.ToModel(c)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return fmt.Errorf("%w: %s", legalcase.ErrCaseIDCollision, c.ID())
		}
		r.logger.Errorw("failed to create case in database", "case_id", c.ID(), "error", err)
		return fmt.Errorf("failed to create case: %w", err)
	}

	return nil
}

// GetByID retrieves a case by its ID.
func (r *CaseRepositoryImpl) GetByID(ctx context.Context, id string) (*legalcase.Case, error) {
	var model models.CaseModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get case by ID", "case_id", id, "error", err)
		return nil, fmt.Errorf("failed to get case: %w", err)
	}

	return r.toEntity(&model)
}

// GetByChannel returns the newest case bound to a channel, or nil.
func (r *CaseRepositoryImpl) GetByChannel(ctx context.Context, channelRef string) (*legalcase.Case, error) {
	var model models.CaseModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("channel_ref = ?", channelRef).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get case by channel", "channel_ref", channelRef, "error", err)
		return nil, fmt.Errorf("failed to get case by channel: %w", err)
	}

	return r.toEntity(&model)
}

// Update overwrites every mutable column of an existing case.
func (r *CaseRepositoryImpl) Update(ctx context.Context, c *legalcase.Case) error {
	model := r.mapper.ToModel(c)

	loaded := model.Version
	model.Version = loaded + 1

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.CaseModel{}).
		Where("id = ? AND version = ?", model.ID, loaded).
		Select("status", "currency", "contingency_only", "contingency_percent", "archived_category_code", "archived_at", "version").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update case", "case_id", c.ID(), "error", result.Error)
		return fmt.Errorf("failed to update case: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.CaseModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to update case: %w", err)
		}
		if count == 0 {
			return legalcase.ErrCaseNotFound
		}
		r.logger.Warnw("case version mismatch", "case_id", c.ID(), "version", loaded)
		return legalcase.ErrConcurrentUpdate
	}

	c.SetVersion(model.Version)
	return nil
}

func (r *CaseRepositoryImpl) toEntity(model *models.CaseModel) (*legalcase.Case, error) {
	entity, err := r.mapper.ToEntity(model)
	if err != nil {
		r.logger.Errorw("failed to map case model to entity", "case_id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map case: %w", err)
	}
	return entity, nil
}
