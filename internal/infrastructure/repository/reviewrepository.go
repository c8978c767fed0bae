package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hartlaw/hartlaw/internal/domain/review"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/mappers"
	"github.com/hartlaw/hartlaw/internal/shared/db"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type ReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ReviewMapper
	logger logger.Interface
}

func NewReviewRepository(db *gorm.DB, logger logger.Interface) review.Repository {
	return &ReviewRepositoryImpl{
		db:     db,
		mapper: mappers.NewReviewMapper(),
		logger: logger,
	}
}

func (r *ReviewRepositoryImpl) Save(ctx context.Context, rv *review.Review) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.ToModel(rv)).Error; err != nil {
		r.logger.Errorw("failed to save review", "review_id", rv.ID(), "error", err)
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}
