package mappers

import (
	"github.com/hartlaw/hartlaw/internal/domain/review"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/models"
)

type ReviewMapper interface {
	ToEntity(model *models.ReviewModel) *review.Review
	ToModel(entity *review.Review) *models.ReviewModel
}

type ReviewMapperImpl struct{}

func NewReviewMapper() ReviewMapper {
	return &ReviewMapperImpl{}
}

func (m *ReviewMapperImpl) ToEntity(model *models.ReviewModel) *review.Review {
	if model == nil {
		return nil
	}
	return review.ReconstructReview(
		model.ID,
		model.AuthorUserID,
		model.Rating,
		model.Text,
		model.ChannelMessageRef,
		model.CreatedAt.UTC(),
	)
}

func (m *ReviewMapperImpl) ToModel(entity *review.Review) *models.ReviewModel {
	if entity == nil {
		return nil
	}
	return &models.ReviewModel{
		ID:                entity.ID(),
		AuthorUserID:      entity.AuthorUserID(),
		Rating:            entity.Rating(),
		Text:              entity.Text(),
		ChannelMessageRef: entity.ChannelMessageRef(),
		CreatedAt:         entity.CreatedAt(),
	}
}
