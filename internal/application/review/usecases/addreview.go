package usecases

import (
	"context"

	"github.com/hartlaw/hartlaw/internal/application/review/dto"
	"github.com/hartlaw/hartlaw/internal/domain/review"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/id"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type AddReviewCommand struct {
	AuthorUserID      string
	Rating            int
	Text              string
	ChannelMessageRef string
}

type AddReviewUseCase struct {
	reviewRepo review.Repository
	newID      func() (string, error)
	clock      biztime.Clock
	logger     logger.Interface
}

func NewAddReviewUseCase(reviewRepo review.Repository, clock biztime.Clock, logger logger.Interface) *AddReviewUseCase {
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &AddReviewUseCase{
		reviewRepo: reviewRepo,
		newID:      id.NewReviewID,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *AddReviewUseCase) Execute(ctx context.Context, cmd AddReviewCommand) (*dto.ReviewDTO, error) {
	uc.logger.Infow("executing add review use case", "author_user_id", cmd.AuthorUserID, "rating", cmd.Rating)

	reviewID, err := uc.newID()
	if err != nil {
		uc.logger.Errorw("failed to mint review ID", "error", err)
		return nil, errors.NewInternalError("failed to mint review ID")
	}

	r, err := review.NewReview(reviewID, cmd.AuthorUserID, cmd.Rating, cmd.Text, cmd.ChannelMessageRef, uc.clock.Now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := uc.reviewRepo.Save(ctx, r); err != nil {
		uc.logger.Errorw("failed to save review", "review_id", reviewID, "error", err)
		return nil, errors.NewInternalError("failed to save review")
	}

	uc.logger.Infow("review recorded", "review_id", reviewID, "rating", r.Rating())
	return dto.ToReviewDTO(r), nil
}
