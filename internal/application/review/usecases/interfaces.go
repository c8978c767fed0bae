package usecases

import (
	"context"

	"github.com/hartlaw/hartlaw/internal/application/review/dto"
)

type AddReviewExecutor interface {
	Execute(ctx context.Context, cmd AddReviewCommand) (*dto.ReviewDTO, error)
}
