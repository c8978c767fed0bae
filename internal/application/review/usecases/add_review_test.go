package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartlaw/hartlaw/internal/domain/review"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	apperrors "github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type mockReviewRepository struct {
	SaveFunc func(ctx context.Context, r *review.Review) error
	saved    []*review.Review
}

func (m *mockReviewRepository) Save(ctx context.Context, r *review.Review) error {
	if m.SaveFunc != nil {
		if err := m.SaveFunc(ctx, r); err != nil {
			return err
		}
	}
	m.saved = append(m.saved, r)
	return nil
}

func TestAddReviewUseCase_Execute(t *testing.T) {
	repo := &mockReviewRepository{}
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	uc := NewAddReviewUseCase(repo, biztime.NewFixedClock(now), logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), AddReviewCommand{
		AuthorUserID:      "user-3",
		Rating:            5,
		Text:              "  Won my appeal.  ",
		ChannelMessageRef: "msg-44",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got.ID, "rev_"), got.ID)
	assert.Equal(t, "Won my appeal.", got.Text)
	assert.Equal(t, now, got.CreatedAt)
	assert.Len(t, repo.saved, 1)
}

func TestAddReviewUseCase_Errors(t *testing.T) {
	tests := []struct {
		name     string
		cmd      AddReviewCommand
		saveErr  error
		wantType apperrors.ErrorType
	}{
		{name: "rating too low", cmd: AddReviewCommand{AuthorUserID: "u", Rating: 0}, wantType: apperrors.ErrorTypeValidation},
		{name: "rating too high", cmd: AddReviewCommand{AuthorUserID: "u", Rating: 6}, wantType: apperrors.ErrorTypeValidation},
		{name: "missing author", cmd: AddReviewCommand{Rating: 4}, wantType: apperrors.ErrorTypeValidation},
		{name: "save failure", cmd: AddReviewCommand{AuthorUserID: "u", Rating: 4}, saveErr: errors.New("full"), wantType: apperrors.ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockReviewRepository{SaveFunc: func(context.Context, *review.Review) error { return tt.saveErr }}
			uc := NewAddReviewUseCase(repo, nil, logger.NewNopLogger())

			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.Equal(t, tt.wantType, apperrors.GetAppError(err).Type)
			assert.Empty(t, repo.saved)
		})
	}
}

func TestAddReviewUseCase_InvalidRatingKeepsSentinel(t *testing.T) {
	uc := NewAddReviewUseCase(&mockReviewRepository{}, nil, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), AddReviewCommand{AuthorUserID: "u", Rating: 9})
	assert.True(t, errors.Is(err, review.ErrInvalidRating))
}
