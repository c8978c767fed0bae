package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MinRating     = 1
	MaxRating     = 5
	maxTextLength = 2000
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Review is an append-only client review.
type Review struct {
	id                string
	authorUserID      string
	rating            int
	text              string
	channelMessageRef string
	createdAt         time.Time
}

func NewReview(id, authorUserID string, rating int, text, channelMessageRef string, now time.Time) (*Review, error) {
	if id == "" {
		return nil, fmt.Errorf("review ID is required")
	}
	if strings.TrimSpace(authorUserID) == "" {
		return nil, fmt.Errorf("author user ID is required")
	}
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}
	text = strings.TrimSpace(text)
	if len(text) > maxTextLength {
		return nil, fmt.Errorf("review text exceeds maximum length of %d characters", maxTextLength)
	}

	return &Review{
		id:                id,
		authorUserID:      authorUserID,
		rating:            rating,
		text:              text,
		channelMessageRef: channelMessageRef,
		createdAt:         now.UTC(),
	}, nil
}

func ReconstructReview(id, authorUserID string, rating int, text, channelMessageRef string, createdAt time.Time) *Review {
	return &Review{
		id:                id,
		authorUserID:      authorUserID,
		rating:            rating,
		text:              text,
		channelMessageRef: channelMessageRef,
		createdAt:         createdAt,
	}
}

func (r *Review) ID() string { return r.id }
func (r *Review) AuthorUserID() string { return r.authorUserID }
func (r *Review) Rating() int { return r.rating }
func (r *Review) Text() string { return r.text }
func (r *Review) ChannelMessageRef() string { return r.channelMessageRef }
func (r *Review) CreatedAt() time.Time { return r.createdAt }

type Repository interface {
	Save(ctx context.Context, r *Review) error
}
