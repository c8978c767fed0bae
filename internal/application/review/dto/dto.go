package dto

import (
	"time"

	"github.com/hartlaw/hartlaw/internal/domain/review"
)

type ReviewDTO struct {
	ID                string    `json:"id"`
	AuthorUserID      string    `json:"author_user_id"`
	Rating            int       `json:"rating"`
	Text              string    `json:"text"`
	ChannelMessageRef string    `json:"channel_message_ref,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func ToReviewDTO(r *review.Review) *ReviewDTO {
	return &ReviewDTO{
		ID:                r.ID(),
		AuthorUserID:      r.AuthorUserID(),
		Rating:            r.Rating(),
		Text:              r.Text(),
		ChannelMessageRef: r.ChannelMessageRef(),
		CreatedAt:         r.CreatedAt(),
	}
}
