package models

import (
	"time"

	"github.com/hartlaw/hartlaw/internal/shared/constants"
)

type ReviewModel struct {
	ID                string `gorm:"primaryKey;size:40"`
	AuthorUserID      string `gorm:"not null;size:64;index:idx_review_author"`
	Rating            int    `gorm:"not null"`
	Text              string `gorm:"type:text"`
	ChannelMessageRef string `gorm:"size:100"`
	CreatedAt         time.Time
}

func (ReviewModel) TableName() string {
	return constants.TableReviews
}
