package models

import (
	"time"

	"github.com/hartlaw/hartlaw/internal/shared/constants"
)

// SettingModel represents the database persistence model for settings and counters.
type SettingModel struct {
	SettingKey string    `gorm:"primaryKey;column:setting_key;size:100"`
	Value      string    `gorm:"type:text;not null"`
	Version    int64     `gorm:"not null;default:1"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false"`
}

func (SettingModel) TableName() string {
	return constants.TableSettings
}
