package setting

import (
	"time"

	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
)

const EventSettingChanged = "setting.changed"

type SettingChangedEvent struct {
	events.BaseEvent
	Key       string `json:"key"`
	OldValue  string `json:"old_value,omitempty"`
	NewValue  string `json:"new_value"`
	UpdatedBy string `json:"updated_by"`
}

func NewSettingChangedEvent(key, oldValue, newValue, updatedBy string, at time.Time) SettingChangedEvent {
	return SettingChangedEvent{
		BaseEvent: events.NewBaseEvent(key, EventSettingChanged, at),
		Key:       key,
		OldValue:  oldValue,
		NewValue:  newValue,
		UpdatedBy: updatedBy,
	}
}
