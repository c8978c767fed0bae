package setting

import "errors"

var (
	// ErrSettingNotFound is returned when a setting is not found
	ErrSettingNotFound = errors.New("setting not found")

	// ErrInvalidSettingKey is returned when the key is empty or not writable
	ErrInvalidSettingKey = errors.New("invalid setting key")

	// ErrInvalidValue is returned when a value does not parse as its key's type
	ErrInvalidValue = errors.New("invalid setting value")

	// ErrCounterContention is returned when a counter increment keeps losing its compare-and-swap
	ErrCounterContention = errors.New("counter increment contention")
)
