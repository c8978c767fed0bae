package setting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Setting is one process-wide key/value pair. Version increases on every
// write and backs the compare-and-swap used by counters.
type Setting struct {
	key       string
	value     string
	version   int64
	updatedAt time.Time
}

func NewSetting(key, value string, now time.Time) (*Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrInvalidSettingKey
	}
	return &Setting{
		key:       key,
		value:     value,
		version:   1,
		updatedAt: now.UTC(),
	}, nil
}

// ReconstructSetting reconstructs a Setting from persistence layer
func ReconstructSetting(key, value string, version int64, updatedAt time.Time) *Setting {
	return &Setting{
		key:       key,
		value:     value,
		version:   version,
		updatedAt: updatedAt,
	}
}

func (s *Setting) Key() string { return s.key }
func (s *Setting) Value() string { return s.value }
func (s *Setting) Version() int64 { return s.version }
func (s *Setting) UpdatedAt() time.Time { return s.updatedAt }

func (s *Setting) SetValue(value string, now time.Time) {
	s.value = value
	s.version++
	s.updatedAt = now.UTC()
}

// IntValue returns the value as an integer
func (s *Setting) IntValue() (int, error) {
	if s.value == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s.value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer", ErrInvalidValue, s.key)
	}
	return v, nil
}

// BoolValue returns the value as a boolean
func (s *Setting) BoolValue() (bool, error) {
	if s.value == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s.value))
	if err != nil {
		return false, fmt.Errorf("%w: %s is not a boolean", ErrInvalidValue, s.key)
	}
	return v, nil
}

// DecimalValue returns the value as an exact decimal
func (s *Setting) DecimalValue() (decimal.Decimal, error) {
	if s.value == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(strings.TrimSpace(s.value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s is not a number", ErrInvalidValue, s.key)
	}
	return v, nil
}
