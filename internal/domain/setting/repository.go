package setting

import (
	"context"
)

// Repository defines the interface for setting persistence. Writes are last
// write wins; counters go through Counter instead.
type Repository interface {
	// Get returns nil, nil when the key has never been written
	Get(ctx context.Context, key string) (*Setting, error)

	// All returns every setting ordered by key
	All(ctx context.Context) ([]*Setting, error)

	// Upsert creates or overwrites a setting
	Upsert(ctx context.Context, key, value string) error

	// SeedDefaults writes each key that does not exist yet, leaving existing values alone
	SeedDefaults(ctx context.Context, defaults map[string]string) error
}

// Counter is an atomic per-key integer sequence. Two concurrent Increment
// calls on the same key never observe the same value.
type Counter interface {
	Increment(ctx context.Context, key string) (int64, error)
}
