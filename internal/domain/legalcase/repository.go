package legalcase

import "context"

type Repository interface {
	// Create returns ErrCaseIDCollision when the id is taken.
	Create(ctx context.Context, c *Case) error
	// GetByID returns nil, nil when the case does not exist.
	GetByID(ctx context.Context, id string) (*Case, error)
	GetByChannel(ctx context.Context, channelRef string) (*Case, error)
	Update(ctx context.Context, c *Case) error
}
