package ticket

import "context"

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	// GetByID returns nil, nil when the ticket does not exist.
	GetByID(ctx context.Context, id string) (*Ticket, error)
	// GetLatestByThread returns the newest ticket opened in a thread, or nil.
	GetLatestByThread(ctx context.Context, threadRef string) (*Ticket, error)
}
