package usecases

import (
	"context"
	"errors"
	"sync"

	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
	"github.com/hartlaw/hartlaw/internal/domain/ticket"
)

type memoryTicketRepository struct {
	mu        sync.Mutex
	tickets   map[string]*ticket.Ticket
	order     []string
	updates   int
	saveErr   error
	updateErr error
}

func newMemoryTicketRepository() *memoryTicketRepository {
	return &memoryTicketRepository{tickets: make(map[string]*ticket.Ticket)}
}

func (m *memoryTicketRepository) Save(_ context.Context, t *ticket.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.tickets[t.ID()] = t
	m.order = append(m.order, t.ID())
	return nil
}

func (m *memoryTicketRepository) Update(_ context.Context, t *ticket.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	if m.updateErr != nil {
		return m.updateErr
	}
	m.tickets[t.ID()] = t
	return nil
}

func (m *memoryTicketRepository) GetByID(_ context.Context, id string) (*ticket.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tickets[id], nil
}

func (m *memoryTicketRepository) GetLatestByThread(_ context.Context, threadRef string) (*ticket.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.order) - 1; i >= 0; i-- {
		if t := m.tickets[m.order[i]]; t.ThreadRef() == threadRef {
			return t, nil
		}
	}
	return nil, nil
}

type mockCaseRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*legalcase.Case, error)
}

func (m *mockCaseRepository) Create(context.Context, *legalcase.Case) error { return nil }

func (m *mockCaseRepository) GetByID(ctx context.Context, id string) (*legalcase.Case, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCaseRepository) GetByChannel(context.Context, string) (*legalcase.Case, error) {
	return nil, nil
}

func (m *mockCaseRepository) Update(context.Context, *legalcase.Case) error { return nil }

// sequenceNumbers hands out TKT ids for one fixed date.
type sequenceNumbers struct {
	mu   sync.Mutex
	date string
	next int64
	err  error
}

func (s *sequenceNumbers) Generate(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.next++
	return ticket.FormatTicketID(s.date, s.next), nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (p *recordingPublisher) Publish(e events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.GetEventType())
	}
	return out
}

var errBoom = errors.New("boom")
