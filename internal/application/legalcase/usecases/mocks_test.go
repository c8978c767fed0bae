package usecases

import (
	"context"
	"sync"

	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
)

// memoryCaseRepository stores cases by id and reports taken ids as collisions.
type memoryCaseRepository struct {
	mu        sync.Mutex
	cases     map[string]*legalcase.Case
	creates   int
	updates   int
	createErr error
	getErr    error
	updateErr error
}

func newMemoryCaseRepository() *memoryCaseRepository {
	return &memoryCaseRepository{cases: make(map[string]*legalcase.Case)}
}

func (m *memoryCaseRepository) Create(_ context.Context, c *legalcase.Case) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.cases[c.ID()]; ok {
		return legalcase.ErrCaseIDCollision
	}
	m.cases[c.ID()] = c
	return nil
}

func (m *memoryCaseRepository) GetByID(_ context.Context, id string) (*legalcase.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.cases[id], nil
}

func (m *memoryCaseRepository) GetByChannel(_ context.Context, channelRef string) (*legalcase.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, c := range m.cases {
		if c.ChannelRef() == channelRef {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memoryCaseRepository) Update(_ context.Context, c *legalcase.Case) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	if m.updateErr != nil {
		return m.updateErr
	}
	m.cases[c.ID()] = c
	return nil
}

// sequenceMinter returns the given ids in order, repeating the last one.
func sequenceMinter(ids ...string) func(string) (string, error) {
	var mu sync.Mutex
	i := 0
	return func(string) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		id := ids[i]
		if i < len(ids)-1 {
			i++
		}
		return id, nil
	}
}
