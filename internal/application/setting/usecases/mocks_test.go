package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/hartlaw/hartlaw/internal/domain/setting"
	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
)

type memorySettingRepository struct {
	values  map[string]string
	allErr  error
	getErr  error
	upserts int
}

func newMemorySettingRepository(values map[string]string) *memorySettingRepository {
	if values == nil {
		values = make(map[string]string)
	}
	return &memorySettingRepository{values: values}
}

func (m *memorySettingRepository) Get(_ context.Context, key string) (*setting.Setting, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	return setting.ReconstructSetting(key, v, 1, time.Time{}), nil
}

func (m *memorySettingRepository) All(context.Context) ([]*setting.Setting, error) {
	if m.allErr != nil {
		return nil, m.allErr
	}
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*setting.Setting, 0, len(keys))
	for _, k := range keys {
		out = append(out, setting.ReconstructSetting(k, m.values[k], 1, time.Time{}))
	}
	return out, nil
}

func (m *memorySettingRepository) Upsert(_ context.Context, key, value string) error {
	m.upserts++
	m.values[key] = value
	return nil
}

func (m *memorySettingRepository) SeedDefaults(_ context.Context, defaults map[string]string) error {
	for k, v := range defaults {
		if _, ok := m.values[k]; !ok {
			m.values[k] = v
		}
	}
	return nil
}

type recordingPublisher struct {
	events []events.DomainEvent
}

func (p *recordingPublisher) Publish(e events.DomainEvent) error {
	p.events = append(p.events, e)
	return nil
}
