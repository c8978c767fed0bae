package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	"github.com/hartlaw/hartlaw/internal/domain/rate"
	"github.com/hartlaw/hartlaw/internal/domain/setting"
	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type mockCaseRepository struct {
	CreateFunc       func(ctx context.Context, c *legalcase.Case) error
	GetByIDFunc      func(ctx context.Context, id string) (*legalcase.Case, error)
	GetByChannelFunc func(ctx context.Context, channelRef string) (*legalcase.Case, error)
	UpdateFunc       func(ctx context.Context, c *legalcase.Case) error
}

func (m *mockCaseRepository) Create(ctx context.Context, c *legalcase.Case) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCaseRepository) GetByID(ctx context.Context, id string) (*legalcase.Case, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCaseRepository) GetByChannel(ctx context.Context, channelRef string) (*legalcase.Case, error) {
	if m.GetByChannelFunc != nil {
		return m.GetByChannelFunc(ctx, channelRef)
	}
	return nil, nil
}

func (m *mockCaseRepository) Update(ctx context.Context, c *legalcase.Case) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

// memoryEntryRepository keeps entries in memory so cap sums see earlier saves.
type memoryEntryRepository struct {
	mu      sync.Mutex
	entries []*billing.TimeEntry
	saveErr error
}

func (m *memoryEntryRepository) Save(_ context.Context, e *billing.TimeEntry) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *memoryEntryRepository) ListByCase(_ context.Context, caseID string) ([]*billing.TimeEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*billing.TimeEntry
	for _, e := range m.entries {
		if e.CaseID() == caseID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryEntryRepository) SumInternalHours(_ context.Context, caseID string, from, to time.Time) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sum := decimal.Zero
	for _, e := range m.entries {
		if e.CaseID() != caseID || !e.IsInternalConference() {
			continue
		}
		if e.CreatedAt().Before(from) || !e.CreatedAt().Before(to) {
			continue
		}
		sum = sum.Add(e.Hours())
	}
	return sum, nil
}

func (m *memoryEntryRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

type mockRateRepository struct {
	rates map[string]decimal.Decimal
	err   error
}

func (m *mockRateRepository) GetRate(_ context.Context, role string, tier rate.Tier) (decimal.Decimal, bool, error) {
	if m.err != nil {
		return decimal.Zero, false, m.err
	}
	v, ok := m.rates[role+"|"+tier.String()]
	if !ok {
		return decimal.Zero, false, nil
	}
	return v, true, nil
}

func (m *mockRateRepository) ListByTier(context.Context, rate.Tier) ([]*rate.Entry, error) {
	return nil, nil
}

func (m *mockRateRepository) Count(context.Context) (int64, error) {
	return int64(len(m.rates)), nil
}

func (m *mockRateRepository) SaveAll(context.Context, []*rate.Entry) error {
	return nil
}

type mockSettingRepository struct {
	values map[string]string
	err    error
}

func (m *mockSettingRepository) Get(_ context.Context, key string) (*setting.Setting, error) {
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	return setting.ReconstructSetting(key, v, 1, time.Time{}), nil
}

func (m *mockSettingRepository) All(context.Context) ([]*setting.Setting, error) {
	return nil, nil
}

func (m *mockSettingRepository) Upsert(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *mockSettingRepository) SeedDefaults(context.Context, map[string]string) error {
	return nil
}

type mockPublisher struct {
	mu        sync.Mutex
	published []events.DomainEvent
}

func (m *mockPublisher) Publish(e events.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, e)
	return nil
}

type mockMetrics struct {
	mu          sync.Mutex
	recorded    int
	truncated   int
	rejected    int
	clamped     int
	unknownRate int
}

func (m *mockMetrics) EntryRecorded(string, bool, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recorded++
}

func (m *mockMetrics) InternalCapTruncated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.truncated++
}

func (m *mockMetrics) InternalCapRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected++
}

func (m *mockMetrics) TeamClamped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clamped++
}

func (m *mockMetrics) UnknownRate(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unknownRate++
}

type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(string, ...any) {}
func (m *mockLogger) Info(string, ...any) {}
func (m *mockLogger) Warn(string, ...any) {}
func (m *mockLogger) Error(string, ...any) {}
func (m *mockLogger) Fatal(string, ...any) {}
func (m *mockLogger) With(...any) logger.Interface { return m }
func (m *mockLogger) Named(string) logger.Interface { return m }
func (m *mockLogger) Debugw(string, ...interface{}) {}
func (m *mockLogger) Infow(string, ...interface{}) {}
func (m *mockLogger) Errorw(string, ...interface{}) {}
func (m *mockLogger) Fatalw(string, ...interface{}) {}

func (m *mockLogger) Warnw(msg string, _ ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}

func (m *mockLogger) warned(msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.warns {
		if w == msg {
			return true
		}
	}
	return false
}
