package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	vo "github.com/hartlaw/hartlaw/internal/domain/legalcase/valueobjects"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/db"
	apperrors "github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/keylock"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

const (
	testCaseID = "CASE-abc123-acme"
	leadRole   = "Equity Partner (Lead Counsel)"
)

var testNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCase(t *testing.T) *legalcase.Case {
	t.Helper()
	c, err := legalcase.NewCase(testCaseID, vo.DivisionCivil, "Acme", "chan-1", billing.CurrencyUSD, testNow)
	require.NoError(t, err)
	return c
}

type staticPolicy struct {
	policy      billing.Policy
	allowExceed bool
}

func (s staticPolicy) Policy(context.Context) (billing.Policy, error) { return s.policy, nil }

func (s staticPolicy) AllowExceed(context.Context, string) (bool, error) {
	return s.allowExceed, nil
}

type addTimeEntryFixture struct {
	uc        *AddTimeEntryUseCase
	entries   *memoryEntryRepository
	publisher *mockPublisher
	metrics   *mockMetrics
	logger    *mockLogger
	clock     *biztime.FixedClock
}

func newAddTimeEntryFixture(t *testing.T, policy PolicySource) *addTimeEntryFixture {
	t.Helper()
	c := testCase(t)
	f := &addTimeEntryFixture{
		entries:   &memoryEntryRepository{},
		publisher: &mockPublisher{},
		metrics:   &mockMetrics{},
		logger:    &mockLogger{},
		clock:     biztime.NewFixedClock(testNow),
	}
	caseRepo := &mockCaseRepository{
		GetByIDFunc: func(_ context.Context, id string) (*legalcase.Case, error) {
			if id == testCaseID {
				return c, nil
			}
			return nil, nil
		},
	}
	rates := &mockRateRepository{rates: map[string]decimal.Decimal{
		leadRole + "|standard": d("400"),
	}}
	if policy == nil {
		policy = staticPolicy{policy: billing.DefaultPolicy()}
	}
	f.uc = NewAddTimeEntryUseCase(caseRepo, f.entries, rates, policy, db.NoopTransactor{},
		keylock.New(), f.publisher, f.metrics, f.clock, f.logger)
	return f
}

func baseCommand() AddTimeEntryCommand {
	return AddTimeEntryCommand{
		CaseID:      testCaseID,
		StaffUserID: "staff-1",
		Role:        leadRole,
		Tier:        "standard",
		Hours:       d("1"),
		Description: "Draft motion",
		TeamSize:    1,
	}
}

func TestAddTimeEntryUseCase_Travel(t *testing.T) {
	f := newAddTimeEntryFixture(t, nil)
	cmd := baseCommand()
	cmd.Hours = d("0.16")
	cmd.IsTravel = true
	cmd.Description = "Drive to courthouse"

	result, err := f.uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.True(t, d("0.2").Equal(result.Entry.Hours))
	assert.True(t, d("40").Equal(result.Entry.AmountUSD))
	assert.True(t, d("200").Equal(result.Entry.RateUSD))
	assert.Equal(t, "[TRAVEL] Drive to courthouse", result.Entry.Description)
	assert.False(t, result.Capped)
	assert.Equal(t, 1, f.entries.count())
	assert.Equal(t, 1, f.metrics.recorded)
}

func TestAddTimeEntryUseCase_InternalConferenceCap(t *testing.T) {
	f := newAddTimeEntryFixture(t, nil)
	cmd := baseCommand()
	cmd.Hours = d("0.2")
	cmd.IsInternalConference = true
	cmd.Description = "Sync"

	first, err := f.uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.True(t, d("0.2").Equal(first.Entry.Hours))
	assert.False(t, first.Capped)

	second, err := f.uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.True(t, d("0.1").Equal(second.Entry.Hours), second.Entry.Hours.String())
	assert.True(t, second.Capped)
	assert.True(t, d("0.2").Equal(second.RequestedHours))
	assert.Equal(t, "[INTERNAL] Sync", second.Entry.Description)
	assert.Equal(t, 1, f.metrics.truncated)
	assert.True(t, f.logger.warned("internal conference hours capped"))
	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, billing.EventInternalConferenceCapped, f.publisher.published[0].GetEventType())

	_, err = f.uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, apperrors.IsCapacityError(err))
	assert.True(t, errors.Is(err, billing.ErrInternalConferenceCapReached))
	assert.Equal(t, 2, f.entries.count())
	assert.Equal(t, 1, f.metrics.rejected)
}

func TestAddTimeEntryUseCase_CapResetsNextUTCDay(t *testing.T) {
	f := newAddTimeEntryFixture(t, nil)
	cmd := baseCommand()
	cmd.Hours = d("0.3")
	cmd.IsInternalConference = true

	_, err := f.uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	_, err = f.uc.Execute(context.Background(), cmd)
	require.True(t, apperrors.IsCapacityError(err))

	f.clock.Set(biztime.StartOfDayUTC(testNow).AddDate(0, 0, 1))
	result, err := f.uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.True(t, d("0.3").Equal(result.Entry.Hours))
}

func TestAddTimeEntryUseCase_CapDisabled(t *testing.T) {
	policy := billing.DefaultPolicy()
	policy.InternalConferenceCapPerDay = decimal.Zero
	f := newAddTimeEntryFixture(t, staticPolicy{policy: policy})
	cmd := baseCommand()
	cmd.Hours = d("2")
	cmd.IsInternalConference = true

	for i := 0; i < 3; i++ {
		result, err := f.uc.Execute(context.Background(), cmd)
		require.NoError(t, err)
		assert.True(t, d("2").Equal(result.Entry.Hours))
		assert.Contains(t, result.Entry.Tags, "INTERNAL")
	}
}

func TestAddTimeEntryUseCase_TeamClamp(t *testing.T) {
	tests := []struct {
		name        string
		allowExceed bool
		wantTeam    int
		wantRBX     string
		wantClamped bool
	}{
		{name: "clamped to policy maximum", wantTeam: 3, wantRBX: "80", wantClamped: true},
		{name: "case allowed to exceed", allowExceed: true, wantTeam: 6, wantRBX: "140"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAddTimeEntryFixture(t, staticPolicy{policy: billing.DefaultPolicy(), allowExceed: tt.allowExceed})
			cmd := baseCommand()
			cmd.TeamSize = 6
			cmd.Description = "Trial"

			result, err := f.uc.Execute(context.Background(), cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTeam, result.Entry.TeamSize)
			assert.True(t, d(tt.wantRBX).Equal(result.Entry.RateRBX), result.Entry.RateRBX.String())
			if tt.wantClamped {
				assert.Equal(t, "[TEAM_CLAMPED:3] Trial", result.Entry.Description)
				assert.Equal(t, 1, f.metrics.clamped)
			} else {
				assert.Equal(t, "Trial", result.Entry.Description)
				assert.Zero(t, f.metrics.clamped)
			}
		})
	}
}

func TestAddTimeEntryUseCase_UnknownRate(t *testing.T) {
	f := newAddTimeEntryFixture(t, nil)
	cmd := baseCommand()
	cmd.Role = "Paralegal Intern"

	result, err := f.uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.True(t, result.Entry.AmountUSD.IsZero())
	assert.True(t, d("40").Equal(result.Entry.AmountRBX))
	assert.True(t, f.logger.warned("no USD rate for role and tier, billed at zero"))
	assert.Equal(t, 1, f.metrics.unknownRate)
}

func TestAddTimeEntryUseCase_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AddTimeEntryCommand)
	}{
		{name: "missing case", mutate: func(c *AddTimeEntryCommand) { c.CaseID = " " }},
		{name: "missing staff", mutate: func(c *AddTimeEntryCommand) { c.StaffUserID = "" }},
		{name: "missing role", mutate: func(c *AddTimeEntryCommand) { c.Role = "" }},
		{name: "bad tier", mutate: func(c *AddTimeEntryCommand) { c.Tier = "platinum" }},
		{name: "zero hours", mutate: func(c *AddTimeEntryCommand) { c.Hours = decimal.Zero }},
		{name: "negative hours", mutate: func(c *AddTimeEntryCommand) { c.Hours = d("-1") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAddTimeEntryFixture(t, nil)
			cmd := baseCommand()
			tt.mutate(&cmd)

			_, err := f.uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
			assert.Zero(t, f.entries.count())
		})
	}
}

func TestAddTimeEntryUseCase_CaseNotFound(t *testing.T) {
	f := newAddTimeEntryFixture(t, nil)
	cmd := baseCommand()
	cmd.CaseID = "CASE-zzzzzz-nobody"

	_, err := f.uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.True(t, errors.Is(err, legalcase.ErrCaseNotFound))
}

func TestAddTimeEntryUseCase_SaveFailure(t *testing.T) {
	f := newAddTimeEntryFixture(t, nil)
	f.entries.saveErr = errors.New("disk full")

	_, err := f.uc.Execute(context.Background(), baseCommand())
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	assert.Zero(t, f.metrics.recorded)
}

func TestAddTimeEntryUseCase_ConcurrentInternalEntriesNeverExceedCap(t *testing.T) {
	f := newAddTimeEntryFixture(t, nil)
	cmd := baseCommand()
	cmd.Hours = d("0.1")
	cmd.IsInternalConference = true

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.uc.Execute(context.Background(), cmd)
		}()
	}
	wg.Wait()

	dayStart := biztime.StartOfDayUTC(testNow)
	sum, err := f.entries.SumInternalHours(context.Background(), testCaseID, dayStart, dayStart.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, sum.Equal(d("0.3")), sum.String())
	assert.Equal(t, 3, f.entries.count())
	assert.Equal(t, 7, f.metrics.rejected)
}

func TestNewAddTimeEntryUseCase_Defaults(t *testing.T) {
	uc := NewAddTimeEntryUseCase(&mockCaseRepository{}, &memoryEntryRepository{}, &mockRateRepository{},
		staticPolicy{policy: billing.DefaultPolicy()}, db.NoopTransactor{}, nil, nil, nil, nil, logger.NewNopLogger())

	assert.NotNil(t, uc.publisher)
	assert.NotNil(t, uc.metrics)
	assert.NotNil(t, uc.clock)
	assert.NotNil(t, uc.locks)
}
