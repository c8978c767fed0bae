package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/domain/rate"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

func newTestEntry(t *testing.T, id, caseID, hours string, internal bool, at time.Time, tags ...billing.Tag) *billing.TimeEntry {
	t.Helper()
	e, err := billing.ReconstructTimeEntry(
		id, caseID, "staff-1", "Associate", rate.TierStandard,
		d(hours), d("200"), d("20"), d(hours).Mul(d("200")), d(hours).Mul(d("20")),
		"drafting", billing.Tags(tags), 1, internal, false, at,
	)
	require.NoError(t, err)
	return e
}

func TestTimeEntryRepository_SaveAndList(t *testing.T) {
	repo := NewTimeEntryRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	second := newTestEntry(t, "te_2", "CASE-a", "0.5", false, testNow.Add(time.Minute), billing.TagTravel())
	first := newTestEntry(t, "te_1", "CASE-a", "1.2", true, testNow, billing.TagInternal(), billing.TagTeamClamped(3))
	other := newTestEntry(t, "te_3", "CASE-b", "2", false, testNow)

	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, other))

	entries, err := repo.ListByCase(ctx, "CASE-a")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "te_1", entries[0].ID())
	assert.Equal(t, "te_2", entries[1].ID())

	got := entries[0]
	assert.True(t, got.Hours().Equal(d("1.2")))
	assert.True(t, got.AmountUSD().Equal(d("240")))
	assert.True(t, got.AmountRBX().Equal(d("24")))
	assert.True(t, got.IsInternalConference())
	assert.Equal(t, []string{"INTERNAL", "TEAM_CLAMPED:3"}, got.Tags().Strings())
	assert.Equal(t, rate.TierStandard, got.Tier())
	assert.True(t, got.CreatedAt().Equal(testNow))

	assert.True(t, entries[1].Tags().Has(billing.TagKindTravel))

	empty, err := repo.ListByCase(ctx, "CASE-none")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTimeEntryRepository_SumInternalHours(t *testing.T) {
	repo := NewTimeEntryRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	dayStart := biztime.StartOfDayUTC(testNow)
	entries := []struct {
		id       string
		caseID   string
		hours    string
		internal bool
		at       time.Time
	}{
		{"te_1", "CASE-a", "0.1", true, dayStart},
		{"te_2", "CASE-a", "0.2", true, testNow},
		{"te_3", "CASE-a", "1.0", false, testNow},
		{"te_4", "CASE-a", "0.3", true, dayStart.Add(-time.Millisecond)},
		{"te_5", "CASE-a", "0.3", true, dayStart.AddDate(0, 0, 1)},
		{"te_6", "CASE-b", "0.3", true, testNow},
	}
	for _, e := range entries {
		require.NoError(t, repo.Save(ctx, newTestEntry(t, e.id, e.caseID, e.hours, e.internal, e.at)))
	}

	sum, err := repo.SumInternalHours(ctx, "CASE-a", dayStart, dayStart.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "0.3", sum.String())

	none, err := repo.SumInternalHours(ctx, "CASE-none", dayStart, dayStart.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, none.IsZero())
}
