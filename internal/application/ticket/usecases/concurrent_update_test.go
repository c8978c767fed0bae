package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartlaw/hartlaw/internal/domain/ticket"
	vo "github.com/hartlaw/hartlaw/internal/domain/ticket/valueobjects"
	"github.com/hartlaw/hartlaw/internal/infrastructure/database"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/models"
	"github.com/hartlaw/hartlaw/internal/infrastructure/repository"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/config"
	apperrors "github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

// pausingTicketRepository holds the first GetByID caller after the load
// until resume is closed.
type pausingTicketRepository struct {
	ticket.TicketRepository
	once   sync.Once
	loaded chan struct{}
	resume chan struct{}
}

func (p *pausingTicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	t, err := p.TicketRepository.GetByID(ctx, id)
	p.once.Do(func() {
		close(p.loaded)
		<-p.resume
	})
	return t, err
}

func newSQLiteTicketRepository(t *testing.T) *repository.TicketRepository {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repository.NewTicketRepository(db, logger.NewNopLogger())
}

func TestAssignTicketUseCase_LosesToConcurrentClose(t *testing.T) {
	repo := newSQLiteTicketRepository(t)
	ctx := context.Background()

	tk, err := ticket.NewTicket(seededTicketID, vo.TypeCivil, "user-1",
		map[string]string{"client_name": "Jane Roe"}, "msg-1", "thread-1", testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, tk))

	paused := &pausingTicketRepository{
		TicketRepository: repo,
		loaded:           make(chan struct{}),
		resume:           make(chan struct{}),
	}
	clock := biztime.NewFixedClock(testNow.Add(time.Hour))
	assign := NewAssignTicketUseCase(paused, nil, clock, logger.NewNopLogger())
	closeTicket := NewChangeStatusUseCase(repo, nil, clock, logger.NewNopLogger())

	assignErr := make(chan error, 1)
	go func() {
		_, err := assign.Execute(ctx, AssignTicketCommand{
			TicketID:   seededTicketID,
			AssigneeID: strPtr("staff-1"),
			AssignedBy: "staff-1",
		})
		assignErr <- err
	}()

	<-paused.loaded
	closed, err := closeTicket.Execute(ctx, ChangeStatusCommand{TicketID: seededTicketID, Status: "CLOSED", ChangedBy: "staff-2"})
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", closed.Status)
	close(paused.resume)

	err = <-assignErr
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.True(t, errors.Is(err, ticket.ErrConcurrentUpdate))
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.True(t, appErr.Retryable)

	found, err := repo.GetByID(ctx, seededTicketID)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusClosed, found.Status())
	assert.Nil(t, found.AssignedUserID())
	assert.Equal(t, 2, found.Version())
}

func TestLinkCaseUseCase_SecondLinkFromStaleLoadIsRejected(t *testing.T) {
	repo := newSQLiteTicketRepository(t)
	ctx := context.Background()

	tk, err := ticket.NewTicket(seededTicketID, vo.TypeCivil, "user-1", nil, "", "thread-1", testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, tk))

	first, err := repo.GetByID(ctx, seededTicketID)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, seededTicketID)
	require.NoError(t, err)

	require.NoError(t, first.LinkCase("CASE-aaaaaa-acme", testNow.Add(time.Minute)))
	require.NoError(t, repo.Update(ctx, first))

	require.NoError(t, second.LinkCase("CASE-bbbbbb-acme", testNow.Add(2*time.Minute)))
	err = updateError(logger.NewNopLogger(), second, repo.Update(ctx, second))
	assert.True(t, apperrors.IsConflictError(err))

	found, err := repo.GetByID(ctx, seededTicketID)
	require.NoError(t, err)
	require.NotNil(t, found.LinkedCaseID())
	assert.Equal(t, "CASE-aaaaaa-acme", *found.LinkedCaseID())
}
