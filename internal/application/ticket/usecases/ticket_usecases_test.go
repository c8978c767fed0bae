package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartlaw/hartlaw/internal/domain/ticket"
	vo "github.com/hartlaw/hartlaw/internal/domain/ticket/valueobjects"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	apperrors "github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

const seededTicketID = "TKT-20260314-0001"

func strPtr(s string) *string { return &s }

func seedTicket(t *testing.T, repo *memoryTicketRepository, id, threadRef string, status vo.TicketStatus) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(id, vo.TypeCivil, status, "user-1",
		map[string]string{"client_name": "Jane Roe"}, "", threadRef, nil, nil, testNow, testNow, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}

func TestGetTicketUseCase_Execute(t *testing.T) {
	repo := newMemoryTicketRepository()
	seedTicket(t, repo, seededTicketID, "thread-1", vo.StatusPending)
	seedTicket(t, repo, "TKT-20260314-0002", "thread-1", vo.StatusPending)
	uc := NewGetTicketUseCase(repo, logger.NewNopLogger())

	tests := []struct {
		name     string
		query    GetTicketQuery
		wantID   string
		wantType apperrors.ErrorType
	}{
		{name: "by id", query: GetTicketQuery{TicketID: seededTicketID}, wantID: seededTicketID},
		{name: "latest in thread", query: GetTicketQuery{ThreadRef: "thread-1"}, wantID: "TKT-20260314-0002"},
		{name: "unknown id", query: GetTicketQuery{TicketID: "TKT-20260314-0099"}, wantType: apperrors.ErrorTypeNotFound},
		{name: "empty thread", query: GetTicketQuery{ThreadRef: "thread-2"}, wantType: apperrors.ErrorTypeNotFound},
		{name: "nothing given", query: GetTicketQuery{}, wantType: apperrors.ErrorTypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Execute(context.Background(), tt.query)
			if tt.wantType != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantType, apperrors.GetAppError(err).Type)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestAssignTicketUseCase_Execute(t *testing.T) {
	repo := newMemoryTicketRepository()
	seedTicket(t, repo, seededTicketID, "", vo.StatusPending)
	pub := &recordingPublisher{}
	clock := biztime.NewFixedClock(testNow.Add(time.Hour))
	uc := NewAssignTicketUseCase(repo, pub, clock, logger.NewNopLogger())
	ctx := context.Background()

	got, err := uc.Execute(ctx, AssignTicketCommand{TicketID: seededTicketID, AssigneeID: strPtr("staff-1"), AssignedBy: "staff-1"})
	require.NoError(t, err)
	require.NotNil(t, got.AssignedUserID)
	assert.Equal(t, "staff-1", *got.AssignedUserID)
	assert.Equal(t, "PENDING", got.Status)
	assert.Equal(t, testNow.Add(time.Hour), got.UpdatedAt)

	got, err = uc.Execute(ctx, AssignTicketCommand{TicketID: seededTicketID, AssigneeID: strPtr("staff-2"), AssignedBy: "staff-9"})
	require.NoError(t, err)
	assert.Equal(t, "staff-2", *got.AssignedUserID)

	got, err = uc.Execute(ctx, AssignTicketCommand{TicketID: seededTicketID, AssignedBy: "staff-9"})
	require.NoError(t, err)
	assert.Nil(t, got.AssignedUserID)

	assert.Len(t, pub.types(), 3)
	assert.Equal(t, 3, repo.updates)
}

func TestAssignTicketUseCase_ClosedTicket(t *testing.T) {
	repo := newMemoryTicketRepository()
	seedTicket(t, repo, seededTicketID, "", vo.StatusClosed)
	uc := NewAssignTicketUseCase(repo, nil, nil, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: seededTicketID, AssigneeID: strPtr("staff-1")})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.True(t, errors.Is(err, ticket.ErrTicketClosed))
	assert.Zero(t, repo.updates)
}

func TestChangeStatusUseCase_Execute(t *testing.T) {
	tests := []struct {
		name       string
		from       vo.TicketStatus
		to         string
		wantStatus string
		wantType   apperrors.ErrorType
		wantEvents int
	}{
		{name: "pending to active", from: vo.StatusPending, to: "ACTIVE", wantStatus: "ACTIVE", wantEvents: 1},
		{name: "pending to closed", from: vo.StatusPending, to: "CLOSED", wantStatus: "CLOSED", wantEvents: 1},
		{name: "active to closed", from: vo.StatusActive, to: "CLOSED", wantStatus: "CLOSED", wantEvents: 1},
		{name: "same state is a no-op", from: vo.StatusActive, to: "ACTIVE", wantStatus: "ACTIVE"},
		{name: "closed is terminal", from: vo.StatusClosed, to: "ACTIVE", wantType: apperrors.ErrorTypeConflict},
		{name: "active back to pending", from: vo.StatusActive, to: "PENDING", wantType: apperrors.ErrorTypeConflict},
		{name: "unknown status", from: vo.StatusPending, to: "DONE", wantType: apperrors.ErrorTypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryTicketRepository()
			seedTicket(t, repo, seededTicketID, "", tt.from)
			pub := &recordingPublisher{}
			uc := NewChangeStatusUseCase(repo, pub, biztime.NewFixedClock(testNow), logger.NewNopLogger())

			got, err := uc.Execute(context.Background(), ChangeStatusCommand{
				TicketID:  seededTicketID,
				Status:    tt.to,
				ChangedBy: "staff-1",
				Reason:    "resolved",
			})
			if tt.wantType != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantType, apperrors.GetAppError(err).Type)
				assert.Zero(t, repo.updates)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Len(t, pub.types(), tt.wantEvents)
		})
	}
}

func TestChangeStatusUseCase_ReasonOnEvent(t *testing.T) {
	repo := newMemoryTicketRepository()
	seedTicket(t, repo, seededTicketID, "", vo.StatusActive)
	pub := &recordingPublisher{}
	uc := NewChangeStatusUseCase(repo, pub, nil, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: seededTicketID, Status: "CLOSED", ChangedBy: "staff-1", Reason: "client withdrew"})
	require.NoError(t, err)

	require.Len(t, pub.events, 1)
	evt, ok := pub.events[0].(ticket.TicketStatusChangedEvent)
	require.True(t, ok)
	assert.Equal(t, "client withdrew", evt.Reason)
	assert.Equal(t, "ACTIVE", evt.OldStatus)
	assert.Equal(t, "CLOSED", evt.NewStatus)
}

func TestLinkCaseUseCase_Execute(t *testing.T) {
	repo := newMemoryTicketRepository()
	seedTicket(t, repo, seededTicketID, "", vo.StatusPending)
	pub := &recordingPublisher{}
	uc := NewLinkCaseUseCase(repo, existingCaseRepo(t), pub, biztime.NewFixedClock(testNow), logger.NewNopLogger())
	ctx := context.Background()

	got, err := uc.Execute(ctx, LinkCaseCommand{TicketID: seededTicketID, CaseID: existingCaseID})
	require.NoError(t, err)
	require.NotNil(t, got.LinkedCaseID)
	assert.Equal(t, existingCaseID, *got.LinkedCaseID)
	assert.Equal(t, "PENDING", got.Status)

	_, err = uc.Execute(ctx, LinkCaseCommand{TicketID: seededTicketID, CaseID: existingCaseID})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updates)
	assert.Equal(t, []string{ticket.EventTicketCaseLinked}, pub.types())
}

func TestLinkCaseUseCase_Errors(t *testing.T) {
	linked := func(t *testing.T, repo *memoryTicketRepository) {
		tk := seedTicket(t, repo, seededTicketID, "", vo.StatusActive)
		require.NoError(t, tk.LinkCase("CASE-other1-beta", testNow))
	}

	tests := []struct {
		name     string
		seed     func(*testing.T, *memoryTicketRepository)
		caseID   string
		wantType apperrors.ErrorType
		wantErr  error
	}{
		{
			name:     "different case",
			seed:     linked,
			caseID:   existingCaseID,
			wantType: apperrors.ErrorTypeConflict,
			wantErr:  ticket.ErrCaseAlreadyLinked,
		},
		{
			name: "closed ticket",
			seed: func(t *testing.T, repo *memoryTicketRepository) {
				seedTicket(t, repo, seededTicketID, "", vo.StatusClosed)
			},
			caseID:   existingCaseID,
			wantType: apperrors.ErrorTypeConflict,
			wantErr:  ticket.ErrTicketClosed,
		},
		{
			name: "unknown case",
			seed: func(t *testing.T, repo *memoryTicketRepository) {
				seedTicket(t, repo, seededTicketID, "", vo.StatusPending)
			},
			caseID:   "CASE-zzzzzz-none",
			wantType: apperrors.ErrorTypeNotFound,
		},
		{
			name:     "unknown ticket",
			seed:     func(*testing.T, *memoryTicketRepository) {},
			caseID:   existingCaseID,
			wantType: apperrors.ErrorTypeNotFound,
			wantErr:  ticket.ErrTicketNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryTicketRepository()
			tt.seed(t, repo)
			uc := NewLinkCaseUseCase(repo, existingCaseRepo(t), nil, nil, logger.NewNopLogger())

			_, err := uc.Execute(context.Background(), LinkCaseCommand{TicketID: seededTicketID, CaseID: tt.caseID})
			require.Error(t, err)
			assert.Equal(t, tt.wantType, apperrors.GetAppError(err).Type)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
		})
	}
}
