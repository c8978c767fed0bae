package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	casedto "github.com/hartlaw/hartlaw/internal/application/legalcase/dto"
	caseusecases "github.com/hartlaw/hartlaw/internal/application/legalcase/usecases"
	"github.com/hartlaw/hartlaw/internal/domain/ticket"
	vo "github.com/hartlaw/hartlaw/internal/domain/ticket/valueobjects"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/db"
	apperrors "github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type stubCreateCase struct {
	calls []caseusecases.CreateCaseCommand
	err   error
}

func (s *stubCreateCase) Execute(_ context.Context, cmd caseusecases.CreateCaseCommand) (*casedto.CaseDTO, error) {
	s.calls = append(s.calls, cmd)
	if s.err != nil {
		return nil, s.err
	}
	return &casedto.CaseDTO{ID: "CASE-q1w2e3-jane-roe", ClientName: cmd.ClientName, Division: cmd.Division}, nil
}

func TestConvertTicketUseCase_Execute(t *testing.T) {
	repo := newMemoryTicketRepository()
	seedTicket(t, repo, seededTicketID, "thread-1", vo.StatusPending)
	creator := &stubCreateCase{}
	pub := &recordingPublisher{}
	uc := NewConvertTicketUseCase(repo, creator, db.NoopTransactor{}, pub, biztime.NewFixedClock(testNow), logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), ConvertTicketCommand{TicketID: seededTicketID, ConvertedBy: "staff-1"})
	require.NoError(t, err)

	assert.Equal(t, "CASE-q1w2e3-jane-roe", got.CaseID)
	assert.Equal(t, "ACTIVE", got.Ticket.Status)
	require.NotNil(t, got.Ticket.LinkedCaseID)
	assert.Equal(t, got.CaseID, *got.Ticket.LinkedCaseID)

	require.Len(t, creator.calls, 1)
	assert.Equal(t, "Jane Roe", creator.calls[0].ClientName)
	assert.Equal(t, "civil", creator.calls[0].Division)
	assert.Equal(t, "thread-1", creator.calls[0].ChannelRef)

	assert.Equal(t, []string{ticket.EventTicketCaseLinked, ticket.EventTicketStatusChanged}, pub.types())
}

func TestConvertTicketUseCase_ClientNameOverride(t *testing.T) {
	repo := newMemoryTicketRepository()
	seedTicket(t, repo, seededTicketID, "", vo.StatusActive)
	creator := &stubCreateCase{}
	pub := &recordingPublisher{}
	uc := NewConvertTicketUseCase(repo, creator, db.NoopTransactor{}, pub, nil, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ConvertTicketCommand{TicketID: seededTicketID, ClientName: "Roe Family Trust", Currency: "R$"})
	require.NoError(t, err)
	assert.Equal(t, "Roe Family Trust", creator.calls[0].ClientName)
	assert.Equal(t, "R$", creator.calls[0].Currency)
	assert.Equal(t, []string{ticket.EventTicketCaseLinked}, pub.types())
}

func TestConvertTicketUseCase_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     vo.TicketStatus
		linked     bool
		createErr  error
		updateErr  error
		wantType   apperrors.ErrorType
		wantCreate int
	}{
		{name: "already converted", status: vo.StatusActive, linked: true, wantType: apperrors.ErrorTypeConflict},
		{name: "closed", status: vo.StatusClosed, wantType: apperrors.ErrorTypeConflict},
		{
			name:       "case creation fails",
			status:     vo.StatusPending,
			createErr:  apperrors.NewConflictError("could not allocate a unique case ID"),
			wantType:   apperrors.ErrorTypeConflict,
			wantCreate: 1,
		},
		{name: "ticket update fails", status: vo.StatusPending, updateErr: errBoom, wantType: apperrors.ErrorTypeInternal, wantCreate: 1},
		{name: "ticket modified concurrently", status: vo.StatusPending, updateErr: ticket.ErrConcurrentUpdate, wantType: apperrors.ErrorTypeConflict, wantCreate: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryTicketRepository()
			tk := seedTicket(t, repo, seededTicketID, "", tt.status)
			if tt.linked {
				require.NoError(t, tk.LinkCase("CASE-aaaaaa-old", testNow))
			}
			repo.updateErr = tt.updateErr
			creator := &stubCreateCase{err: tt.createErr}
			pub := &recordingPublisher{}
			uc := NewConvertTicketUseCase(repo, creator, db.NoopTransactor{}, pub, nil, logger.NewNopLogger())

			_, err := uc.Execute(context.Background(), ConvertTicketCommand{TicketID: seededTicketID})
			require.Error(t, err)
			assert.Equal(t, tt.wantType, apperrors.GetAppError(err).Type)
			assert.Len(t, creator.calls, tt.wantCreate)
			assert.Empty(t, pub.types())
		})
	}
}
