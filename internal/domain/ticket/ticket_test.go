package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/hartlaw/hartlaw/internal/domain/ticket/valueobjects"
)

var t0 = time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket("TKT-20260203-0001", vo.TypeCivil, "client-1",
		map[string]string{"client_name": "Acme"}, "intake-chan", "thread-1", t0)
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	intake := map[string]string{"client_name": "Acme"}
	tk, err := NewTicket("TKT-20260203-0001", vo.TypeCivil, "client-1", intake, "intake-chan", "thread-1", t0)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusPending, tk.Status())
	assert.Nil(t, tk.AssignedUserID())
	assert.Nil(t, tk.LinkedCaseID())
	assert.Equal(t, t0, tk.CreatedAt())
	assert.Equal(t, t0, tk.UpdatedAt())
	assert.Equal(t, 1, tk.Version())

	intake["client_name"] = "Mutated"
	assert.Equal(t, "Acme", tk.IntakeValue("client_name", "client"))
	assert.Equal(t, "client", tk.IntakeValue("missing", "client"))
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		typ    vo.TicketType
		client string
	}{
		{"bad id", "T-20260203-0001", vo.TypeCivil, "c"},
		{"short sequence", "TKT-20260203-1", vo.TypeCivil, "c"},
		{"bad type", "TKT-20260203-0001", vo.TicketType("family"), "c"},
		{"missing client", "TKT-20260203-0001", vo.TypeCivil, " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.id, tt.typ, tt.client, nil, "", "", t0)
			assert.Error(t, err)
		})
	}
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.ChangeStatus(vo.StatusActive, t0.Add(time.Minute)))
	assert.Equal(t, vo.StatusActive, tk.Status())
	assert.Equal(t, t0.Add(time.Minute), tk.UpdatedAt())

	require.NoError(t, tk.ChangeStatus(vo.StatusActive, t0.Add(2*time.Minute)), "same state is a no-op")
	assert.Equal(t, t0.Add(time.Minute), tk.UpdatedAt())

	err := tk.ChangeStatus(vo.StatusPending, t0)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, tk.ChangeStatus(vo.StatusClosed, t0.Add(3*time.Minute)))
	assert.ErrorIs(t, tk.ChangeStatus(vo.StatusActive, t0), ErrInvalidTransition)
	assert.ErrorIs(t, tk.ChangeStatus(vo.StatusPending, t0), ErrInvalidTransition)
	assert.Error(t, tk.ChangeStatus(vo.TicketStatus("OPEN"), t0))
}

func TestTicket_PendingCanCloseDirectly(t *testing.T) {
	tk := newTestTicket(t)
	require.NoError(t, tk.ChangeStatus(vo.StatusClosed, t0))
	assert.True(t, tk.Status().IsTerminal())
}

func TestTicket_AssignTo(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.AssignTo(strPtr("staff-1"), t0.Add(time.Minute)))
	assert.Equal(t, "staff-1", *tk.AssignedUserID())
	assert.Equal(t, vo.StatusPending, tk.Status(), "assignment leaves status alone")

	require.NoError(t, tk.AssignTo(strPtr("staff-1"), t0.Add(2*time.Minute)))
	require.NoError(t, tk.AssignTo(strPtr("staff-2"), t0.Add(3*time.Minute)))
	assert.Equal(t, "staff-2", *tk.AssignedUserID())

	require.NoError(t, tk.AssignTo(nil, t0.Add(4*time.Minute)))
	assert.Nil(t, tk.AssignedUserID())
	assert.Equal(t, t0.Add(4*time.Minute), tk.UpdatedAt())

	assert.Error(t, tk.AssignTo(strPtr(" "), t0))

	require.NoError(t, tk.ChangeStatus(vo.StatusClosed, t0.Add(5*time.Minute)))
	assert.ErrorIs(t, tk.AssignTo(strPtr("staff-3"), t0), ErrTicketClosed)
}

func TestTicket_LinkCase(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.LinkCase("CASE-abc123-acme", t0.Add(time.Minute)))
	assert.True(t, tk.IsLinked())
	assert.Equal(t, "CASE-abc123-acme", *tk.LinkedCaseID())

	require.NoError(t, tk.LinkCase("CASE-abc123-acme", t0.Add(2*time.Minute)))
	assert.Equal(t, t0.Add(time.Minute), tk.UpdatedAt(), "same-case relink is a no-op")

	err := tk.LinkCase("CASE-zzz999-other", t0)
	assert.ErrorIs(t, err, ErrCaseAlreadyLinked)
	assert.Equal(t, "CASE-abc123-acme", *tk.LinkedCaseID())

	assert.Error(t, tk.LinkCase("", t0))
}

func TestTicket_LinkCaseRejectedWhenClosed(t *testing.T) {
	tk := newTestTicket(t)
	require.NoError(t, tk.ChangeStatus(vo.StatusClosed, t0))
	assert.ErrorIs(t, tk.LinkCase("CASE-abc123-acme", t0), ErrTicketClosed)
}

func TestTicket_ClosedLinkedTicketKeepsLink(t *testing.T) {
	tk := newTestTicket(t)
	require.NoError(t, tk.LinkCase("CASE-abc123-acme", t0))
	require.NoError(t, tk.ChangeStatus(vo.StatusActive, t0))
	require.NoError(t, tk.ChangeStatus(vo.StatusClosed, t0))
	assert.NoError(t, tk.LinkCase("CASE-abc123-acme", t0))
	assert.Equal(t, "CASE-abc123-acme", *tk.LinkedCaseID())
}

func TestTicket_UpdatedAtNeverMovesBackwards(t *testing.T) {
	tk := newTestTicket(t)
	require.NoError(t, tk.AssignTo(strPtr("staff-1"), t0.Add(-time.Hour)))
	assert.Equal(t, t0, tk.UpdatedAt())
}
