package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from TicketStatus
		to   TicketStatus
		want bool
	}{
		{StatusPending, StatusActive, true},
		{StatusPending, StatusClosed, true},
		{StatusActive, StatusClosed, true},
		{StatusActive, StatusPending, false},
		{StatusClosed, StatusActive, false},
		{StatusClosed, StatusPending, false},
		{TicketStatus("OPEN"), StatusClosed, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewTicketStatusAndType(t *testing.T) {
	_, err := NewTicketStatus("pending")
	assert.Error(t, err)
	s, err := NewTicketStatus("PENDING")
	assert.NoError(t, err)
	assert.False(t, s.IsTerminal())
	assert.True(t, StatusClosed.IsTerminal())

	_, err = NewTicketType("family")
	assert.Error(t, err)
	_, err = NewTicketType("appellate")
	assert.NoError(t, err)
}
