package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusPending TicketStatus = "PENDING"
	StatusActive  TicketStatus = "ACTIVE"
	StatusClosed  TicketStatus = "CLOSED"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusPending: true,
	StatusActive:  true,
	StatusClosed:  true,
}

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusPending: {
		StatusActive,
		StatusClosed,
	},
	StatusActive: {
		StatusClosed,
	},
	StatusClosed: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusClosed
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}
