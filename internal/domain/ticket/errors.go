package ticket

import "errors"

var (
	ErrTicketNotFound         = errors.New("ticket not found")
	ErrInvalidTransition      = errors.New("invalid ticket status transition")
	ErrTicketClosed           = errors.New("ticket is closed")
	ErrCaseAlreadyLinked      = errors.New("ticket already linked to a different case")
	ErrDailySequenceExhausted = errors.New("daily ticket sequence exhausted")
	ErrConcurrentUpdate       = errors.New("ticket was modified by another request")
)
