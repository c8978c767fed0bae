package billing

import "errors"

var (
	ErrInternalConferenceCapReached = errors.New("internal conference cap reached for today")
	ErrInvalidHours                 = errors.New("hours must be greater than zero")
)
