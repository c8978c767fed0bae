package valueobjects

import "fmt"

// TicketType is the practice area an intake request is routed to.
type TicketType string

const (
	TypeCivil     TicketType = "civil"
	TypeCriminal  TicketType = "criminal"
	TypeAppellate TicketType = "appellate"
)

func (t TicketType) String() string {
	return string(t)
}

func (t TicketType) IsValid() bool {
	return t == TypeCivil || t == TypeCriminal || t == TypeAppellate
}

func NewTicketType(s string) (TicketType, error) {
	t := TicketType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return t, nil
}
