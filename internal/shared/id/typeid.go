package id

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

// Prefix identifies the entity type encoded in a TypeID.
type Prefix string

const (
	PrefixTimeEntry Prefix = "te"
	PrefixReview    Prefix = "rev"
	PrefixRequest   Prefix = "req"
)

// NewTypeID returns a globally unique, creation-ordered id such as
// "te_01h2xcejqtf2nbrexx3vqjhp41". Ids minted later sort after earlier ones.
func NewTypeID(prefix Prefix) (string, error) {
	tid, err := typeid.Generate(string(prefix))
	if err != nil {
		return "", fmt.Errorf("id: generate %q: %w", prefix, err)
	}
	return tid.String(), nil
}

// ValidateTypeID checks that s parses as a TypeID carrying the expected prefix.
func ValidateTypeID(s string, expected Prefix) error {
	tid, err := typeid.Parse(s)
	if err != nil {
		return fmt.Errorf("id: parse %q: %w", s, err)
	}
	if Prefix(tid.Prefix()) != expected {
		return fmt.Errorf("id: expected prefix %q, got %q", expected, tid.Prefix())
	}
	return nil
}

// NewTimeEntryID generates a new time entry ID.
func NewTimeEntryID() (string, error) { return NewTypeID(PrefixTimeEntry) }

// NewReviewID generates a new review ID.
func NewReviewID() (string, error) { return NewTypeID(PrefixReview) }

// NewRequestID generates an id for a request that arrived without one.
func NewRequestID() (string, error) { return NewTypeID(PrefixRequest) }
