package legalcase

import (
	"fmt"
	"strings"
	"time"

	"github.com/hartlaw/hartlaw/internal/domain/billing"
	vo "github.com/hartlaw/hartlaw/internal/domain/legalcase/valueobjects"
)

// Case is a legal matter. Status moves ACTIVE -> ARCHIVED only; billing terms
// stay editable after archive.
type Case struct {
	id                   string
	division             vo.Division
	clientName           string
	channelRef           string
	status               vo.CaseStatus
	currency             billing.Currency
	contingency          vo.Contingency
	archivedCategoryCode *vo.CategoryCode
	createdAt            time.Time
	archivedAt           *time.Time
	version              int
}

func NewCase(id string, division vo.Division, clientName, channelRef string, currency billing.Currency, now time.Time) (*Case, error) {
	if !strings.HasPrefix(id, CaseIDPrefix) {
		return nil, fmt.Errorf("invalid case ID: %s", id)
	}
	if !division.IsValid() {
		return nil, fmt.Errorf("invalid division: %s", division)
	}
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, fmt.Errorf("client name is required")
	}
	if currency == "" {
		currency = billing.CurrencyUSD
	}
	if !currency.IsValid() {
		return nil, fmt.Errorf("invalid currency: %s", currency)
	}

	return &Case{
		id:          id,
		division:    division,
		clientName:  clientName,
		channelRef:  channelRef,
		status:      vo.StatusActive,
		currency:    currency,
		contingency: vo.NoContingency(),
		createdAt:   now.UTC(),
		version:     1,
	}, nil
}

func ReconstructCase(
	id string,
	division vo.Division,
	clientName, channelRef string,
	status vo.CaseStatus,
	currency billing.Currency,
	contingency vo.Contingency,
	archivedCategoryCode *vo.CategoryCode,
	createdAt time.Time,
	archivedAt *time.Time,
	version int,
) (*Case, error) {
	if id == "" {
		return nil, fmt.Errorf("case ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if status.IsArchived() != (archivedCategoryCode != nil) {
		return nil, fmt.Errorf("archived category code must be set exactly when the case is archived")
	}
	if version < 1 {
		return nil, fmt.Errorf("invalid version: %d", version)
	}

	return &Case{
		id:                   id,
		division:             division,
		clientName:           clientName,
		channelRef:           channelRef,
		status:               status,
		currency:             currency,
		contingency:          contingency,
		archivedCategoryCode: archivedCategoryCode,
		createdAt:            createdAt,
		archivedAt:           archivedAt,
		version:              version,
	}, nil
}

func (c *Case) ID() string { return c.id }
func (c *Case) Division() vo.Division { return c.division }
func (c *Case) ClientName() string { return c.clientName }
func (c *Case) ChannelRef() string { return c.channelRef }
func (c *Case) Status() vo.CaseStatus { return c.status }
func (c *Case) Currency() billing.Currency { return c.currency }
func (c *Case) Contingency() vo.Contingency { return c.contingency }
func (c *Case) CreatedAt() time.Time { return c.createdAt }
func (c *Case) ArchivedAt() *time.Time { return c.archivedAt }
func (c *Case) IsArchived() bool { return c.status.IsArchived() }
func (c *Case) ArchivedCategory() *vo.CategoryCode { return c.archivedCategoryCode }

// Version is the stored row version the case was loaded at. Update only
// succeeds against that version.
func (c *Case) Version() int { return c.version }

// SetVersion records the row version after a successful write.
func (c *Case) SetVersion(version int) { c.version = version }

func (c *Case) SetCurrency(currency billing.Currency) error {
	if !currency.IsValid() {
		return fmt.Errorf("invalid currency: %s", currency)
	}
	c.currency = currency
	return nil
}

func (c *Case) SetContingency(contingency vo.Contingency) {
	c.contingency = contingency
}

// Archive sets status, category code and archived_at together. Archiving an
// archived case overwrites the category code and timestamp.
func (c *Case) Archive(code vo.CategoryCode, now time.Time) error {
	if !code.IsValid() {
		return fmt.Errorf("invalid category code: %s", code)
	}
	if c.status != vo.StatusArchived && !c.status.CanTransitionTo(vo.StatusArchived) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, c.status, vo.StatusArchived)
	}

	at := now.UTC()
	c.status = vo.StatusArchived
	c.archivedCategoryCode = &code
	c.archivedAt = &at
	return nil
}
