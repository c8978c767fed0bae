package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/shared/mapper"
)

type TimeEntryDTO struct {
	ID                   string          `json:"id"`
	CaseID               string          `json:"case_id"`
	StaffUserID          string          `json:"staff_user_id"`
	Role                 string          `json:"role"`
	Tier                 string          `json:"tier"`
	Hours                decimal.Decimal `json:"hours"`
	RateUSD              decimal.Decimal `json:"rate_usd"`
	RateRBX              decimal.Decimal `json:"rate_rbx"`
	AmountUSD            decimal.Decimal `json:"amount_usd"`
	AmountRBX            decimal.Decimal `json:"amount_rbx"`
	Description          string          `json:"description"`
	Tags                 []string        `json:"tags"`
	TeamSize             int             `json:"team_size"`
	IsTravel             bool            `json:"is_travel"`
	IsInternalConference bool            `json:"is_internal_conference"`
	CreatedAt            time.Time       `json:"created_at"`
}

func ToTimeEntryDTO(e *billing.TimeEntry) *TimeEntryDTO {
	if e == nil {
		return nil
	}
	return &TimeEntryDTO{
		ID:                   e.ID(),
		CaseID:               e.CaseID(),
		StaffUserID:          e.StaffUserID(),
		Role:                 e.Role(),
		Tier:                 e.Tier().String(),
		Hours:                e.Hours(),
		RateUSD:              e.RateUSD(),
		RateRBX:              e.RateRBX(),
		AmountUSD:            e.AmountUSD(),
		AmountRBX:            e.AmountRBX(),
		Description:          e.Description(),
		Tags:                 e.Tags().Strings(),
		TeamSize:             e.TeamSize(),
		IsTravel:             e.IsTravel(),
		IsInternalConference: e.IsInternalConference(),
		CreatedAt:            e.CreatedAt(),
	}
}

type InvoiceSummaryDTO struct {
	CaseID          string          `json:"case_id"`
	ClientName      string          `json:"client_name"`
	Currency        string          `json:"currency"`
	Entries         []*TimeEntryDTO `json:"entries"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	SubtotalUSD     decimal.Decimal `json:"subtotal_usd"`
	SubtotalRBX     decimal.Decimal `json:"subtotal_rbx"`
	TotalHours      decimal.Decimal `json:"total_hours"`
	ContingencyNote string          `json:"contingency_note,omitempty"`
}

func ToInvoiceSummaryDTO(s *billing.InvoiceSummary, clientName, contingencyNote string) *InvoiceSummaryDTO {
	entries := mapper.MapSlicePtr(s.Entries, ToTimeEntryDTO)
	return &InvoiceSummaryDTO{
		CaseID:          s.CaseID,
		ClientName:      clientName,
		Currency:        s.Currency.String(),
		Entries:         entries,
		Subtotal:        s.Subtotal,
		SubtotalUSD:     s.SubtotalUSD,
		SubtotalRBX:     s.SubtotalRBX,
		TotalHours:      s.TotalHours,
		ContingencyNote: contingencyNote,
	}
}

type RetainerQuoteDTO struct {
	Tier     string          `json:"tier"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
	Basis    string          `json:"basis"`
}

func ToRetainerQuoteDTO(q billing.RetainerQuote) *RetainerQuoteDTO {
	return &RetainerQuoteDTO{
		Tier:     q.Tier.String(),
		Currency: q.Currency.String(),
		Amount:   q.Amount,
		Basis:    q.Basis,
	}
}
