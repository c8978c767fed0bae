package billing

import "github.com/shopspring/decimal"

// InvoiceSummary aggregates every entry of a case in creation order. Both
// ledgers are summed independently; Subtotal is the one in Currency.
type InvoiceSummary struct {
	CaseID      string
	Currency    Currency
	Entries     []*TimeEntry
	Subtotal    decimal.Decimal
	SubtotalUSD decimal.Decimal
	SubtotalRBX decimal.Decimal
	TotalHours  decimal.Decimal
}

func Summarize(caseID string, currency Currency, entries []*TimeEntry) *InvoiceSummary {
	s := &InvoiceSummary{
		CaseID:      caseID,
		Currency:    currency,
		Entries:     entries,
		SubtotalUSD: decimal.Zero,
		SubtotalRBX: decimal.Zero,
		TotalHours:  decimal.Zero,
	}
	if s.Entries == nil {
		s.Entries = []*TimeEntry{}
	}

	for _, e := range entries {
		s.SubtotalUSD = s.SubtotalUSD.Add(e.AmountUSD())
		s.SubtotalRBX = s.SubtotalRBX.Add(e.AmountRBX())
		s.TotalHours = s.TotalHours.Add(e.Hours())
	}

	s.Subtotal = s.SubtotalUSD
	if currency == CurrencyRBX {
		s.Subtotal = s.SubtotalRBX
	}
	return s
}
