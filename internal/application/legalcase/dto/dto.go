package dto

import (
	"time"

	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
)

type ContingencyDTO struct {
	Only    bool   `json:"only"`
	Percent *int   `json:"percent,omitempty"`
	Note    string `json:"note,omitempty"`
}

type CaseDTO struct {
	ID                   string         `json:"id"`
	Division             string         `json:"division"`
	ClientName           string         `json:"client_name"`
	ChannelRef           string         `json:"channel_ref,omitempty"`
	Status               string         `json:"status"`
	Currency             string         `json:"currency"`
	Contingency          ContingencyDTO `json:"contingency"`
	ArchivedCategoryCode string         `json:"archived_category_code,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	ArchivedAt           *time.Time     `json:"archived_at,omitempty"`
}

func ToCaseDTO(c *legalcase.Case) *CaseDTO {
	if c == nil {
		return nil
	}
	contingency := c.Contingency()
	out := &CaseDTO{
		ID:         c.ID(),
		Division:   c.Division().String(),
		ClientName: c.ClientName(),
		ChannelRef: c.ChannelRef(),
		Status:     c.Status().String(),
		Currency:   c.Currency().String(),
		Contingency: ContingencyDTO{
			Only:    contingency.Only(),
			Percent: contingency.Percent(),
			Note:    contingency.Note(),
		},
		CreatedAt:  c.CreatedAt(),
		ArchivedAt: c.ArchivedAt(),
	}
	if code := c.ArchivedCategory(); code != nil {
		out.ArchivedCategoryCode = code.String()
	}
	return out
}
