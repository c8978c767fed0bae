package legalcase

import "github.com/hartlaw/hartlaw/internal/application/legalcase/usecases"

type CreateCaseRequest struct {
	Division   string `json:"division" binding:"required"`
	ClientName string `json:"client_name" binding:"required,max=200"`
	ChannelRef string `json:"channel_ref" binding:"max=100"`
	Currency   string `json:"currency" binding:"omitempty,currency"`
}

func (r *CreateCaseRequest) ToCommand() usecases.CreateCaseCommand {
	return usecases.CreateCaseCommand{
		Division:   r.Division,
		ClientName: r.ClientName,
		ChannelRef: r.ChannelRef,
		Currency:   r.Currency,
	}
}

type SetCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,currency"`
}

type SetContingencyRequest struct {
	Only    bool `json:"only"`
	Percent *int `json:"percent" binding:"omitempty,oneof=20 30"`
}

type ArchiveCaseRequest struct {
	CategoryCode string `json:"category_code" binding:"omitempty,oneof=CV CR SC"`
}
