package billing

import (
	"github.com/shopspring/decimal"

	"github.com/hartlaw/hartlaw/internal/application/billing/dto"
	"github.com/hartlaw/hartlaw/internal/application/billing/usecases"
)

type AddTimeEntryRequest struct {
	// StaffUserID defaults to the calling actor.
	StaffUserID          string          `json:"staff_user_id" binding:"max=64"`
	Role                 string          `json:"role" binding:"required,max=100"`
	Tier                 string          `json:"tier" binding:"required,tier"`
	Hours                decimal.Decimal `json:"hours"`
	Description          string          `json:"description" binding:"max=2000"`
	IsTravel             bool            `json:"is_travel"`
	IsInternalConference bool            `json:"is_internal_conference"`
	TeamSize             int             `json:"team_size" binding:"omitempty,gte=1,lte=50"`
}

func (r *AddTimeEntryRequest) ToCommand(caseID, actorID string) usecases.AddTimeEntryCommand {
	staff := r.StaffUserID
	if staff == "" {
		staff = actorID
	}
	return usecases.AddTimeEntryCommand{
		CaseID:               caseID,
		StaffUserID:          staff,
		Role:                 r.Role,
		Tier:                 r.Tier,
		Hours:                r.Hours,
		Description:          r.Description,
		IsTravel:             r.IsTravel,
		IsInternalConference: r.IsInternalConference,
		TeamSize:             r.TeamSize,
	}
}

type TimeEntryResponse struct {
	Entry  *dto.TimeEntryDTO `json:"entry"`
	Capped bool              `json:"capped"`
	// RequestedHours is set only when the daily cap shortened the entry.
	RequestedHours *decimal.Decimal `json:"requested_hours,omitempty"`
}

func toTimeEntryResponse(r *usecases.AddTimeEntryResult) *TimeEntryResponse {
	resp := &TimeEntryResponse{Entry: r.Entry, Capped: r.Capped}
	if r.Capped {
		requested := r.RequestedHours
		resp.RequestedHours = &requested
	}
	return resp
}
