package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/hartlaw/hartlaw/internal/domain/ticket"
	vo "github.com/hartlaw/hartlaw/internal/domain/ticket/valueobjects"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	model := &models.TicketModel{
		ID:              t.ID(),
		Type:            t.Type().String(),
		Status:          t.Status().String(),
		ClientUserID:    t.ClientUserID(),
		IntakeOriginRef: t.IntakeOriginRef(),
		ThreadRef:       t.ThreadRef(),
		AssignedUserID:  copyString(t.AssignedUserID()),
		LinkedCaseID:    copyString(t.LinkedCaseID()),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		Version:         t.Version(),
	}

	intake := t.Intake()
	if len(intake) > 0 {
		intakeJSON, err := json.Marshal(intake)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal intake: %w", err)
		}
		model.Intake = datatypes.JSON(intakeJSON)
	}

	return model, nil
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	ticketType, err := vo.NewTicketType(model.Type)
	if err != nil {
		return nil, err
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, err
	}

	var intake map[string]string
	if len(model.Intake) > 0 {
		if err := json.Unmarshal(model.Intake, &intake); err != nil {
			return nil, fmt.Errorf("failed to parse intake: %w", err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		ticketType,
		status,
		model.ClientUserID,
		intake,
		model.IntakeOriginRef,
		model.ThreadRef,
		copyString(model.AssignedUserID),
		copyString(model.LinkedCaseID),
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
		model.Version,
	)
}
