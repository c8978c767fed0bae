package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/domain/rate"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/models"
)

// TimeEntryMapper handles the conversion between time entries and persistence models.
type TimeEntryMapper interface {
	ToEntity(model *models.TimeEntryModel) (*billing.TimeEntry, error)
	ToModel(entity *billing.TimeEntry) (*models.TimeEntryModel, error)
	ToEntities(models []*models.TimeEntryModel) ([]*billing.TimeEntry, error)
}

// TimeEntryMapperImpl is the concrete implementation of TimeEntryMapper.
type TimeEntryMapperImpl struct{}

// NewTimeEntryMapper creates a new time entry mapper.
func NewTimeEntryMapper() TimeEntryMapper {
	return &TimeEntryMapperImpl{}
}

func (m *TimeEntryMapperImpl) ToEntity(model *models.TimeEntryModel) (*billing.TimeEntry, error) {
	if model == nil {
		return nil, nil
	}

	tier, err := rate.NewTier(model.Tier)
	if err != nil {
		return nil, err
	}

	var rawTags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &rawTags); err != nil {
			return nil, fmt.Errorf("failed to parse tags: %w", err)
		}
	}
	tags, err := billing.ParseTags(rawTags)
	if err != nil {
		return nil, err
	}

	return billing.ReconstructTimeEntry(
		model.ID,
		model.CaseID,
		model.StaffUserID,
		model.Role,
		tier,
		model.Hours,
		model.RateUSD,
		model.RateRBX,
		model.AmountUSD,
		model.AmountRBX,
		model.Text,
		tags,
		model.TeamSize,
		model.InternalConference,
		model.Travel,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func (m *TimeEntryMapperImpl) ToModel(entity *billing.TimeEntry) (*models.TimeEntryModel, error) {
	if entity == nil {
		return nil, nil
	}

	tagsJSON, err := json.Marshal(entity.Tags().Strings())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}

	return &models.TimeEntryModel{
		ID:                 entity.ID(),
		CaseID:             entity.CaseID(),
		StaffUserID:        entity.StaffUserID(),
		Role:               entity.Role(),
		Tier:               entity.Tier().String(),
		Hours:              entity.Hours(),
		RateUSD:            entity.RateUSD(),
		RateRBX:            entity.RateRBX(),
		AmountUSD:          entity.AmountUSD(),
		AmountRBX:          entity.AmountRBX(),
		Text:               entity.Text(),
		Tags:               datatypes.JSON(tagsJSON),
		TeamSize:           entity.TeamSize(),
		InternalConference: entity.IsInternalConference(),
		Travel:             entity.IsTravel(),
		CreatedAt:          entity.CreatedAt().UnixMilli(),
	}, nil
}

func (m *TimeEntryMapperImpl) ToEntities(modelList []*models.TimeEntryModel) ([]*billing.TimeEntry, error) {
	entities := make([]*billing.TimeEntry, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map time entry %s: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
