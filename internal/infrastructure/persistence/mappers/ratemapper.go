package mappers

import (
	"github.com/hartlaw/hartlaw/internal/domain/rate"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/models"
)

type RateMapper interface {
	ToEntity(model *models.RateModel) (*rate.Entry, error)
	ToModel(entity *rate.Entry) *models.RateModel
}

type RateMapperImpl struct{}

func NewRateMapper() RateMapper {
	return &RateMapperImpl{}
}

func (m *RateMapperImpl) ToEntity(model *models.RateModel) (*rate.Entry, error) {
	tier, err := rate.NewTier(model.Tier)
	if err != nil {
		return nil, err
	}
	return rate.NewEntry(model.Role, tier, model.Rate)
}

func (m *RateMapperImpl) ToModel(entity *rate.Entry) *models.RateModel {
	return &models.RateModel{
		Role: entity.Role(),
		Tier: entity.Tier().String(),
		Rate: entity.Rate(),
	}
}
