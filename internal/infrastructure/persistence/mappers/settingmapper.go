package mappers

import (
	"github.com/hartlaw/hartlaw/internal/domain/setting"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/models"
)

// SettingMapper provides methods for converting between domain and model
type SettingMapper interface {
	ToDomain(model *models.SettingModel) *setting.Setting
	ToModel(domain *setting.Setting) *models.SettingModel
	ToDomainList(modelList []*models.SettingModel) []*setting.Setting
}

// SettingMapperImpl implements SettingMapper
type SettingMapperImpl struct{}

// NewSettingMapper creates a new SettingMapper
func NewSettingMapper() SettingMapper {
	return &SettingMapperImpl{}
}

// ToDomain converts a SettingModel to a Setting domain entity
func (m *SettingMapperImpl) ToDomain(model *models.SettingModel) *setting.Setting {
	if model == nil {
		return nil
	}

	return setting.ReconstructSetting(
		model.SettingKey,
		model.Value,
		model.Version,
		model.UpdatedAt.UTC(),
	)
}

// ToModel converts a Setting domain entity to a SettingModel
func (m *SettingMapperImpl) ToModel(domain *setting.Setting) *models.SettingModel {
	if domain == nil {
		return nil
	}

	return &models.SettingModel{
		SettingKey: domain.Key(),
		Value:      domain.Value(),
		Version:    domain.Version(),
		UpdatedAt:  domain.UpdatedAt(),
	}
}

// ToDomainList converts a list of SettingModel to a list of Setting domain entities
func (m *SettingMapperImpl) ToDomainList(modelList []*models.SettingModel) []*setting.Setting {
	if modelList == nil {
		return nil
	}

	domains := make([]*setting.Setting, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}

	return domains
}
