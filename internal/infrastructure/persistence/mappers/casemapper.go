package mappers

import (
	"fmt"

	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	vo "github.com/hartlaw/hartlaw/internal/domain/legalcase/valueobjects"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/models"
)

// CaseMapper handles the conversion between case domain entities and persistence models.
type CaseMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.CaseModel) (*legalcase.Case, error)

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *legalcase.Case) *models.CaseModel
}

// CaseMapperImpl is the concrete implementation of CaseMapper.
type CaseMapperImpl struct{}

// NewCaseMapper creates a new case mapper.
func NewCaseMapper() CaseMapper {
	return &CaseMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *CaseMapperImpl) ToEntity(model *models.CaseModel) (*legalcase.Case, error) {
	if model == nil {
		return nil, nil
	}

	division, err := vo.NewDivision(model.Division)
	if err != nil {
		return nil, err
	}

	status, err := vo.NewCaseStatus(model.Status)
	if err != nil {
		return nil, err
	}

	currency, err := billing.ParseCurrency(model.Currency)
	if err != nil {
		return nil, err
	}

	contingency, err := vo.NewContingency(model.ContingencyOnly, model.ContingencyPercent)
	if err != nil {
		return nil, fmt.Errorf("invalid stored contingency: %w", err)
	}

	var category *vo.CategoryCode
	if model.ArchivedCategoryCode != nil {
		code, err := vo.NewCategoryCode(*model.ArchivedCategoryCode)
		if err != nil {
			return nil, err
		}
		category = &code
	}

	return legalcase.ReconstructCase(
		model.ID,
		division,
		model.ClientName,
		model.ChannelRef,
		status,
		currency,
		contingency,
		category,
		model.CreatedAt.UTC(),
		utcPtr(model.ArchivedAt),
		model.Version,
	)
}

// ToModel converts a domain entity to a persistence model.
func (m *CaseMapperImpl) ToModel(entity *legalcase.Case) *models.CaseModel {
	if entity == nil {
		return nil
	}

	model := &models.CaseModel{
		ID:                 entity.ID(),
		Division:           entity.Division().String(),
		ClientName:         entity.ClientName(),
		ChannelRef:         entity.ChannelRef(),
		Status:             entity.Status().String(),
		Currency:           entity.Currency().String(),
		ContingencyOnly:    entity.Contingency().Only(),
		ContingencyPercent: entity.Contingency().Percent(),
		CreatedAt:          entity.CreatedAt(),
		ArchivedAt:         entity.ArchivedAt(),
		Version:            entity.Version(),
	}

	if code := entity.ArchivedCategory(); code != nil {
		s := code.String()
		model.ArchivedCategoryCode = &s
	}

	return model
}
