package mappers

import (
	"patchbay/internal/domain/rack"
	"patchbay/internal/infrastructure/persistence/models"
)

// SiteMapper handles the conversion between site entities and models.
type SiteMapper interface {
	ToEntity(model *models.SiteModel) (*rack.Site, error)
	ToModel(entity *rack.Site) (*models.SiteModel, error)
	ToEntities(models []*models.SiteModel) ([]*rack.Site, error)
}

type siteMapper struct{}

// NewSiteMapper creates a new site mapper.
func NewSiteMapper() SiteMapper {
	return &siteMapper{}
}

func (m *siteMapper) ToEntity(model *models.SiteModel) (*rack.Site, error) {
	if model == nil {
		return nil, nil
	}
	return rack.ReconstructSite(model.ID, model.Name, model.Slug, model.CreatedAt, model.UpdatedAt)
}

func (m *siteMapper) ToModel(entity *rack.Site) (*models.SiteModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.SiteModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Slug:      entity.Slug(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *siteMapper) ToEntities(siteModels []*models.SiteModel) ([]*rack.Site, error) {
	entities := make([]*rack.Site, 0, len(siteModels))
	for _, model := range siteModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
