package mappers

import (
	"patchbay/internal/domain/topology"
	vo "patchbay/internal/domain/topology/valueobjects"
	"patchbay/internal/infrastructure/persistence/models"
)

// PortMapper handles the conversion between port entities and models.
type PortMapper interface {
	ToEntity(model *models.PortModel) (*topology.Port, error)
	ToModel(entity *topology.Port) (*models.PortModel, error)
	ToEntities(models []*models.PortModel) ([]*topology.Port, error)
}

type portMapper struct{}

// NewPortMapper creates a new port mapper.
func NewPortMapper() PortMapper {
	return &portMapper{}
}

func (m *portMapper) ToEntity(model *models.PortModel) (*topology.Port, error) {
	if model == nil {
		return nil, nil
	}

	var rearPortID uint
	if model.RearPortID != nil {
		rearPortID = *model.RearPortID
	}

	return topology.ReconstructPort(
		model.ID,
		model.DeviceID,
		model.Name,
		vo.TerminationKind(model.Kind),
		model.Positions,
		rearPortID,
		model.RearPortPosition,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *portMapper) ToModel(entity *topology.Port) (*models.PortModel, error) {
	if entity == nil {
		return nil, nil
	}

	var rearPortID *uint
	if id := entity.RearPortID(); id != 0 {
		rearPortID = &id
	}

	return &models.PortModel{
		ID:               entity.ID(),
		DeviceID:         entity.DeviceID(),
		Name:             entity.Name(),
		Kind:             entity.Kind().String(),
		Positions:        entity.Positions(),
		RearPortID:       rearPortID,
		RearPortPosition: entity.RearPortPosition(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

func (m *portMapper) ToEntities(portModels []*models.PortModel) ([]*topology.Port, error) {
	entities := make([]*topology.Port, 0, len(portModels))
	for _, model := range portModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
