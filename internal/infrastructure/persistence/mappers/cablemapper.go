// Package mappers converts between domain entities and persistence models.
package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"patchbay/internal/domain/topology"
	vo "patchbay/internal/domain/topology/valueobjects"
	"patchbay/internal/infrastructure/persistence/models"
)

// CableMapper handles the conversion between cable entities and models.
type CableMapper interface {
	ToEntity(model *models.CableModel) (*topology.Cable, error)
	ToModel(entity *topology.Cable) (*models.CableModel, error)
	ToEntities(models []*models.CableModel) ([]*topology.Cable, error)
}

type cableMapper struct{}

// NewCableMapper creates a new cable mapper.
func NewCableMapper() CableMapper {
	return &cableMapper{}
}

func (m *cableMapper) ToEntity(model *models.CableModel) (*topology.Cable, error) {
	if model == nil {
		return nil, nil
	}

	tags, err := tagsFromJSON(model.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cable tags: %w", err)
	}

	return topology.ReconstructCable(
		model.ID,
		topology.Termination{
			Kind:  vo.TerminationKind(model.TerminationAKind),
			ID:    model.TerminationAID,
			Label: model.TerminationALbl,
		},
		topology.Termination{
			Kind:  vo.TerminationKind(model.TerminationBKind),
			ID:    model.TerminationBID,
			Label: model.TerminationBLbl,
		},
		vo.CableStatus(model.Status),
		model.Label,
		model.Length,
		vo.LengthUnit(model.LengthUnit),
		tags,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *cableMapper) ToModel(entity *topology.Cable) (*models.CableModel, error) {
	if entity == nil {
		return nil, nil
	}

	tags, err := tagsToJSON(entity.Tags())
	if err != nil {
		return nil, fmt.Errorf("failed to encode cable tags: %w", err)
	}

	return &models.CableModel{
		ID:               entity.ID(),
		TerminationAKind: entity.TerminationA().Kind.String(),
		TerminationAID:   entity.TerminationA().ID,
		TerminationALbl:  entity.TerminationA().Label,
		TerminationBKind: entity.TerminationB().Kind.String(),
		TerminationBID:   entity.TerminationB().ID,
		TerminationBLbl:  entity.TerminationB().Label,
		Status:           entity.Status().String(),
		Label:            entity.Label(),
		Length:           entity.Length(),
		LengthUnit:       entity.LengthUnit().String(),
		LengthMeters:     entity.LengthMeters(),
		Tags:             tags,
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

func (m *cableMapper) ToEntities(cableModels []*models.CableModel) ([]*topology.Cable, error) {
	entities := make([]*topology.Cable, 0, len(cableModels))
	for _, model := range cableModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func tagsFromJSON(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func tagsToJSON(tags []string) (datatypes.JSON, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
