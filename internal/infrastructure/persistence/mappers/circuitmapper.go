package mappers

import (
	"patchbay/internal/domain/topology"
	"patchbay/internal/infrastructure/persistence/models"
)

// CircuitMapper handles the conversion between circuit entities and models.
type CircuitMapper interface {
	ToEntity(model *models.CircuitModel) (*topology.Circuit, error)
	ToModel(entity *topology.Circuit) (*models.CircuitModel, error)
	TerminationToEntity(model *models.CircuitTerminationModel) (*topology.CircuitTermination, error)
	TerminationToModel(entity *topology.CircuitTermination) (*models.CircuitTerminationModel, error)
}

type circuitMapper struct{}

// NewCircuitMapper creates a new circuit mapper.
func NewCircuitMapper() CircuitMapper {
	return &circuitMapper{}
}

func (m *circuitMapper) ToEntity(model *models.CircuitModel) (*topology.Circuit, error) {
	if model == nil {
		return nil, nil
	}
	return topology.ReconstructCircuit(model.ID, model.CID, model.Provider, model.CreatedAt, model.UpdatedAt)
}

func (m *circuitMapper) ToModel(entity *topology.Circuit) (*models.CircuitModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.CircuitModel{
		ID:        entity.ID(),
		CID:       entity.CID(),
		Provider:  entity.Provider(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *circuitMapper) TerminationToEntity(model *models.CircuitTerminationModel) (*topology.CircuitTermination, error) {
	if model == nil {
		return nil, nil
	}
	return topology.ReconstructCircuitTermination(
		model.ID,
		model.CircuitID,
		topology.CircuitSide(model.Side),
		model.SiteID,
	)
}

func (m *circuitMapper) TerminationToModel(entity *topology.CircuitTermination) (*models.CircuitTerminationModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.CircuitTerminationModel{
		ID:        entity.ID(),
		CircuitID: entity.CircuitID(),
		Side:      string(entity.Side()),
		SiteID:    entity.SiteID(),
	}, nil
}
