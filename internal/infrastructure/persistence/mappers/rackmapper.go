package mappers

import (
	"encoding/json"
	"fmt"

	"patchbay/internal/domain/rack"
	"patchbay/internal/infrastructure/persistence/models"

	"gorm.io/datatypes"
)

// RackMapper handles the conversion between rack entities and models.
type RackMapper interface {
	ToEntity(model *models.RackModel) (*rack.Rack, error)
	ToModel(entity *rack.Rack) (*models.RackModel, error)
	ToEntities(models []*models.RackModel) ([]*rack.Rack, error)
}

type rackMapper struct{}

// NewRackMapper creates a new rack mapper.
func NewRackMapper() RackMapper {
	return &rackMapper{}
}

func (m *rackMapper) ToEntity(model *models.RackModel) (*rack.Rack, error) {
	if model == nil {
		return nil, nil
	}
	return rack.ReconstructRack(
		model.ID,
		model.Name,
		model.SiteID,
		model.UHeight,
		model.DescUnits,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *rackMapper) ToModel(entity *rack.Rack) (*models.RackModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.RackModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		SiteID:    entity.SiteID(),
		UHeight:   entity.UHeight(),
		DescUnits: entity.DescUnits(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *rackMapper) ToEntities(rackModels []*models.RackModel) ([]*rack.Rack, error) {
	entities := make([]*rack.Rack, 0, len(rackModels))
	for _, model := range rackModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// ReservationMapper handles the conversion between reservation entities and
// models.
type ReservationMapper interface {
	ToEntity(model *models.RackReservationModel) (*rack.Reservation, error)
	ToModel(entity *rack.Reservation) (*models.RackReservationModel, error)
	ToEntities(models []*models.RackReservationModel) ([]*rack.Reservation, error)
}

type reservationMapper struct{}

// NewReservationMapper creates a new reservation mapper.
func NewReservationMapper() ReservationMapper {
	return &reservationMapper{}
}

func (m *reservationMapper) ToEntity(model *models.RackReservationModel) (*rack.Reservation, error) {
	if model == nil {
		return nil, nil
	}

	var units []int
	if len(model.Units) > 0 {
		if err := json.Unmarshal(model.Units, &units); err != nil {
			return nil, fmt.Errorf("failed to parse reservation units: %w", err)
		}
	}

	return rack.ReconstructReservation(
		model.ID,
		model.RackID,
		units,
		model.Owner,
		model.Description,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *reservationMapper) ToModel(entity *rack.Reservation) (*models.RackReservationModel, error) {
	if entity == nil {
		return nil, nil
	}

	units, err := json.Marshal(entity.Units())
	if err != nil {
		return nil, fmt.Errorf("failed to encode reservation units: %w", err)
	}

	return &models.RackReservationModel{
		ID:          entity.ID(),
		RackID:      entity.RackID(),
		Units:       datatypes.JSON(units),
		Owner:       entity.Owner(),
		Description: entity.Description(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *reservationMapper) ToEntities(reservationModels []*models.RackReservationModel) ([]*rack.Reservation, error) {
	entities := make([]*rack.Reservation, 0, len(reservationModels))
	for _, model := range reservationModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
