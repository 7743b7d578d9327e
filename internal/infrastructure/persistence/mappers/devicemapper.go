package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"patchbay/internal/domain/rack"
	vo "patchbay/internal/domain/rack/valueobjects"
	"patchbay/internal/infrastructure/persistence/models"
)

// DeviceMapper handles the conversion between device entities and models.
type DeviceMapper interface {
	ToEntity(model *models.DeviceModel) (*rack.Device, error)
	ToModel(entity *rack.Device) (*models.DeviceModel, error)
	ToEntities(models []*models.DeviceModel) ([]*rack.Device, error)
}

type deviceMapper struct{}

// NewDeviceMapper creates a new device mapper.
func NewDeviceMapper() DeviceMapper {
	return &deviceMapper{}
}

func (m *deviceMapper) ToEntity(model *models.DeviceModel) (*rack.Device, error) {
	if model == nil {
		return nil, nil
	}

	var rackID uint
	if model.RackID != nil {
		rackID = *model.RackID
	}
	var position int
	if model.Position != nil {
		position = *model.Position
	}

	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to parse device tags: %w", err)
		}
	}

	return rack.ReconstructDevice(
		model.ID,
		model.Name,
		model.SiteID,
		rackID,
		position,
		model.Height,
		vo.Face(model.Face),
		model.FullDepth,
		tags,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *deviceMapper) ToModel(entity *rack.Device) (*models.DeviceModel, error) {
	if entity == nil {
		return nil, nil
	}

	var rackID *uint
	var position *int
	if entity.IsRacked() {
		id := entity.RackID()
		pos := entity.Position()
		rackID = &id
		position = &pos
	}

	var tags datatypes.JSON
	if len(entity.Tags()) > 0 {
		raw, err := json.Marshal(entity.Tags())
		if err != nil {
			return nil, fmt.Errorf("failed to encode device tags: %w", err)
		}
		tags = datatypes.JSON(raw)
	}

	return &models.DeviceModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		SiteID:    entity.SiteID(),
		RackID:    rackID,
		Position:  position,
		Height:    entity.Height(),
		Face:      entity.Face().String(),
		FullDepth: entity.FullDepth(),
		Tags:      tags,
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *deviceMapper) ToEntities(deviceModels []*models.DeviceModel) ([]*rack.Device, error) {
	entities := make([]*rack.Device, 0, len(deviceModels))
	for _, model := range deviceModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
