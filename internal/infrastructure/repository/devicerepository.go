package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"patchbay/internal/domain/rack"
	"patchbay/internal/infrastructure/persistence/mappers"
	"patchbay/internal/infrastructure/persistence/models"
	"patchbay/internal/shared/db"
	"patchbay/internal/shared/logger"
)

// DeviceRepositoryImpl implements the rack.DeviceRepository interface.
type DeviceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DeviceMapper
	logger logger.Interface
}

// NewDeviceRepository creates a new device repository instance.
func NewDeviceRepository(db *gorm.DB, logger logger.Interface) rack.DeviceRepository {
	return &DeviceRepositoryImpl{
		db:     db,
		mapper: mappers.NewDeviceMapper(),
		logger: logger,
	}
}

// Create creates a new device in the database.
func (r *DeviceRepositoryImpl) Create(ctx context.Context, device *rack.Device) error {
	model, err := r.mapper.ToModel(device)
	if err != nil {
		r.logger.Errorw("failed to map device entity to model", "error", err)
		return fmt.Errorf("failed to map device entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create device in database", "error", err)
		return fmt.Errorf("failed to create device: %w", err)
	}

	if err := device.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set device ID", "error", err)
		return fmt.Errorf("failed to set device ID: %w", err)
	}

	r.logger.Infow("device created successfully", "id", model.ID, "name", model.Name)
	return nil
}

// GetByID retrieves a device by its ID.
func (r *DeviceRepositoryImpl) GetByID(ctx context.Context, id uint) (*rack.Device, error) {
	var model models.DeviceModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get device by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByRack returns the devices mounted in a rack ordered by position.
func (r *DeviceRepositoryImpl) ListByRack(ctx context.Context, rackID uint) ([]*rack.Device, error) {
	var deviceModels []*models.DeviceModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("rack_id = ?", rackID).Order("position ASC, id ASC").Find(&deviceModels).Error
	if err != nil {
		r.logger.Errorw("failed to list devices by rack", "rack_id", rackID, "error", err)
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	return r.mapper.ToEntities(deviceModels)
}

// Update persists changes to a device.
func (r *DeviceRepositoryImpl) Update(ctx context.Context, device *rack.Device) error {
	model, err := r.mapper.ToModel(device)
	if err != nil {
		r.logger.Errorw("failed to map device entity to model", "error", err)
		return fmt.Errorf("failed to map device entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Save(model).Error; err != nil {
		r.logger.Errorw("failed to update device", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update device: %w", err)
	}

	r.logger.Infow("device updated successfully", "id", model.ID)
	return nil
}

// Delete removes a device.
func (r *DeviceRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.DeviceModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete device", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return rack.ErrDeviceNotFound
	}

	r.logger.Infow("device deleted successfully", "id", id)
	return nil
}
