package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"patchbay/internal/domain/topology"
	"patchbay/internal/infrastructure/persistence/mappers"
	"patchbay/internal/infrastructure/persistence/models"
	"patchbay/internal/shared/db"
	"patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// PortRepositoryImpl implements the topology.PortRepository interface.
type PortRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PortMapper
	logger logger.Interface
}

// NewPortRepository creates a new port repository instance.
func NewPortRepository(db *gorm.DB, logger logger.Interface) topology.PortRepository {
	return &PortRepositoryImpl{
		db:     db,
		mapper: mappers.NewPortMapper(),
		logger: logger,
	}
}

// Create creates a new port in the database.
func (r *PortRepositoryImpl) Create(ctx context.Context, port *topology.Port) error {
	model, err := r.mapper.ToModel(port)
	if err != nil {
		r.logger.Errorw("failed to map port entity to model", "error", err)
		return fmt.Errorf("failed to map port entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return errors.NewConflictError("port name already in use on device")
		}
		r.logger.Errorw("failed to create port in database", "error", err)
		return fmt.Errorf("failed to create port: %w", err)
	}

	if err := port.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set port ID", "error", err)
		return fmt.Errorf("failed to set port ID: %w", err)
	}

	r.logger.Infow("port created successfully", "id", model.ID, "kind", model.Kind)
	return nil
}

// GetByID retrieves a port by its ID.
func (r *PortRepositoryImpl) GetByID(ctx context.Context, id uint) (*topology.Port, error) {
	var model models.PortModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get port by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get port: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByDevice returns all ports on a device ordered by name.
func (r *PortRepositoryImpl) ListByDevice(ctx context.Context, deviceID uint) ([]*topology.Port, error) {
	var portModels []*models.PortModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("device_id = ?", deviceID).Order("name ASC").Find(&portModels).Error
	if err != nil {
		r.logger.Errorw("failed to list ports by device", "device_id", deviceID, "error", err)
		return nil, fmt.Errorf("failed to list ports: %w", err)
	}

	return r.mapper.ToEntities(portModels)
}

// Delete removes a port.
func (r *PortRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.PortModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete port", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete port: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return topology.ErrPortNotFound
	}

	r.logger.Infow("port deleted successfully", "id", id)
	return nil
}
