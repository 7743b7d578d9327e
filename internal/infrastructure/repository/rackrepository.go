package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"patchbay/internal/domain/rack"
	"patchbay/internal/infrastructure/persistence/mappers"
	"patchbay/internal/infrastructure/persistence/models"
	"patchbay/internal/shared/db"
	"patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// RackRepositoryImpl implements the rack.Repository interface.
type RackRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RackMapper
	logger logger.Interface
}

// NewRackRepository creates a new rack repository instance.
func NewRackRepository(db *gorm.DB, logger logger.Interface) rack.Repository {
	return &RackRepositoryImpl{
		db:     db,
		mapper: mappers.NewRackMapper(),
		logger: logger,
	}
}

// Create creates a new rack in the database.
func (r *RackRepositoryImpl) Create(ctx context.Context, entity *rack.Rack) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map rack entity to model", "error", err)
		return fmt.Errorf("failed to map rack entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return errors.NewConflictError("rack name already in use at site")
		}
		r.logger.Errorw("failed to create rack in database", "error", err)
		return fmt.Errorf("failed to create rack: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set rack ID", "error", err)
		return fmt.Errorf("failed to set rack ID: %w", err)
	}

	r.logger.Infow("rack created successfully", "id", model.ID, "name", model.Name)
	return nil
}

// GetByID retrieves a rack by its ID.
func (r *RackRepositoryImpl) GetByID(ctx context.Context, id uint) (*rack.Rack, error) {
	var model models.RackModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get rack by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get rack: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListBySite returns the racks of one site ordered by name.
func (r *RackRepositoryImpl) ListBySite(ctx context.Context, siteID uint, offset, limit int) ([]*rack.Rack, int64, error) {
	return r.list(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("site_id = ?", siteID)
	}, offset, limit)
}

// List returns racks across all sites ordered by name.
func (r *RackRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*rack.Rack, int64, error) {
	return r.list(ctx, func(tx *gorm.DB) *gorm.DB { return tx }, offset, limit)
}

func (r *RackRepositoryImpl) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB, offset, limit int) ([]*rack.Rack, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := scope(tx.Model(&models.RackModel{})).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count racks", "error", err)
		return nil, 0, fmt.Errorf("failed to count racks: %w", err)
	}

	var rackModels []*models.RackModel
	err := scope(tx).Order("name ASC").Offset(offset).Limit(limit).Find(&rackModels).Error
	if err != nil {
		r.logger.Errorw("failed to list racks", "error", err)
		return nil, 0, fmt.Errorf("failed to list racks: %w", err)
	}

	entities, err := r.mapper.ToEntities(rackModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map racks: %w", err)
	}
	return entities, total, nil
}

// Update persists changes to a rack.
func (r *RackRepositoryImpl) Update(ctx context.Context, entity *rack.Rack) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map rack entity to model", "error", err)
		return fmt.Errorf("failed to map rack entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Save(model).Error; err != nil {
		r.logger.Errorw("failed to update rack", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update rack: %w", err)
	}

	r.logger.Infow("rack updated successfully", "id", model.ID)
	return nil
}

// Delete removes a rack.
func (r *RackRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.RackModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete rack", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete rack: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return rack.ErrRackNotFound
	}

	r.logger.Infow("rack deleted successfully", "id", id)
	return nil
}
