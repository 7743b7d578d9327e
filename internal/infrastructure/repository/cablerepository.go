// Package repository provides gorm-backed implementations of the domain
// repository interfaces.
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

// CableRepositoryImpl implements the topology.CableRepository interface.
type CableRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CableMapper
	logger logger.Interface
}

// NewCableRepository creates a new cable repository instance.
func NewCableRepository(db *gorm.DB, logger logger.Interface) topology.CableRepository {
	return &CableRepositoryImpl{
		db:     db,
		mapper: mappers.NewCableMapper(),
		logger: logger,
	}
}

// Create creates a new cable in the database.
func (r *CableRepositoryImpl) Create(ctx context.Context, cable *topology.Cable) error {
	model, err := r.mapper.ToModel(cable)
	if err != nil {
		r.logger.Errorw("failed to map cable entity to model", "error", err)
		return fmt.Errorf("failed to map cable entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return errors.NewConflictError("termination already has a cable")
		}
		r.logger.Errorw("failed to create cable in database", "error", err)
		return fmt.Errorf("failed to create cable: %w", err)
	}

	if err := cable.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set cable ID", "error", err)
		return fmt.Errorf("failed to set cable ID: %w", err)
	}

	r.logger.Infow("cable created successfully", "id", model.ID)
	return nil
}

// GetByID retrieves a cable by its ID.
func (r *CableRepositoryImpl) GetByID(ctx context.Context, id uint) (*topology.Cable, error) {
	var model models.CableModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get cable by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get cable: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByTermination retrieves the cable attached to a termination, on either
// side, or nil when the termination is uncabled.
func (r *CableRepositoryImpl) GetByTermination(ctx context.Context, t topology.Termination) (*topology.Cable, error) {
	var model models.CableModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where(
		"(termination_a_kind = ? AND termination_a_id = ?) OR (termination_b_kind = ? AND termination_b_id = ?)",
		t.Kind.String(), t.ID, t.Kind.String(), t.ID,
	).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get cable by termination", "termination", t.String(), "error", err)
		return nil, fmt.Errorf("failed to get cable by termination: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Delete removes a cable, freeing both terminations.
func (r *CableRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.CableModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete cable", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete cable: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return topology.ErrCableNotFound
	}

	r.logger.Infow("cable deleted successfully", "id", id)
	return nil
}

// List returns cables ordered by normalized length, shortest first, with
// unmeasured cables (length 0) trailing.
func (r *CableRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*topology.Cable, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.CableModel{}).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count cables", "error", err)
		return nil, 0, fmt.Errorf("failed to count cables: %w", err)
	}

	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	var cableModels []*models.CableModel
	err := tx.
		Order("length_meters = 0, length_meters ASC, id ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&cableModels).Error
	if err != nil {
		r.logger.Errorw("failed to list cables", "error", err)
		return nil, 0, fmt.Errorf("failed to list cables: %w", err)
	}

	entities, err := r.mapper.ToEntities(cableModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map cables: %w", err)
	}
	return entities, total, nil
}
