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

// CircuitRepositoryImpl implements the topology.CircuitRepository interface.
type CircuitRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CircuitMapper
	logger logger.Interface
}

// NewCircuitRepository creates a new circuit repository instance.
func NewCircuitRepository(db *gorm.DB, logger logger.Interface) topology.CircuitRepository {
	return &CircuitRepositoryImpl{
		db:     db,
		mapper: mappers.NewCircuitMapper(),
		logger: logger,
	}
}

// Create creates a new circuit in the database.
func (r *CircuitRepositoryImpl) Create(ctx context.Context, circuit *topology.Circuit) error {
	model, err := r.mapper.ToModel(circuit)
	if err != nil {
		r.logger.Errorw("failed to map circuit entity to model", "error", err)
		return fmt.Errorf("failed to map circuit entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return errors.NewConflictError("circuit ID already in use for provider")
		}
		r.logger.Errorw("failed to create circuit in database", "error", err)
		return fmt.Errorf("failed to create circuit: %w", err)
	}

	if err := circuit.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set circuit ID", "error", err)
		return fmt.Errorf("failed to set circuit ID: %w", err)
	}

	r.logger.Infow("circuit created successfully", "id", model.ID, "cid", model.CID)
	return nil
}

// GetByID retrieves a circuit by its ID.
func (r *CircuitRepositoryImpl) GetByID(ctx context.Context, id uint) (*topology.Circuit, error) {
	var model models.CircuitModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get circuit by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get circuit: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// CreateTermination creates a circuit termination in the database.
func (r *CircuitRepositoryImpl) CreateTermination(ctx context.Context, ct *topology.CircuitTermination) error {
	model, err := r.mapper.TerminationToModel(ct)
	if err != nil {
		r.logger.Errorw("failed to map circuit termination entity to model", "error", err)
		return fmt.Errorf("failed to map circuit termination entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return errors.NewConflictError("circuit side already has a termination")
		}
		r.logger.Errorw("failed to create circuit termination in database", "error", err)
		return fmt.Errorf("failed to create circuit termination: %w", err)
	}

	if err := ct.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set circuit termination ID", "error", err)
		return fmt.Errorf("failed to set circuit termination ID: %w", err)
	}

	r.logger.Infow("circuit termination created successfully",
		"id", model.ID, "circuit_id", model.CircuitID, "side", model.Side)
	return nil
}

// GetTerminations returns the recorded terminations of a circuit.
func (r *CircuitRepositoryImpl) GetTerminations(ctx context.Context, circuitID uint) ([]*topology.CircuitTermination, error) {
	var terminationModels []*models.CircuitTerminationModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("circuit_id = ?", circuitID).Order("side ASC").Find(&terminationModels).Error
	if err != nil {
		r.logger.Errorw("failed to list circuit terminations", "circuit_id", circuitID, "error", err)
		return nil, fmt.Errorf("failed to list circuit terminations: %w", err)
	}

	terminations := make([]*topology.CircuitTermination, 0, len(terminationModels))
	for _, model := range terminationModels {
		ct, err := r.mapper.TerminationToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map circuit termination: %w", err)
		}
		terminations = append(terminations, ct)
	}
	return terminations, nil
}
