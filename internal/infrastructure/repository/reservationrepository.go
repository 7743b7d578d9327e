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

// ReservationRepositoryImpl implements the rack.ReservationRepository
// interface.
type ReservationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ReservationMapper
	logger logger.Interface
}

// NewReservationRepository creates a new reservation repository instance.
func NewReservationRepository(db *gorm.DB, logger logger.Interface) rack.ReservationRepository {
	return &ReservationRepositoryImpl{
		db:     db,
		mapper: mappers.NewReservationMapper(),
		logger: logger,
	}
}

// Create creates a new reservation in the database.
func (r *ReservationRepositoryImpl) Create(ctx context.Context, reservation *rack.Reservation) error {
	model, err := r.mapper.ToModel(reservation)
	if err != nil {
		r.logger.Errorw("failed to map reservation entity to model", "error", err)
		return fmt.Errorf("failed to map reservation entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create reservation in database", "error", err)
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	if err := reservation.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set reservation ID", "error", err)
		return fmt.Errorf("failed to set reservation ID: %w", err)
	}

	r.logger.Infow("reservation created successfully", "id", model.ID, "rack_id", model.RackID)
	return nil
}

// GetByID retrieves a reservation by its ID.
func (r *ReservationRepositoryImpl) GetByID(ctx context.Context, id uint) (*rack.Reservation, error) {
	var model models.RackReservationModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get reservation by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByRack returns the reservations of a rack.
func (r *ReservationRepositoryImpl) ListByRack(ctx context.Context, rackID uint) ([]*rack.Reservation, error) {
	var reservationModels []*models.RackReservationModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("rack_id = ?", rackID).Order("id ASC").Find(&reservationModels).Error
	if err != nil {
		r.logger.Errorw("failed to list reservations by rack", "rack_id", rackID, "error", err)
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	return r.mapper.ToEntities(reservationModels)
}

// Delete removes a reservation.
func (r *ReservationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.RackReservationModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete reservation", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return rack.ErrReservationNotFound
	}

	r.logger.Infow("reservation deleted successfully", "id", id)
	return nil
}
