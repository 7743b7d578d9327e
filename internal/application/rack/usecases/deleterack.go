package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/domain/rack"
	"patchbay/internal/shared/db"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// DeleteRackCommand represents the input for deleting a rack.
type DeleteRackCommand struct {
	ID uint
}

// DeleteRackUseCase handles rack deletion. A rack with mounted devices is
// not deletable; devices must be unracked first. Reservations on the rack
// are removed together with it.
type DeleteRackUseCase struct {
	rackRepo        rack.Repository
	deviceRepo      rack.DeviceRepository
	reservationRepo rack.ReservationRepository
	txManager       *db.TransactionManager
	logger          logger.Interface
}

// NewDeleteRackUseCase creates a new DeleteRackUseCase.
func NewDeleteRackUseCase(
	rackRepo rack.Repository,
	deviceRepo rack.DeviceRepository,
	reservationRepo rack.ReservationRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *DeleteRackUseCase {
	return &DeleteRackUseCase{
		rackRepo:        rackRepo,
		deviceRepo:      deviceRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute deletes a rack and its reservations in one transaction, so a
// device mounted concurrently cannot slip past the emptiness check.
func (uc *DeleteRackUseCase) Execute(ctx context.Context, cmd DeleteRackCommand) error {
	uc.logger.Infow("executing delete rack use case", "id", cmd.ID)

	if cmd.ID == 0 {
		return apperrors.NewValidationError("rack ID is required")
	}

	r, err := uc.rackRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get rack", "id", cmd.ID, "error", err)
		return fmt.Errorf("failed to get rack: %w", err)
	}
	if r == nil {
		return apperrors.NewNotFoundError("rack", fmt.Sprintf("%d", cmd.ID))
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		devices, err := uc.deviceRepo.ListByRack(txCtx, cmd.ID)
		if err != nil {
			return fmt.Errorf("failed to list rack devices: %w", err)
		}
		if len(devices) > 0 {
			uc.logger.Warnw("rack still has devices", "rack_id", cmd.ID, "devices", len(devices))
			return apperrors.NewConflictError("rack still has mounted devices", fmt.Sprintf("%d devices", len(devices)))
		}

		reservations, err := uc.reservationRepo.ListByRack(txCtx, cmd.ID)
		if err != nil {
			return fmt.Errorf("failed to list rack reservations: %w", err)
		}
		for _, reservation := range reservations {
			if err := uc.reservationRepo.Delete(txCtx, reservation.ID()); err != nil {
				return fmt.Errorf("failed to delete reservation %d: %w", reservation.ID(), err)
			}
		}

		return uc.rackRepo.Delete(txCtx, cmd.ID)
	})
	if err != nil {
		if _, ok := apperrors.IsAppError(err); ok {
			return err
		}
		uc.logger.Errorw("failed to delete rack", "id", cmd.ID, "error", err)
		return fmt.Errorf("failed to delete rack: %w", err)
	}

	uc.logger.Infow("rack deleted", "id", cmd.ID)
	return nil
}
