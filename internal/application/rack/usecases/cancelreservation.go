package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/domain/rack"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// CancelReservationCommand represents the input for cancelling a rack
// reservation.
type CancelReservationCommand struct {
	ID uint
}

// CancelReservationUseCase handles reservation cancellation.
type CancelReservationUseCase struct {
	reservationRepo rack.ReservationRepository
	logger          logger.Interface
}

// NewCancelReservationUseCase creates a new CancelReservationUseCase.
func NewCancelReservationUseCase(reservationRepo rack.ReservationRepository, logger logger.Interface) *CancelReservationUseCase {
	return &CancelReservationUseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute cancels a reservation.
func (uc *CancelReservationUseCase) Execute(ctx context.Context, cmd CancelReservationCommand) error {
	uc.logger.Infow("executing cancel reservation use case", "id", cmd.ID)

	if cmd.ID == 0 {
		return apperrors.NewValidationError("reservation ID is required")
	}

	reservation, err := uc.reservationRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get reservation", "id", cmd.ID, "error", err)
		return fmt.Errorf("failed to get reservation: %w", err)
	}
	if reservation == nil {
		return apperrors.NewNotFoundError("rack reservation", fmt.Sprintf("%d", cmd.ID))
	}

	if err := uc.reservationRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete reservation", "id", cmd.ID, "error", err)
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	uc.logger.Infow("reservation cancelled", "id", cmd.ID)
	return nil
}
