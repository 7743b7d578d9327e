package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/rack/dto"
	"patchbay/internal/domain/rack"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// ReserveUnitsCommand represents the input for reserving rack units.
type ReserveUnitsCommand struct {
	RackID      uint
	Units       []int
	Owner       string
	Description string
}

// ReserveUnitsUseCase handles rack unit reservation. Reserved units may
// already be occupied; the reservation only flags them, it does not block
// mounting.
type ReserveUnitsUseCase struct {
	reservationRepo rack.ReservationRepository
	rackRepo        rack.Repository
	logger          logger.Interface
}

// NewReserveUnitsUseCase creates a new ReserveUnitsUseCase.
func NewReserveUnitsUseCase(
	reservationRepo rack.ReservationRepository,
	rackRepo rack.Repository,
	logger logger.Interface,
) *ReserveUnitsUseCase {
	return &ReserveUnitsUseCase{
		reservationRepo: reservationRepo,
		rackRepo:        rackRepo,
		logger:          logger,
	}
}

// Execute reserves units in a rack.
func (uc *ReserveUnitsUseCase) Execute(ctx context.Context, cmd ReserveUnitsCommand) (*dto.ReservationDTO, error) {
	uc.logger.Infow("executing reserve units use case",
		"rack_id", cmd.RackID, "units", cmd.Units, "owner", cmd.Owner)

	r, err := uc.rackRepo.GetByID(ctx, cmd.RackID)
	if err != nil {
		uc.logger.Errorw("failed to get rack", "id", cmd.RackID, "error", err)
		return nil, fmt.Errorf("failed to get rack: %w", err)
	}
	if r == nil {
		return nil, apperrors.NewNotFoundError("rack", fmt.Sprintf("%d", cmd.RackID))
	}

	for _, u := range cmd.Units {
		if !r.Contains(u) {
			return nil, apperrors.NewValidationError("reserved unit outside rack",
				fmt.Sprintf("unit %d of 1..%d", u, r.UHeight()))
		}
	}

	reservation, err := rack.NewReservation(cmd.RackID, cmd.Units, cmd.Owner, cmd.Description)
	if err != nil {
		uc.logger.Errorw("failed to create reservation entity", "error", err)
		return nil, apperrors.NewValidationError("invalid reservation", err.Error())
	}

	existing, err := uc.reservationRepo.ListByRack(ctx, cmd.RackID)
	if err != nil {
		uc.logger.Errorw("failed to list reservations", "rack_id", cmd.RackID, "error", err)
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	for _, other := range existing {
		for _, u := range cmd.Units {
			if other.Covers(u) {
				uc.logger.Warnw("unit already reserved", "rack_id", cmd.RackID, "unit", u, "reservation_id", other.ID())
				return nil, apperrors.NewConflictError("unit already reserved", fmt.Sprintf("unit %d", u))
			}
		}
	}

	if err := uc.reservationRepo.Create(ctx, reservation); err != nil {
		uc.logger.Errorw("failed to persist reservation", "error", err)
		return nil, fmt.Errorf("failed to save reservation: %w", err)
	}

	uc.logger.Infow("units reserved", "id", reservation.ID(), "rack_id", cmd.RackID)
	return dto.ToReservationDTO(reservation), nil
}
