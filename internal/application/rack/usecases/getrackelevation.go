// Package usecases implements the application operations of the rack
// context: racks, devices, sites, reservations, and elevation rendering.
package usecases

import (
	"context"
	"errors"
	"fmt"

	"patchbay/internal/application/rack/dto"
	"patchbay/internal/domain/rack"
	vo "patchbay/internal/domain/rack/valueobjects"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// GetRackElevationQuery represents the input for rendering a rack elevation.
type GetRackElevationQuery struct {
	RackID    uint
	Face      string
	Summarize bool
}

// GetRackElevationUseCase renders the elevation of one rack face.
type GetRackElevationUseCase struct {
	rackRepo        rack.Repository
	deviceRepo      rack.DeviceRepository
	reservationRepo rack.ReservationRepository
	logger          logger.Interface
}

// NewGetRackElevationUseCase creates a new GetRackElevationUseCase.
func NewGetRackElevationUseCase(
	rackRepo rack.Repository,
	deviceRepo rack.DeviceRepository,
	reservationRepo rack.ReservationRepository,
	logger logger.Interface,
) *GetRackElevationUseCase {
	return &GetRackElevationUseCase{
		rackRepo:        rackRepo,
		deviceRepo:      deviceRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute renders the elevation. An overlap in the stored inventory is
// reported as a conflict; it is a data fault the caller must resolve, never
// something the renderer papers over.
func (uc *GetRackElevationUseCase) Execute(ctx context.Context, query GetRackElevationQuery) ([]dto.UnitSlotDTO, error) {
	uc.logger.Infow("executing get rack elevation use case",
		"rack_id", query.RackID, "face", query.Face)

	if query.RackID == 0 {
		return nil, apperrors.NewValidationError("rack ID is required")
	}
	face := vo.Face(query.Face)
	if query.Face == "" {
		face = vo.FaceFront
	}
	if !face.IsValid() {
		return nil, apperrors.NewValidationError("invalid rack face", query.Face)
	}

	r, devices, reservations, err := uc.load(ctx, query.RackID)
	if err != nil {
		return nil, err
	}

	mounted := make([]rack.MountedDevice, 0, len(devices))
	for _, d := range devices {
		if d.IsRacked() {
			mounted = append(mounted, d.Mounted())
		}
	}

	slots, err := rack.BuildElevation(r, face, mounted, reservations)
	if err != nil {
		var fault *rack.OverlapFault
		if errors.As(err, &fault) {
			uc.logger.Errorw("rack elevation hit overlapping devices",
				"rack_id", fault.RackID, "unit", fault.Unit,
				"device_id", fault.DeviceID, "other_device_id", fault.OtherDeviceID)
			return nil, apperrors.NewConflictError("overlapping devices in rack", fault.Error())
		}
		var rangeErr *rack.UnitRangeError
		if errors.As(err, &rangeErr) {
			uc.logger.Errorw("rack elevation hit out-of-range device",
				"rack_id", rangeErr.RackID, "device_id", rangeErr.DeviceID)
			return nil, apperrors.NewConflictError("device outside rack unit range", rangeErr.Error())
		}
		uc.logger.Errorw("failed to build rack elevation", "rack_id", query.RackID, "error", err)
		return nil, fmt.Errorf("failed to build rack elevation: %w", err)
	}

	if query.Summarize {
		slots = rack.Summarize(slots)
	}
	return dto.ToUnitSlotDTOs(slots), nil
}

func (uc *GetRackElevationUseCase) load(ctx context.Context, rackID uint) (*rack.Rack, []*rack.Device, []*rack.Reservation, error) {
	r, err := uc.rackRepo.GetByID(ctx, rackID)
	if err != nil {
		uc.logger.Errorw("failed to get rack", "id", rackID, "error", err)
		return nil, nil, nil, fmt.Errorf("failed to get rack: %w", err)
	}
	if r == nil {
		return nil, nil, nil, apperrors.NewNotFoundError("rack", fmt.Sprintf("%d", rackID))
	}

	devices, err := uc.deviceRepo.ListByRack(ctx, rackID)
	if err != nil {
		uc.logger.Errorw("failed to list rack devices", "rack_id", rackID, "error", err)
		return nil, nil, nil, fmt.Errorf("failed to list rack devices: %w", err)
	}

	reservations, err := uc.reservationRepo.ListByRack(ctx, rackID)
	if err != nil {
		uc.logger.Errorw("failed to list rack reservations", "rack_id", rackID, "error", err)
		return nil, nil, nil, fmt.Errorf("failed to list rack reservations: %w", err)
	}

	return r, devices, reservations, nil
}
