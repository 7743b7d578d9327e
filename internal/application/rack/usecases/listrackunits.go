package usecases

import (
	"context"
	"errors"
	"fmt"

	"patchbay/internal/domain/rack"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// ListRackUnitsQuery represents the input for listing available rack units.
// ExcludeDeviceID makes a device's own footprint count as free, for
// validating a move within its current rack.
type ListRackUnitsQuery struct {
	RackID          uint
	ExcludeDeviceID uint
}

// ListRackUnitsResult represents the available units of a rack.
type ListRackUnitsResult struct {
	RackID  uint  `json:"rack_id"`
	UHeight int   `json:"u_height"`
	Units   []int `json:"units"`
}

// ListRackUnitsUseCase handles listing a rack's unoccupied units.
type ListRackUnitsUseCase struct {
	rackRepo   rack.Repository
	deviceRepo rack.DeviceRepository
	logger     logger.Interface
}

// NewListRackUnitsUseCase creates a new ListRackUnitsUseCase.
func NewListRackUnitsUseCase(rackRepo rack.Repository, deviceRepo rack.DeviceRepository, logger logger.Interface) *ListRackUnitsUseCase {
	return &ListRackUnitsUseCase{
		rackRepo:   rackRepo,
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// Execute lists the units with no device footprint on either face.
func (uc *ListRackUnitsUseCase) Execute(ctx context.Context, query ListRackUnitsQuery) (*ListRackUnitsResult, error) {
	if query.RackID == 0 {
		return nil, apperrors.NewValidationError("rack ID is required")
	}

	r, err := uc.rackRepo.GetByID(ctx, query.RackID)
	if err != nil {
		uc.logger.Errorw("failed to get rack", "id", query.RackID, "error", err)
		return nil, fmt.Errorf("failed to get rack: %w", err)
	}
	if r == nil {
		return nil, apperrors.NewNotFoundError("rack", fmt.Sprintf("%d", query.RackID))
	}

	devices, err := uc.deviceRepo.ListByRack(ctx, query.RackID)
	if err != nil {
		uc.logger.Errorw("failed to list rack devices", "rack_id", query.RackID, "error", err)
		return nil, fmt.Errorf("failed to list rack devices: %w", err)
	}

	mounted := make([]rack.MountedDevice, 0, len(devices))
	for _, d := range devices {
		if d.IsRacked() {
			mounted = append(mounted, d.Mounted())
		}
	}

	units, err := rack.AvailableUnits(r, mounted, query.ExcludeDeviceID)
	if err != nil {
		var rangeErr *rack.UnitRangeError
		if errors.As(err, &rangeErr) {
			return nil, apperrors.NewConflictError("device outside rack unit range", rangeErr.Error())
		}
		uc.logger.Errorw("failed to compute available units", "rack_id", query.RackID, "error", err)
		return nil, fmt.Errorf("failed to compute available units: %w", err)
	}

	return &ListRackUnitsResult{
		RackID:  r.ID(),
		UHeight: r.UHeight(),
		Units:   units,
	}, nil
}
