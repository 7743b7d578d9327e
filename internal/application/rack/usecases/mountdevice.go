package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/rack/dto"
	"patchbay/internal/domain/rack"
	vo "patchbay/internal/domain/rack/valueobjects"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// MountDeviceCommand represents the input for creating a device. RackID 0
// stores the device unracked at the site.
type MountDeviceCommand struct {
	Name      string
	SiteID    uint
	RackID    uint
	Position  int
	Height    int
	Face      string
	FullDepth bool
	Tags      []string
}

// MountDeviceUseCase handles device creation. Mounting checks the device
// footprint against the rack's free units before persisting, so an overlap
// is rejected up front instead of surfacing later as an elevation fault.
type MountDeviceUseCase struct {
	deviceRepo rack.DeviceRepository
	rackRepo   rack.Repository
	siteRepo   rack.SiteRepository
	logger     logger.Interface
}

// NewMountDeviceUseCase creates a new MountDeviceUseCase.
func NewMountDeviceUseCase(
	deviceRepo rack.DeviceRepository,
	rackRepo rack.Repository,
	siteRepo rack.SiteRepository,
	logger logger.Interface,
) *MountDeviceUseCase {
	return &MountDeviceUseCase{
		deviceRepo: deviceRepo,
		rackRepo:   rackRepo,
		siteRepo:   siteRepo,
		logger:     logger,
	}
}

// Execute creates a device, mounted or unracked.
func (uc *MountDeviceUseCase) Execute(ctx context.Context, cmd MountDeviceCommand) (*dto.DeviceDTO, error) {
	uc.logger.Infow("executing mount device use case",
		"name", cmd.Name, "rack_id", cmd.RackID, "position", cmd.Position)

	site, err := uc.siteRepo.GetByID(ctx, cmd.SiteID)
	if err != nil {
		uc.logger.Errorw("failed to get site", "id", cmd.SiteID, "error", err)
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	if site == nil {
		return nil, apperrors.NewNotFoundError("site", fmt.Sprintf("%d", cmd.SiteID))
	}

	device, err := rack.NewDevice(cmd.Name, cmd.SiteID, cmd.RackID, cmd.Position, cmd.Height, vo.Face(cmd.Face), cmd.FullDepth, cmd.Tags)
	if err != nil {
		uc.logger.Errorw("failed to create device entity", "error", err)
		return nil, apperrors.NewValidationError("invalid device", err.Error())
	}

	if device.IsRacked() {
		if err := uc.checkFootprint(ctx, device); err != nil {
			return nil, err
		}
	}

	if err := uc.deviceRepo.Create(ctx, device); err != nil {
		uc.logger.Errorw("failed to persist device", "error", err)
		return nil, fmt.Errorf("failed to save device: %w", err)
	}

	uc.logger.Infow("device created", "id", device.ID(), "name", cmd.Name, "racked", device.IsRacked())
	return dto.ToDeviceDTO(device), nil
}

// checkFootprint verifies the device fits the rack and collides with nothing
// already mounted on its face.
func (uc *MountDeviceUseCase) checkFootprint(ctx context.Context, device *rack.Device) error {
	r, err := uc.rackRepo.GetByID(ctx, device.RackID())
	if err != nil {
		uc.logger.Errorw("failed to get rack", "id", device.RackID(), "error", err)
		return fmt.Errorf("failed to get rack: %w", err)
	}
	if r == nil {
		return apperrors.NewNotFoundError("rack", fmt.Sprintf("%d", device.RackID()))
	}

	if !r.Contains(device.Position()) || !r.Contains(device.TopUnit()) {
		return apperrors.NewValidationError("device footprint outside rack unit range",
			fmt.Sprintf("units %d..%d of 1..%d", device.Position(), device.TopUnit(), r.UHeight()))
	}

	existing, err := uc.deviceRepo.ListByRack(ctx, device.RackID())
	if err != nil {
		uc.logger.Errorw("failed to list rack devices", "rack_id", device.RackID(), "error", err)
		return fmt.Errorf("failed to list rack devices: %w", err)
	}

	mounted := make([]rack.MountedDevice, 0, len(existing)+1)
	for _, d := range existing {
		if d.IsRacked() {
			mounted = append(mounted, d.Mounted())
		}
	}
	mounted = append(mounted, device.Mounted())

	// Building both faces surfaces any collision with the new footprint,
	// full-depth devices included.
	for _, face := range []vo.Face{vo.FaceFront, vo.FaceRear} {
		if _, err := rack.BuildElevation(r, face, mounted, nil); err != nil {
			uc.logger.Warnw("device footprint collides", "rack_id", device.RackID(), "error", err)
			return apperrors.NewConflictError("device footprint overlaps a mounted device", err.Error())
		}
	}
	return nil
}
