package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/rack/dto"
	"patchbay/internal/domain/rack"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// ListDevicesQuery represents the input for listing the devices of a rack.
type ListDevicesQuery struct {
	RackID uint
}

// ListDevicesResult represents the output of listing devices.
type ListDevicesResult struct {
	Devices []dto.DeviceDTO `json:"devices"`
}

// ListDevicesUseCase handles listing the devices mounted in a rack.
type ListDevicesUseCase struct {
	rackRepo   rack.Repository
	deviceRepo rack.DeviceRepository
	logger     logger.Interface
}

// NewListDevicesUseCase creates a new ListDevicesUseCase.
func NewListDevicesUseCase(rackRepo rack.Repository, deviceRepo rack.DeviceRepository, logger logger.Interface) *ListDevicesUseCase {
	return &ListDevicesUseCase{
		rackRepo:   rackRepo,
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// Execute lists the devices of a rack ordered by position.
func (uc *ListDevicesUseCase) Execute(ctx context.Context, query ListDevicesQuery) (*ListDevicesResult, error) {
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

	result := &ListDevicesResult{Devices: make([]dto.DeviceDTO, 0, len(devices))}
	for _, d := range devices {
		result.Devices = append(result.Devices, *dto.ToDeviceDTO(d))
	}
	return result, nil
}
