package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/rack/dto"
	"patchbay/internal/domain/rack"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// GetDeviceQuery represents the input for getting a device.
type GetDeviceQuery struct {
	ID uint
}

// GetDeviceUseCase handles getting a single device.
type GetDeviceUseCase struct {
	deviceRepo rack.DeviceRepository
	logger     logger.Interface
}

// NewGetDeviceUseCase creates a new GetDeviceUseCase.
func NewGetDeviceUseCase(deviceRepo rack.DeviceRepository, logger logger.Interface) *GetDeviceUseCase {
	return &GetDeviceUseCase{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// Execute retrieves a device by ID.
func (uc *GetDeviceUseCase) Execute(ctx context.Context, query GetDeviceQuery) (*dto.DeviceDTO, error) {
	if query.ID == 0 {
		return nil, apperrors.NewValidationError("device ID is required")
	}

	d, err := uc.deviceRepo.GetByID(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to get device", "id", query.ID, "error", err)
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	if d == nil {
		return nil, apperrors.NewNotFoundError("device", fmt.Sprintf("%d", query.ID))
	}

	return dto.ToDeviceDTO(d), nil
}
