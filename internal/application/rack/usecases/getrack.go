package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/rack/dto"
	"patchbay/internal/domain/rack"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// GetRackQuery represents the input for getting a rack.
type GetRackQuery struct {
	ID uint
}

// GetRackUseCase handles getting a single rack.
type GetRackUseCase struct {
	rackRepo rack.Repository
	logger   logger.Interface
}

// NewGetRackUseCase creates a new GetRackUseCase.
func NewGetRackUseCase(rackRepo rack.Repository, logger logger.Interface) *GetRackUseCase {
	return &GetRackUseCase{
		rackRepo: rackRepo,
		logger:   logger,
	}
}

// Execute retrieves a rack by ID.
func (uc *GetRackUseCase) Execute(ctx context.Context, query GetRackQuery) (*dto.RackDTO, error) {
	if query.ID == 0 {
		return nil, apperrors.NewValidationError("rack ID is required")
	}

	r, err := uc.rackRepo.GetByID(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to get rack", "id", query.ID, "error", err)
		return nil, fmt.Errorf("failed to get rack: %w", err)
	}
	if r == nil {
		return nil, apperrors.NewNotFoundError("rack", fmt.Sprintf("%d", query.ID))
	}

	return dto.ToRackDTO(r), nil
}
