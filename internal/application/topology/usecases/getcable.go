package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/topology/dto"
	"patchbay/internal/domain/topology"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// GetCableQuery represents the input for getting a cable.
type GetCableQuery struct {
	ID uint
}

// GetCableUseCase handles getting a single cable.
type GetCableUseCase struct {
	cableRepo topology.CableRepository
	logger    logger.Interface
}

// NewGetCableUseCase creates a new GetCableUseCase.
func NewGetCableUseCase(cableRepo topology.CableRepository, logger logger.Interface) *GetCableUseCase {
	return &GetCableUseCase{
		cableRepo: cableRepo,
		logger:    logger,
	}
}

// Execute retrieves a cable by ID.
func (uc *GetCableUseCase) Execute(ctx context.Context, query GetCableQuery) (*dto.CableDTO, error) {
	if query.ID == 0 {
		return nil, apperrors.NewValidationError("cable ID is required")
	}

	cable, err := uc.cableRepo.GetByID(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to get cable", "id", query.ID, "error", err)
		return nil, fmt.Errorf("failed to get cable: %w", err)
	}
	if cable == nil {
		return nil, apperrors.NewNotFoundError("cable", fmt.Sprintf("%d", query.ID))
	}

	return dto.ToCableDTO(cable), nil
}
