package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/domain/topology"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// DisconnectCableCommand represents the input for disconnecting a cable.
type DisconnectCableCommand struct {
	ID uint
}

// DisconnectCableUseCase handles cable removal.
type DisconnectCableUseCase struct {
	cableRepo topology.CableRepository
	logger    logger.Interface
}

// NewDisconnectCableUseCase creates a new DisconnectCableUseCase.
func NewDisconnectCableUseCase(cableRepo topology.CableRepository, logger logger.Interface) *DisconnectCableUseCase {
	return &DisconnectCableUseCase{
		cableRepo: cableRepo,
		logger:    logger,
	}
}

// Execute removes a cable, freeing both terminations.
func (uc *DisconnectCableUseCase) Execute(ctx context.Context, cmd DisconnectCableCommand) error {
	uc.logger.Infow("executing disconnect cable use case", "id", cmd.ID)

	if cmd.ID == 0 {
		return apperrors.NewValidationError("cable ID is required")
	}

	cable, err := uc.cableRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get cable", "id", cmd.ID, "error", err)
		return fmt.Errorf("failed to get cable: %w", err)
	}
	if cable == nil {
		return apperrors.NewNotFoundError("cable", fmt.Sprintf("%d", cmd.ID))
	}

	if err := uc.cableRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete cable", "id", cmd.ID, "error", err)
		return fmt.Errorf("failed to delete cable: %w", err)
	}

	uc.logger.Infow("cable disconnected", "id", cmd.ID)
	return nil
}
