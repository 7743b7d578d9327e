package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/topology/dto"
	"patchbay/internal/domain/topology"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// CreateCircuitCommand represents the input for creating a circuit.
type CreateCircuitCommand struct {
	CID      string
	Provider string
}

// CreateCircuitUseCase handles circuit creation.
type CreateCircuitUseCase struct {
	circuitRepo topology.CircuitRepository
	logger      logger.Interface
}

// NewCreateCircuitUseCase creates a new CreateCircuitUseCase.
func NewCreateCircuitUseCase(circuitRepo topology.CircuitRepository, logger logger.Interface) *CreateCircuitUseCase {
	return &CreateCircuitUseCase{
		circuitRepo: circuitRepo,
		logger:      logger,
	}
}

// Execute creates a new circuit.
func (uc *CreateCircuitUseCase) Execute(ctx context.Context, cmd CreateCircuitCommand) (*dto.CircuitDTO, error) {
	uc.logger.Infow("executing create circuit use case", "cid", cmd.CID, "provider", cmd.Provider)

	circuit, err := topology.NewCircuit(cmd.CID, cmd.Provider)
	if err != nil {
		uc.logger.Errorw("failed to create circuit entity", "error", err)
		return nil, apperrors.NewValidationError("invalid circuit", err.Error())
	}

	if err := uc.circuitRepo.Create(ctx, circuit); err != nil {
		uc.logger.Errorw("failed to persist circuit", "error", err)
		return nil, fmt.Errorf("failed to save circuit: %w", err)
	}

	uc.logger.Infow("circuit created", "id", circuit.ID(), "cid", cmd.CID)
	return dto.ToCircuitDTO(circuit), nil
}
