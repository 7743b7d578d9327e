package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/topology/dto"
	"patchbay/internal/domain/topology"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// CreateCircuitTerminationCommand represents the input for attaching a
// termination to one side of a circuit.
type CreateCircuitTerminationCommand struct {
	CircuitID uint
	Side      string
	SiteID    uint
}

// CreateCircuitTerminationUseCase handles circuit termination creation. A
// circuit holds at most one termination per side.
type CreateCircuitTerminationUseCase struct {
	circuitRepo topology.CircuitRepository
	logger      logger.Interface
}

// NewCreateCircuitTerminationUseCase creates a new CreateCircuitTerminationUseCase.
func NewCreateCircuitTerminationUseCase(circuitRepo topology.CircuitRepository, logger logger.Interface) *CreateCircuitTerminationUseCase {
	return &CreateCircuitTerminationUseCase{
		circuitRepo: circuitRepo,
		logger:      logger,
	}
}

// Execute attaches a termination to a circuit side.
func (uc *CreateCircuitTerminationUseCase) Execute(ctx context.Context, cmd CreateCircuitTerminationCommand) (*dto.CircuitTerminationDTO, error) {
	uc.logger.Infow("executing create circuit termination use case",
		"circuit_id", cmd.CircuitID, "side", cmd.Side)

	circuit, err := uc.circuitRepo.GetByID(ctx, cmd.CircuitID)
	if err != nil {
		uc.logger.Errorw("failed to get circuit", "id", cmd.CircuitID, "error", err)
		return nil, fmt.Errorf("failed to get circuit: %w", err)
	}
	if circuit == nil {
		return nil, apperrors.NewNotFoundError("circuit", fmt.Sprintf("%d", cmd.CircuitID))
	}

	side := topology.CircuitSide(cmd.Side)
	ct, err := topology.NewCircuitTermination(cmd.CircuitID, side, cmd.SiteID)
	if err != nil {
		uc.logger.Errorw("failed to create circuit termination entity", "error", err)
		return nil, apperrors.NewValidationError("invalid circuit termination", err.Error())
	}

	existing, err := uc.circuitRepo.GetTerminations(ctx, cmd.CircuitID)
	if err != nil {
		uc.logger.Errorw("failed to list circuit terminations", "circuit_id", cmd.CircuitID, "error", err)
		return nil, fmt.Errorf("failed to list circuit terminations: %w", err)
	}
	for _, t := range existing {
		if t.Side() == side {
			uc.logger.Warnw("circuit side already terminated", "circuit_id", cmd.CircuitID, "side", cmd.Side)
			return nil, apperrors.NewConflictError("circuit side already has a termination", cmd.Side)
		}
	}

	if err := uc.circuitRepo.CreateTermination(ctx, ct); err != nil {
		uc.logger.Errorw("failed to persist circuit termination", "error", err)
		return nil, fmt.Errorf("failed to save circuit termination: %w", err)
	}

	uc.logger.Infow("circuit termination created", "id", ct.ID(), "circuit_id", cmd.CircuitID, "side", cmd.Side)
	return dto.ToCircuitTerminationDTO(ct), nil
}
