package usecases

import (
	"context"
	"fmt"

	"patchbay/internal/application/topology/dto"
	"patchbay/internal/domain/topology"
	vo "patchbay/internal/domain/topology/valueobjects"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// CableEnd identifies one end of a cable in a connect command.
type CableEnd struct {
	Kind  string
	ID    uint
	Label string
}

// ConnectCableCommand represents the input for connecting a cable.
type ConnectCableCommand struct {
	EndA       CableEnd
	EndB       CableEnd
	Status     string
	Label      string
	Length     float64
	LengthUnit string
	Tags       []string
}

// ConnectCableUseCase handles cable creation. A termination holds at most one
// cable, so connecting to an already-cabled termination is a conflict.
type ConnectCableUseCase struct {
	cableRepo topology.CableRepository
	logger    logger.Interface
}

// NewConnectCableUseCase creates a new ConnectCableUseCase.
func NewConnectCableUseCase(cableRepo topology.CableRepository, logger logger.Interface) *ConnectCableUseCase {
	return &ConnectCableUseCase{
		cableRepo: cableRepo,
		logger:    logger,
	}
}

// Execute connects a new cable between two terminations.
func (uc *ConnectCableUseCase) Execute(ctx context.Context, cmd ConnectCableCommand) (*dto.CableDTO, error) {
	uc.logger.Infow("executing connect cable use case",
		"end_a", fmt.Sprintf("%s:%d", cmd.EndA.Kind, cmd.EndA.ID),
		"end_b", fmt.Sprintf("%s:%d", cmd.EndB.Kind, cmd.EndB.ID))

	endA := topology.Termination{Kind: vo.TerminationKind(cmd.EndA.Kind), ID: cmd.EndA.ID, Label: cmd.EndA.Label}
	endB := topology.Termination{Kind: vo.TerminationKind(cmd.EndB.Kind), ID: cmd.EndB.ID, Label: cmd.EndB.Label}

	status := vo.CableStatus(cmd.Status)
	if cmd.Status == "" {
		status = vo.CableStatusConnected
	}

	for _, end := range []topology.Termination{endA, endB} {
		existing, err := uc.cableRepo.GetByTermination(ctx, end)
		if err != nil {
			uc.logger.Errorw("failed to check termination occupancy", "termination", end.String(), "error", err)
			return nil, fmt.Errorf("failed to check termination occupancy: %w", err)
		}
		if existing != nil {
			uc.logger.Warnw("termination already cabled", "termination", end.String(), "cable_id", existing.ID())
			return nil, apperrors.NewConflictError(topology.ErrTerminationInUse.Error(), end.String())
		}
	}

	cable, err := topology.NewCable(endA, endB, status, cmd.Label, cmd.Length, vo.LengthUnit(cmd.LengthUnit), cmd.Tags)
	if err != nil {
		uc.logger.Errorw("failed to create cable entity", "error", err)
		return nil, apperrors.NewValidationError("invalid cable", err.Error())
	}

	if err := uc.cableRepo.Create(ctx, cable); err != nil {
		uc.logger.Errorw("failed to persist cable", "error", err)
		return nil, fmt.Errorf("failed to save cable: %w", err)
	}

	uc.logger.Infow("cable connected", "id", cable.ID())
	return dto.ToCableDTO(cable), nil
}
