package usecases

import (
	"context"
	"errors"
	"fmt"

	"patchbay/internal/application/topology/dto"
	"patchbay/internal/domain/topology"
	vo "patchbay/internal/domain/topology/valueobjects"
	apperrors "patchbay/internal/shared/errors"
	"patchbay/internal/shared/logger"
)

// CreatePortCommand represents the input for creating a port. Positions is
// meaningful for rear ports, RearPortID/RearPortPosition for front ports.
type CreatePortCommand struct {
	DeviceID         uint
	Name             string
	Kind             string
	Positions        int
	RearPortID       uint
	RearPortPosition int
}

// CreatePortUseCase handles port creation, including the patch-mapping
// validation of front ports against their rear port.
type CreatePortUseCase struct {
	portRepo topology.PortRepository
	logger   logger.Interface
}

// NewCreatePortUseCase creates a new CreatePortUseCase.
func NewCreatePortUseCase(portRepo topology.PortRepository, logger logger.Interface) *CreatePortUseCase {
	return &CreatePortUseCase{
		portRepo: portRepo,
		logger:   logger,
	}
}

// Execute creates a new port.
func (uc *CreatePortUseCase) Execute(ctx context.Context, cmd CreatePortCommand) (*dto.PortDTO, error) {
	uc.logger.Infow("executing create port use case",
		"device_id", cmd.DeviceID, "name", cmd.Name, "kind", cmd.Kind)

	kind := vo.TerminationKind(cmd.Kind)

	var (
		port *topology.Port
		err  error
	)
	switch kind {
	case vo.KindRearPort:
		port, err = topology.NewRearPort(cmd.DeviceID, cmd.Name, cmd.Positions)
	case vo.KindFrontPort:
		port, err = uc.buildFrontPort(ctx, cmd)
	default:
		port, err = topology.NewPort(cmd.DeviceID, cmd.Name, kind)
	}
	if err != nil {
		var malformed *topology.MalformedPatchMappingError
		if errors.As(err, &malformed) {
			uc.logger.Warnw("malformed patch mapping rejected",
				"rear_port_id", malformed.RearPortID, "position", malformed.Position, "positions", malformed.Positions)
			return nil, apperrors.NewUnprocessableError("malformed patch mapping", malformed.Error())
		}
		uc.logger.Errorw("failed to create port entity", "error", err)
		return nil, apperrors.NewValidationError("invalid port", err.Error())
	}

	if err := uc.portRepo.Create(ctx, port); err != nil {
		uc.logger.Errorw("failed to persist port", "error", err)
		return nil, fmt.Errorf("failed to save port: %w", err)
	}

	uc.logger.Infow("port created", "id", port.ID(), "kind", cmd.Kind)
	return dto.ToPortDTO(port), nil
}

// buildFrontPort creates a front port and validates its position against the
// paired rear port before anything is persisted.
func (uc *CreatePortUseCase) buildFrontPort(ctx context.Context, cmd CreatePortCommand) (*topology.Port, error) {
	front, err := topology.NewFrontPort(cmd.DeviceID, cmd.Name, cmd.RearPortID, cmd.RearPortPosition)
	if err != nil {
		return nil, err
	}

	rear, err := uc.portRepo.GetByID(ctx, cmd.RearPortID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rear port: %w", err)
	}
	if rear == nil {
		return nil, fmt.Errorf("rear port %d: %w", cmd.RearPortID, topology.ErrPortNotFound)
	}

	if err := front.ValidateMapping(rear); err != nil {
		return nil, err
	}
	return front, nil
}
