// Package usecases implements the application operations of the topology
// context: tracing, cable management, ports, and circuits.
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

// TraceCablePathQuery represents the input for tracing a cable path.
type TraceCablePathQuery struct {
	Kind           string
	ID             uint
	FollowCircuits bool
}

// TraceCablePathUseCase runs the trace engine from one termination.
type TraceCablePathUseCase struct {
	reader topology.Reader
	logger logger.Interface
}

// NewTraceCablePathUseCase creates a new TraceCablePathUseCase.
func NewTraceCablePathUseCase(reader topology.Reader, logger logger.Interface) *TraceCablePathUseCase {
	return &TraceCablePathUseCase{
		reader: reader,
		logger: logger,
	}
}

// Execute traces every cable path reachable from the given termination.
func (uc *TraceCablePathUseCase) Execute(ctx context.Context, query TraceCablePathQuery) ([]dto.PathDTO, error) {
	uc.logger.Infow("executing trace cable path use case",
		"kind", query.Kind, "id", query.ID, "follow_circuits", query.FollowCircuits)

	start := topology.Termination{Kind: vo.TerminationKind(query.Kind), ID: query.ID}

	tracer := topology.NewTracer(uc.reader)
	paths, err := tracer.Trace(ctx, start, topology.TraceOptions{FollowCircuits: query.FollowCircuits})
	if err != nil {
		var unsupported *topology.UnsupportedTerminationKindError
		if errors.As(err, &unsupported) {
			uc.logger.Warnw("trace requested for unsupported termination", "kind", query.Kind, "id", query.ID)
			return nil, apperrors.NewBadRequestError("unsupported termination kind", unsupported.Error())
		}
		var malformed *topology.MalformedPatchMappingError
		if errors.As(err, &malformed) {
			uc.logger.Errorw("trace hit malformed patch mapping",
				"rear_port_id", malformed.RearPortID, "front_port_id", malformed.FrontPortID)
			return nil, apperrors.NewUnprocessableError("malformed patch mapping", malformed.Error())
		}
		uc.logger.Errorw("failed to trace cable path", "kind", query.Kind, "id", query.ID, "error", err)
		return nil, fmt.Errorf("failed to trace cable path: %w", err)
	}

	uc.logger.Infow("cable path traced", "kind", query.Kind, "id", query.ID, "paths", len(paths))
	return dto.ToPathDTOs(paths), nil
}
