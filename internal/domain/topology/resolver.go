package topology

import (
	"context"
	"fmt"

	vo "patchbay/internal/domain/topology/valueobjects"
)

// LinkResolver answers "given one termination, what comes next": the
// connected cable with its opposite end, or the pass-through expansion for
// front/rear port pairs and circuit terminations. It is stateless; every
// call goes back to the reader.
type LinkResolver struct {
	reader Reader
}

// NewLinkResolver creates a link resolver over a topology reader.
func NewLinkResolver(reader Reader) *LinkResolver {
	return &LinkResolver{reader: reader}
}

// ResolveCable returns the connected cable at t and the termination on its
// far side. It returns (nil, nil, nil) when t has no cable, when the cable's
// status is not connected, or when the only cable is exclude (the cable the
// trace arrived on: a cable is undirected, so looking it up again at the
// far end would walk straight back).
func (r *LinkResolver) ResolveCable(ctx context.Context, t Termination, exclude *Cable) (*Cable, *Termination, error) {
	if _, err := Classify(t); err != nil {
		return nil, nil, err
	}

	cable, err := r.reader.CableFor(ctx, t)
	if err != nil {
		return nil, nil, fmt.Errorf("cable lookup for %s: %w", t, err)
	}
	if cable == nil {
		return nil, nil, nil
	}
	if exclude != nil && cable.ID() == exclude.ID() {
		return nil, nil, nil
	}
	if !cable.Status().IsConnected() {
		return nil, nil, nil
	}

	far, err := r.reader.OppositeEnd(ctx, cable, t)
	if err != nil {
		return nil, nil, fmt.Errorf("opposite end of cable %d from %s: %w", cable.ID(), t, err)
	}
	return cable, &far, nil
}

// ExpandRearPort expands a rear port into its associated front ports, each
// carrying a position index, ordered by position. The expansion happens
// before any cable lookup: cables attach to front ports, not to rear-port
// positions. Every mapping is validated against the declared positions
// count.
func (r *LinkResolver) ExpandRearPort(ctx context.Context, rear Termination) (int, []FrontPortLink, error) {
	if rear.Kind != vo.KindRearPort {
		return 0, nil, &UnsupportedTerminationKindError{Termination: rear}
	}

	positions, err := r.reader.RearPortPositions(ctx, rear.ID)
	if err != nil {
		return 0, nil, fmt.Errorf("positions of rear port %d: %w", rear.ID, err)
	}

	fronts, err := r.reader.FrontPortsForRear(ctx, rear.ID)
	if err != nil {
		return 0, nil, fmt.Errorf("front ports of rear port %d: %w", rear.ID, err)
	}

	for _, link := range fronts {
		if link.Position < 1 || link.Position > positions {
			return 0, nil, &MalformedPatchMappingError{
				RearPortID:  rear.ID,
				FrontPortID: link.Termination.ID,
				Position:    link.Position,
				Positions:   positions,
			}
		}
	}

	return positions, fronts, nil
}

// ResolveFrontPort maps a front port to its single rear-port position and
// returns the rear port as the next node. The position index is validated
// against the rear port's declared positions count.
func (r *LinkResolver) ResolveFrontPort(ctx context.Context, front Termination) (RearPortLink, error) {
	if front.Kind != vo.KindFrontPort {
		return RearPortLink{}, &UnsupportedTerminationKindError{Termination: front}
	}

	link, err := r.reader.FrontPortRear(ctx, front.ID)
	if err != nil {
		return RearPortLink{}, fmt.Errorf("rear port of front port %d: %w", front.ID, err)
	}

	positions, err := r.reader.RearPortPositions(ctx, link.Termination.ID)
	if err != nil {
		return RearPortLink{}, fmt.Errorf("positions of rear port %d: %w", link.Termination.ID, err)
	}
	if link.Position < 1 || link.Position > positions {
		return RearPortLink{}, &MalformedPatchMappingError{
			RearPortID:  link.Termination.ID,
			FrontPortID: front.ID,
			Position:    link.Position,
			Positions:   positions,
		}
	}

	return link, nil
}

// ResolveCircuitPair returns the termination on the opposite side of the
// circuit, or nil when the circuit has only one side recorded and is
// therefore a dead end.
func (r *LinkResolver) ResolveCircuitPair(ctx context.Context, ct Termination) (*Termination, error) {
	if ct.Kind != vo.KindCircuitTermination {
		return nil, &UnsupportedTerminationKindError{Termination: ct}
	}

	pair, err := r.reader.CircuitPair(ctx, ct.ID)
	if err != nil {
		return nil, fmt.Errorf("circuit pair of termination %d: %w", ct.ID, err)
	}
	return pair, nil
}
