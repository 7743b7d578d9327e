package topology

import (
	"context"

	vo "patchbay/internal/domain/topology/valueobjects"
)

// TraceOptions controls a single trace invocation.
type TraceOptions struct {
	// FollowCircuits makes circuit terminations pass the trace through to
	// the paired side. When false a circuit termination is always a dead
	// end, even if the pair is known.
	FollowCircuits bool
}

// Tracer computes complete end-to-end cable paths. It is a pure computation
// over the reader's snapshot: no internal I/O beyond reader calls, no state
// shared between invocations, so concurrent traces are independent.
type Tracer struct {
	resolver *LinkResolver
}

// NewTracer creates a tracer over a topology reader.
func NewTracer(reader Reader) *Tracer {
	return &Tracer{resolver: NewLinkResolver(reader)}
}

// branch is one partial path on the frontier. The visited set and the
// rear-port position stack are strictly branch-local: sibling branches from
// a fan-out carry independent copies, so a cycle in one sub-path never
// suppresses another.
type branch struct {
	at         Termination
	arrivedVia *Cable
	hops       []Hop
	visited    map[TerminationKey]struct{}
	positions  []int
}

// Trace follows the cable chain from start and returns every completed
// branch path. Normally there is exactly one; rear-port fan-out produces
// one per position, ordered by the position expansion order. The visited-set
// cycle guard bounds the work to the cable segments reachable from start,
// so a trace terminates even on malformed cyclic data.
func (tr *Tracer) Trace(ctx context.Context, start Termination, opts TraceOptions) ([]Path, error) {
	if _, err := Classify(start); err != nil {
		return nil, err
	}

	frontier := []branch{{
		at:      start,
		visited: make(map[TerminationKey]struct{}),
	}}
	var paths []Path

	// Depth-first: each branch runs to completion before the next sibling
	// starts, so the returned paths stay ordered by position expansion
	// order even when branches have different depths.
	for len(frontier) > 0 {
		b := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if _, seen := b.visited[b.at.Key()]; seen {
			paths = append(paths, Path{Hops: b.hops, CycleDetected: true})
			continue
		}
		b.visited[b.at.Key()] = struct{}{}

		kind, err := Classify(b.at)
		if err != nil {
			return nil, err
		}

		// A cable continuation always wins over pass-through. The cable
		// the branch arrived on is excluded: cables are undirected and
		// the far end's own cable lookup would find it again.
		cable, far, err := tr.resolver.ResolveCable(ctx, b.at, b.arrivedVia)
		if err != nil {
			return nil, err
		}
		if cable != nil {
			frontier = append(frontier, branch{
				at:         *far,
				arrivedVia: cable,
				hops:       appendHop(b.hops, Hop{Near: b.at, Cable: cable, Far: far}),
				visited:    b.visited,
				positions:  b.positions,
			})
			continue
		}

		next, fanned, err := tr.passThrough(ctx, b, kind, opts)
		if err != nil {
			return nil, err
		}
		if len(fanned) > 0 {
			frontier = append(frontier, fanned...)
			continue
		}
		if next != nil {
			frontier = append(frontier, *next)
			continue
		}

		// Terminal. Arrival by cable at a non-pass-through kind is a
		// resolved endpoint; everything else ends unresolved with a
		// dead-end hop.
		if b.arrivedVia != nil && !kind.IsPassThrough() {
			paths = append(paths, Path{Hops: b.hops})
			continue
		}
		paths = append(paths, deadEnd(b))
	}

	return paths, nil
}

// passThrough computes the transparent continuation of a branch whose
// current termination has no cable to follow. It returns either a single
// next branch, a fanned-out set of sibling branches, or neither (dead end).
func (tr *Tracer) passThrough(ctx context.Context, b branch, kind vo.TerminationKind, opts TraceOptions) (*branch, []branch, error) {
	switch kind {
	case vo.KindFrontPort:
		link, err := tr.resolver.ResolveFrontPort(ctx, b.at)
		if err != nil {
			return nil, nil, err
		}
		if reflects(b, link.Termination) {
			return nil, nil, nil
		}
		target := link.Termination
		nb := branch{
			at:        target,
			hops:      appendHop(b.hops, Hop{Near: b.at, Far: &target}),
			visited:   b.visited,
			positions: pushPosition(b.positions, link.Position),
		}
		return &nb, nil, nil

	case vo.KindRearPort:
		_, fronts, err := tr.resolver.ExpandRearPort(ctx, b.at)
		if err != nil {
			return nil, nil, err
		}
		if len(fronts) == 0 {
			return nil, nil, nil
		}

		if len(b.positions) > 0 {
			// The branch entered the panel through a front port
			// earlier: continue on the matching position only.
			pos := b.positions[len(b.positions)-1]
			for _, link := range fronts {
				if link.Position != pos {
					continue
				}
				if reflects(b, link.Termination) {
					return nil, nil, nil
				}
				target := link.Termination
				nb := branch{
					at:        target,
					hops:      appendHop(b.hops, Hop{Near: b.at, Far: &target}),
					visited:   b.visited,
					positions: b.positions[:len(b.positions)-1],
				}
				return &nb, nil, nil
			}
			return nil, nil, nil
		}

		// No position context: every mapped position becomes an
		// independent sub-path. Siblings are returned in reverse so the
		// stack pops them in position order.
		siblings := make([]branch, 0, len(fronts))
		for i := len(fronts) - 1; i >= 0; i-- {
			target := fronts[i].Termination
			siblings = append(siblings, branch{
				at:        target,
				hops:      appendHop(b.hops, Hop{Near: b.at, Far: &target}),
				visited:   cloneVisited(b.visited),
				positions: clonePositions(b.positions),
			})
		}
		return nil, siblings, nil

	case vo.KindCircuitTermination:
		if !opts.FollowCircuits {
			return nil, nil, nil
		}
		pair, err := tr.resolver.ResolveCircuitPair(ctx, b.at)
		if err != nil {
			return nil, nil, err
		}
		if pair == nil || reflects(b, *pair) {
			return nil, nil, nil
		}
		target := *pair
		nb := branch{
			at:        target,
			hops:      appendHop(b.hops, Hop{Near: b.at, Far: &target}),
			visited:   b.visited,
			positions: b.positions,
		}
		return &nb, nil, nil

	default:
		return nil, nil, nil
	}
}

// reflects reports whether a pass-through continuation would immediately
// bounce back to the termination the previous hop came from, e.g. an
// uncabled front port reached through its own rear port. That is a dead end,
// not a cycle.
func reflects(b branch, target Termination) bool {
	return len(b.hops) > 0 && b.hops[len(b.hops)-1].Near.Same(target)
}

func deadEnd(b branch) Path {
	return Path{Hops: appendHop(b.hops, Hop{Near: b.at})}
}

// appendHop copies before appending so sibling branches never share a
// backing array.
func appendHop(hops []Hop, hop Hop) []Hop {
	out := make([]Hop, len(hops), len(hops)+1)
	copy(out, hops)
	return append(out, hop)
}

func pushPosition(stack []int, position int) []int {
	out := make([]int, len(stack), len(stack)+1)
	copy(out, stack)
	return append(out, position)
}

func cloneVisited(visited map[TerminationKey]struct{}) map[TerminationKey]struct{} {
	out := make(map[TerminationKey]struct{}, len(visited))
	for k := range visited {
		out[k] = struct{}{}
	}
	return out
}

func clonePositions(stack []int) []int {
	out := make([]int, len(stack))
	copy(out, stack)
	return out
}
