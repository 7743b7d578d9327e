package topology

// Hop is one segment of a traced path: (near termination, cable, far
// termination).
//
// Three shapes occur:
//   - cable hop: Cable and Far are both set;
//   - transparent pass-through hop (front/rear pairing, circuit pairing):
//     Cable is nil, Far is set; the leg consumed no cable but is still
//     recorded for auditability;
//   - dead end: Cable and Far are both nil; the path terminates
//     unresolved at Near.
type Hop struct {
	Near  Termination
	Cable *Cable
	Far   *Termination
}

// IsDeadEnd reports whether the hop marks an unresolved path end.
func (h Hop) IsDeadEnd() bool {
	return h.Cable == nil && h.Far == nil
}

// IsPassThrough reports whether the hop is a transparent pass-through leg.
func (h Hop) IsPassThrough() bool {
	return h.Cable == nil && h.Far != nil
}

// Path is one completed trace branch. Hops are ordered near-to-far in
// discovery order. Paths are computed fresh per trace call and never cached;
// physical topology has no invalidation story, so correctness wins over
// staleness risk.
type Path struct {
	Hops []Hop

	// CycleDetected marks a branch that was terminated because resolution
	// would have revisited a termination. It is a normal terminal state,
	// not an error.
	CycleDetected bool
}

// Endpoint returns the far termination of the last hop, or nil for an empty
// or dead-ended path.
func (p Path) Endpoint() *Termination {
	if len(p.Hops) == 0 {
		return nil
	}
	return p.Hops[len(p.Hops)-1].Far
}

// IsComplete reports whether the path reached a resolved endpoint: no dead
// end and no cycle.
func (p Path) IsComplete() bool {
	if p.CycleDetected || len(p.Hops) == 0 {
		return false
	}
	return !p.Hops[len(p.Hops)-1].IsDeadEnd()
}
