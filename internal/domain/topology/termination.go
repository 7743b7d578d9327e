// Package topology provides the physical-connectivity domain: terminations,
// cables, patch mappings, circuits, and the cable-path trace engine.
package topology

import (
	"fmt"

	vo "patchbay/internal/domain/topology/valueobjects"
)

// Termination is a polymorphic reference to exactly one physical connector.
// It is immutable once resolved within a trace; the backing store owns the
// connector's lifetime.
type Termination struct {
	Kind  vo.TerminationKind
	ID    uint
	Label string
}

// TerminationKey uniquely identifies a termination within a trace. It is the
// cycle-guard identity.
type TerminationKey struct {
	Kind vo.TerminationKind
	ID   uint
}

// Key returns the identity key for visited-set bookkeeping.
func (t Termination) Key() TerminationKey {
	return TerminationKey{Kind: t.Kind, ID: t.ID}
}

// Same reports whether two references point at the same connector.
func (t Termination) Same(other Termination) bool {
	return t.Kind == other.Kind && t.ID == other.ID
}

// String renders the reference for logs and error details.
func (t Termination) String() string {
	if t.Label != "" {
		return fmt.Sprintf("%s:%d (%s)", t.Kind, t.ID, t.Label)
	}
	return fmt.Sprintf("%s:%d", t.Kind, t.ID)
}
