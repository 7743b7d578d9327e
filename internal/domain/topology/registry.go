package topology

import (
	vo "patchbay/internal/domain/topology/valueobjects"
)

// Capabilities describes what the trace engine may do with a termination
// kind.
type Capabilities struct {
	// PassThrough kinds can forward a trace through themselves without
	// consuming a cable hop.
	PassThrough bool

	// FanOut kinds may branch one incoming path into multiple sub-paths.
	// Whether a concrete rear port actually fans out depends on its
	// positions count.
	FanOut bool
}

// Classify validates a termination reference and returns its kind. An
// unclassifiable reference is a programmer error on the caller's side.
func Classify(t Termination) (vo.TerminationKind, error) {
	if !t.Kind.IsValid() {
		return "", &UnsupportedTerminationKindError{Termination: t}
	}
	if t.ID == 0 {
		return "", &UnsupportedTerminationKindError{Termination: t}
	}
	return t.Kind, nil
}

// CapabilitiesFor returns the capability set of a termination kind.
func CapabilitiesFor(kind vo.TerminationKind) Capabilities {
	return Capabilities{
		PassThrough: kind.IsPassThrough(),
		FanOut:      kind.CanFanOut(),
	}
}
