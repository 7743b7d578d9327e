package topology

import (
	"errors"
	"fmt"
)

var (
	// ErrCableNotFound is returned when a cable is not found.
	ErrCableNotFound = errors.New("cable not found")

	// ErrPortNotFound is returned when a port is not found.
	ErrPortNotFound = errors.New("port not found")

	// ErrCircuitNotFound is returned when a circuit is not found.
	ErrCircuitNotFound = errors.New("circuit not found")

	// ErrTerminationInUse is returned when connecting a cable to a
	// termination that already holds one.
	ErrTerminationInUse = errors.New("termination already has a cable connected")
)

// UnsupportedTerminationKindError indicates the caller passed a reference the
// registry cannot classify. This is a programmer error, not a data fault.
type UnsupportedTerminationKindError struct {
	Termination Termination
}

func (e *UnsupportedTerminationKindError) Error() string {
	return fmt.Sprintf("unsupported termination kind %q (id %d)", e.Termination.Kind, e.Termination.ID)
}

// MalformedPatchMappingError indicates a front/rear port pairing whose
// position index falls outside [1, positions]. It is a data-integrity fault
// surfaced with enough context to locate the broken pair.
type MalformedPatchMappingError struct {
	RearPortID  uint
	FrontPortID uint
	Position    int
	Positions   int
}

func (e *MalformedPatchMappingError) Error() string {
	return fmt.Sprintf("malformed patch mapping: front port %d maps to position %d of rear port %d (valid range 1..%d)",
		e.FrontPortID, e.Position, e.RearPortID, e.Positions)
}
