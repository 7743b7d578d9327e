// Package valueobjects provides value objects for the topology domain.
package valueobjects

// TerminationKind identifies one of the fixed physical connector kinds that
// can terminate a cable.
type TerminationKind string

const (
	KindConsolePort        TerminationKind = "console_port"
	KindConsoleServerPort  TerminationKind = "console_server_port"
	KindPowerPort          TerminationKind = "power_port"
	KindPowerOutlet        TerminationKind = "power_outlet"
	KindInterface          TerminationKind = "interface"
	KindFrontPort          TerminationKind = "front_port"
	KindRearPort           TerminationKind = "rear_port"
	KindPowerFeed          TerminationKind = "power_feed"
	KindCircuitTermination TerminationKind = "circuit_termination"
)

var validTerminationKinds = map[TerminationKind]bool{
	KindConsolePort:        true,
	KindConsoleServerPort:  true,
	KindPowerPort:          true,
	KindPowerOutlet:        true,
	KindInterface:          true,
	KindFrontPort:          true,
	KindRearPort:           true,
	KindPowerFeed:          true,
	KindCircuitTermination: true,
}

// String returns the string representation.
func (k TerminationKind) String() string {
	return string(k)
}

// IsValid checks if the kind is one of the closed set of connector kinds.
func (k TerminationKind) IsValid() bool {
	return validTerminationKinds[k]
}

// IsPassThrough reports whether the kind can forward a trace through itself
// without being a plain cable endpoint. Circuit terminations are
// conditionally pass-through: the trace only continues when the owning
// circuit has both ends recorded.
func (k TerminationKind) IsPassThrough() bool {
	switch k {
	case KindFrontPort, KindRearPort, KindCircuitTermination:
		return true
	default:
		return false
	}
}

// CanFanOut reports whether the kind may branch a trace into multiple
// sub-paths. Only rear ports fan out, and only when they map more than one
// front-port position.
func (k TerminationKind) CanFanOut() bool {
	return k == KindRearPort
}
