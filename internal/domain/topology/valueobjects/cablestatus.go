package valueobjects

// CableStatus represents the lifecycle status of a cable.
type CableStatus string

const (
	CableStatusConnected       CableStatus = "connected"
	CableStatusPlanned         CableStatus = "planned"
	CableStatusDecommissioning CableStatus = "decommissioning"
)

var validCableStatuses = map[CableStatus]bool{
	CableStatusConnected:       true,
	CableStatusPlanned:         true,
	CableStatusDecommissioning: true,
}

// String returns the string representation.
func (s CableStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid.
func (s CableStatus) IsValid() bool {
	return validCableStatuses[s]
}

// IsConnected reports whether the cable propagates a live path. Planned and
// decommissioning cables never do.
func (s CableStatus) IsConnected() bool {
	return s == CableStatusConnected
}
