package rack

import (
	"errors"
	"fmt"
)

var (
	// ErrRackNotFound is returned when a rack is not found.
	ErrRackNotFound = errors.New("rack not found")

	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrSiteNotFound is returned when a site is not found.
	ErrSiteNotFound = errors.New("site not found")

	// ErrReservationNotFound is returned when a reservation is not found.
	ErrReservationNotFound = errors.New("rack reservation not found")
)

// OverlapFault is the data-integrity violation raised when two devices claim
// the same rack unit. The builder surfaces it with both devices identified
// and never drops either one silently.
type OverlapFault struct {
	RackID        uint
	Unit          int
	DeviceID      uint
	OtherDeviceID uint
}

func (e *OverlapFault) Error() string {
	return fmt.Sprintf("rack %d unit %d claimed by both device %d and device %d",
		e.RackID, e.Unit, e.OtherDeviceID, e.DeviceID)
}

// UnitRangeError is raised when a device footprint extends outside the
// rack's unit range. Like OverlapFault it is reported, never auto-fixed.
type UnitRangeError struct {
	RackID   uint
	DeviceID uint
	Position int
	Height   int
	UHeight  int
}

func (e *UnitRangeError) Error() string {
	return fmt.Sprintf("device %d footprint [%d..%d] exceeds rack %d unit range 1..%d",
		e.DeviceID, e.Position, e.Position+e.Height-1, e.RackID, e.UHeight)
}
