package rack

import (
	"sort"

	vo "patchbay/internal/domain/rack/valueobjects"
)

// UnitSlot is one row of a rack elevation: a unit index plus whatever claims
// it. Height is 1 for expanded elevations; Summarize merges contiguous slots
// of the same device and records the merged height.
type UnitSlot struct {
	Unit     int
	Face     vo.Face
	Device   *MountedDevice
	Occupied bool
	Reserved bool
	Height   int
}

// BuildElevation computes the elevation of one rack face. It returns one
// slot per unit in display order (highest unit first unless the rack numbers
// its units descending). A device appears on the requested face when it is
// mounted on that face or is full-depth.
//
// Two devices claiming the same unit on the same face is a data-integrity
// fault in the inventory: the builder stops and reports both devices rather
// than silently dropping one.
func BuildElevation(rack *Rack, face vo.Face, devices []MountedDevice, reservations []*Reservation) ([]UnitSlot, error) {
	occupants, err := faceOccupants(rack, face, devices)
	if err != nil {
		return nil, err
	}

	reserved := reservedUnits(reservations)

	units := rack.Units()
	slots := make([]UnitSlot, 0, len(units))
	for _, u := range units {
		slot := UnitSlot{Unit: u, Face: face, Height: 1}
		if d, ok := occupants[u]; ok {
			d := d
			slot.Device = &d
			slot.Occupied = true
		} else if _, ok := reserved[u]; ok {
			slot.Reserved = true
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// Summarize collapses an expanded elevation into the form rendered by
// elevation drawings: contiguous units claimed by the same device merge into
// a single slot whose Height is the device's footprint. Empty and reserved
// units stay one slot each.
func Summarize(slots []UnitSlot) []UnitSlot {
	out := make([]UnitSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.Device != nil && len(out) > 0 {
			prev := &out[len(out)-1]
			if prev.Device != nil && prev.Device.ID == slot.Device.ID {
				prev.Height++
				continue
			}
		}
		out = append(out, slot)
	}
	return out
}

// AvailableUnits returns the units of a rack with no device footprint on
// either face, in display order. When excludeDeviceID is non-zero that
// device's own footprint is ignored, so a device can be validated against a
// move within its current rack.
func AvailableUnits(rack *Rack, devices []MountedDevice, excludeDeviceID uint) ([]int, error) {
	occupied := make(map[int]struct{})
	for _, d := range devices {
		if d.ID == excludeDeviceID && excludeDeviceID != 0 {
			continue
		}
		if d.Position < 1 || !rack.Contains(d.TopUnit()) {
			return nil, &UnitRangeError{
				RackID:   rack.ID(),
				DeviceID: d.ID,
				Position: d.Position,
				Height:   d.Height,
				UHeight:  rack.UHeight(),
			}
		}
		for u := d.Position; u <= d.TopUnit(); u++ {
			occupied[u] = struct{}{}
		}
	}

	available := make([]int, 0, rack.UHeight())
	for _, u := range rack.Units() {
		if _, ok := occupied[u]; !ok {
			available = append(available, u)
		}
	}
	return available, nil
}

// faceOccupants assigns each unit of one face to at most one device.
// Devices are walked in ascending position so a fault always names the
// lower-positioned device as the prior claimant.
func faceOccupants(rack *Rack, face vo.Face, devices []MountedDevice) (map[int]MountedDevice, error) {
	visible := make([]MountedDevice, 0, len(devices))
	for _, d := range devices {
		if d.Face == face || d.FullDepth {
			visible = append(visible, d)
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		if visible[i].Position != visible[j].Position {
			return visible[i].Position < visible[j].Position
		}
		return visible[i].ID < visible[j].ID
	})

	occupants := make(map[int]MountedDevice, len(visible))
	for _, d := range visible {
		if d.Position < 1 || !rack.Contains(d.TopUnit()) {
			return nil, &UnitRangeError{
				RackID:   rack.ID(),
				DeviceID: d.ID,
				Position: d.Position,
				Height:   d.Height,
				UHeight:  rack.UHeight(),
			}
		}
		for u := d.Position; u <= d.TopUnit(); u++ {
			if other, taken := occupants[u]; taken {
				return nil, &OverlapFault{
					RackID:        rack.ID(),
					Unit:          u,
					DeviceID:      d.ID,
					OtherDeviceID: other.ID,
				}
			}
			occupants[u] = d
		}
	}
	return occupants, nil
}

func reservedUnits(reservations []*Reservation) map[int]struct{} {
	reserved := make(map[int]struct{})
	for _, r := range reservations {
		for _, u := range r.Units() {
			reserved[u] = struct{}{}
		}
	}
	return reserved
}
