package rack

import (
	"fmt"
	"time"

	vo "patchbay/internal/domain/rack/valueobjects"
)

// Device represents a device mounted (or stored unmounted) in a site. A
// mounted device claims `height` contiguous units starting at `position` on
// one rack face; full-depth devices block the opposite face as well.
type Device struct {
	id        uint
	name      string
	siteID    uint
	rackID    uint // zero when unracked
	position  int  // lowest claimed unit, zero when unracked
	height    int  // vertical footprint in units, >= 1
	face      vo.Face
	fullDepth bool
	tags      []string
	createdAt time.Time
	updatedAt time.Time
}

// NewDevice creates a new device aggregate. Height and position are
// validated here, at the boundary: the elevation builder assumes
// height >= 1.
func NewDevice(
	name string,
	siteID uint,
	rackID uint,
	position int,
	height int,
	face vo.Face,
	fullDepth bool,
	tags []string,
) (*Device, error) {
	if name == "" {
		return nil, fmt.Errorf("device name is required")
	}
	if siteID == 0 {
		return nil, fmt.Errorf("device site is required")
	}
	if height < 1 {
		return nil, fmt.Errorf("device height must be at least 1U, got %d", height)
	}
	if rackID != 0 {
		if position < 1 {
			return nil, fmt.Errorf("racked device position must be at least 1, got %d", position)
		}
		if !face.IsValid() {
			return nil, fmt.Errorf("invalid rack face: %s", face)
		}
	}

	now := time.Now()
	return &Device{
		name:      name,
		siteID:    siteID,
		rackID:    rackID,
		position:  position,
		height:    height,
		face:      face,
		fullDepth: fullDepth,
		tags:      tags,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructDevice reconstructs a device from persistence.
func ReconstructDevice(
	id uint,
	name string,
	siteID uint,
	rackID uint,
	position int,
	height int,
	face vo.Face,
	fullDepth bool,
	tags []string,
	createdAt, updatedAt time.Time,
) (*Device, error) {
	if id == 0 {
		return nil, fmt.Errorf("device ID is required for reconstruction")
	}
	d, err := NewDevice(name, siteID, rackID, position, height, face, fullDepth, tags)
	if err != nil {
		return nil, err
	}
	d.id = id
	d.createdAt = createdAt
	d.updatedAt = updatedAt
	return d, nil
}

// SetID sets the device ID after persistence. It may only be set once.
func (d *Device) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("device ID already set")
	}
	if id == 0 {
		return fmt.Errorf("device ID must not be zero")
	}
	d.id = id
	return nil
}

func (d *Device) ID() uint             { return d.id }
func (d *Device) Name() string         { return d.name }
func (d *Device) SiteID() uint         { return d.siteID }
func (d *Device) RackID() uint         { return d.rackID }
func (d *Device) Position() int        { return d.position }
func (d *Device) Height() int          { return d.height }
func (d *Device) Face() vo.Face        { return d.face }
func (d *Device) FullDepth() bool      { return d.fullDepth }
func (d *Device) Tags() []string       { return d.tags }
func (d *Device) CreatedAt() time.Time { return d.createdAt }
func (d *Device) UpdatedAt() time.Time { return d.updatedAt }

// IsRacked reports whether the device occupies a rack position.
func (d *Device) IsRacked() bool {
	return d.rackID != 0 && d.position > 0
}

// TopUnit returns the highest unit the device's footprint claims.
func (d *Device) TopUnit() int {
	return d.position + d.height - 1
}

// Mounted returns the device's occupancy view consumed by the elevation
// builder.
func (d *Device) Mounted() MountedDevice {
	return MountedDevice{
		ID:        d.id,
		Name:      d.name,
		Position:  d.position,
		Height:    d.height,
		Face:      d.face,
		FullDepth: d.fullDepth,
	}
}

// MountedDevice is the plain occupancy record the elevation builder
// consumes: identity plus footprint, nothing else.
type MountedDevice struct {
	ID        uint
	Name      string
	Position  int
	Height    int
	Face      vo.Face
	FullDepth bool
}

// TopUnit returns the highest unit the footprint claims.
func (m MountedDevice) TopUnit() int {
	return m.Position + m.Height - 1
}
