// Package rack provides domain models for racks, mounted devices, and the
// rack elevation computation.
package rack

import (
	"fmt"
	"time"
)

// maxUHeight mirrors the tallest racks in the field; anything beyond is a
// data-entry mistake.
const maxUHeight = 100

// Rack represents the rack aggregate root.
type Rack struct {
	id        uint
	name      string
	siteID    uint
	uHeight   int
	descUnits bool // number units top-to-bottom instead of bottom-to-top
	createdAt time.Time
	updatedAt time.Time
}

// NewRack creates a new rack aggregate.
func NewRack(name string, siteID uint, uHeight int, descUnits bool) (*Rack, error) {
	if name == "" {
		return nil, fmt.Errorf("rack name is required")
	}
	if siteID == 0 {
		return nil, fmt.Errorf("rack site is required")
	}
	if uHeight < 1 || uHeight > maxUHeight {
		return nil, fmt.Errorf("rack height must be between 1U and %dU, got %d", maxUHeight, uHeight)
	}

	now := time.Now()
	return &Rack{
		name:      name,
		siteID:    siteID,
		uHeight:   uHeight,
		descUnits: descUnits,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructRack reconstructs a rack from persistence.
func ReconstructRack(id uint, name string, siteID uint, uHeight int, descUnits bool, createdAt, updatedAt time.Time) (*Rack, error) {
	if id == 0 {
		return nil, fmt.Errorf("rack ID is required for reconstruction")
	}
	r, err := NewRack(name, siteID, uHeight, descUnits)
	if err != nil {
		return nil, err
	}
	r.id = id
	r.createdAt = createdAt
	r.updatedAt = updatedAt
	return r, nil
}

// SetID sets the rack ID after persistence. It may only be set once.
func (r *Rack) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("rack ID already set")
	}
	if id == 0 {
		return fmt.Errorf("rack ID must not be zero")
	}
	r.id = id
	return nil
}

func (r *Rack) ID() uint             { return r.id }
func (r *Rack) Name() string         { return r.name }
func (r *Rack) SiteID() uint         { return r.siteID }
func (r *Rack) UHeight() int         { return r.uHeight }
func (r *Rack) DescUnits() bool      { return r.descUnits }
func (r *Rack) CreatedAt() time.Time { return r.createdAt }
func (r *Rack) UpdatedAt() time.Time { return r.updatedAt }

// Units returns the rack's unit indices in display order: highest unit
// first, unless the rack numbers its units descending.
func (r *Rack) Units() []int {
	units := make([]int, 0, r.uHeight)
	if r.descUnits {
		for u := 1; u <= r.uHeight; u++ {
			units = append(units, u)
		}
		return units
	}
	for u := r.uHeight; u >= 1; u-- {
		units = append(units, u)
	}
	return units
}

// Contains reports whether a unit index falls inside the rack.
func (r *Rack) Contains(unit int) bool {
	return unit >= 1 && unit <= r.uHeight
}
