package rack

import (
	"fmt"
	"time"
)

// Reservation marks a set of units in a rack as held for future use. A
// reservation does not block mounting; the elevation only flags the units so
// operators can see the claim.
type Reservation struct {
	id          uint
	rackID      uint
	units       []int
	owner       string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReservation creates a reservation for the given units. Units must be
// non-empty, positive, and free of duplicates; whether they fall inside the
// rack is checked against the rack by the caller.
func NewReservation(rackID uint, units []int, owner, description string) (*Reservation, error) {
	if rackID == 0 {
		return nil, fmt.Errorf("reservation rack is required")
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("reservation must cover at least one unit")
	}
	if owner == "" {
		return nil, fmt.Errorf("reservation owner is required")
	}
	seen := make(map[int]struct{}, len(units))
	for _, u := range units {
		if u < 1 {
			return nil, fmt.Errorf("reservation unit must be positive, got %d", u)
		}
		if _, dup := seen[u]; dup {
			return nil, fmt.Errorf("reservation unit %d listed twice", u)
		}
		seen[u] = struct{}{}
	}

	now := time.Now()
	return &Reservation{
		rackID:      rackID,
		units:       append([]int(nil), units...),
		owner:       owner,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructReservation reconstructs a reservation from persistence.
func ReconstructReservation(id, rackID uint, units []int, owner, description string, createdAt, updatedAt time.Time) (*Reservation, error) {
	if id == 0 {
		return nil, fmt.Errorf("reservation ID is required for reconstruction")
	}
	r, err := NewReservation(rackID, units, owner, description)
	if err != nil {
		return nil, err
	}
	r.id = id
	r.createdAt = createdAt
	r.updatedAt = updatedAt
	return r, nil
}

// SetID sets the reservation ID after persistence. It may only be set once.
func (r *Reservation) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("reservation ID already set")
	}
	if id == 0 {
		return fmt.Errorf("reservation ID must not be zero")
	}
	r.id = id
	return nil
}

func (r *Reservation) ID() uint             { return r.id }
func (r *Reservation) RackID() uint         { return r.rackID }
func (r *Reservation) Owner() string        { return r.owner }
func (r *Reservation) Description() string  { return r.description }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

// Units returns a copy of the reserved unit indices.
func (r *Reservation) Units() []int {
	return append([]int(nil), r.units...)
}

// Covers reports whether the reservation includes the given unit.
func (r *Reservation) Covers(unit int) bool {
	for _, u := range r.units {
		if u == unit {
			return true
		}
	}
	return false
}
