package topology

import (
	"fmt"
	"time"

	vo "patchbay/internal/domain/topology/valueobjects"
)

// Cable represents the cable aggregate root: an undirected physical link
// between two terminations. The A/B order carries no tracing semantics and
// is preserved for display only.
type Cable struct {
	id            uint
	terminationA  Termination
	terminationB  Termination
	status        vo.CableStatus
	label         string
	length        float64
	lengthUnit    vo.LengthUnit
	lengthMeters  float64 // derived, for ordering only
	tags          []string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewCable creates a new cable aggregate.
func NewCable(
	terminationA, terminationB Termination,
	status vo.CableStatus,
	label string,
	length float64,
	lengthUnit vo.LengthUnit,
	tags []string,
) (*Cable, error) {
	if _, err := Classify(terminationA); err != nil {
		return nil, fmt.Errorf("invalid A-side termination: %w", err)
	}
	if _, err := Classify(terminationB); err != nil {
		return nil, fmt.Errorf("invalid B-side termination: %w", err)
	}
	if terminationA.Same(terminationB) {
		return nil, fmt.Errorf("cable ends must be distinct terminations, got %s on both sides", terminationA)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid cable status: %s", status)
	}
	if length < 0 {
		return nil, fmt.Errorf("cable length must not be negative")
	}
	if length > 0 && !lengthUnit.IsValid() {
		return nil, fmt.Errorf("invalid length unit: %s", lengthUnit)
	}

	now := time.Now()
	c := &Cable{
		terminationA: terminationA,
		terminationB: terminationB,
		status:       status,
		label:        label,
		length:       length,
		lengthUnit:   lengthUnit,
		tags:         tags,
		createdAt:    now,
		updatedAt:    now,
	}
	if length > 0 {
		c.lengthMeters = lengthUnit.Normalize(length)
	}
	return c, nil
}

// ReconstructCable reconstructs a cable from persistence.
func ReconstructCable(
	id uint,
	terminationA, terminationB Termination,
	status vo.CableStatus,
	label string,
	length float64,
	lengthUnit vo.LengthUnit,
	tags []string,
	createdAt, updatedAt time.Time,
) (*Cable, error) {
	if id == 0 {
		return nil, fmt.Errorf("cable ID is required for reconstruction")
	}
	cable, err := NewCable(terminationA, terminationB, status, label, length, lengthUnit, tags)
	if err != nil {
		return nil, err
	}
	cable.id = id
	cable.createdAt = createdAt
	cable.updatedAt = updatedAt
	return cable, nil
}

// SetID sets the cable ID after persistence. It may only be set once.
func (c *Cable) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("cable ID already set")
	}
	if id == 0 {
		return fmt.Errorf("cable ID must not be zero")
	}
	c.id = id
	return nil
}

func (c *Cable) ID() uint                   { return c.id }
func (c *Cable) TerminationA() Termination  { return c.terminationA }
func (c *Cable) TerminationB() Termination  { return c.terminationB }
func (c *Cable) Status() vo.CableStatus     { return c.status }
func (c *Cable) Label() string              { return c.label }
func (c *Cable) Length() float64            { return c.length }
func (c *Cable) LengthUnit() vo.LengthUnit  { return c.lengthUnit }
func (c *Cable) LengthMeters() float64      { return c.lengthMeters }
func (c *Cable) Tags() []string             { return c.tags }
func (c *Cable) CreatedAt() time.Time       { return c.createdAt }
func (c *Cable) UpdatedAt() time.Time       { return c.updatedAt }

// HasTermination reports whether t is one of the cable's two ends.
func (c *Cable) HasTermination(t Termination) bool {
	return c.terminationA.Same(t) || c.terminationB.Same(t)
}

// OppositeEnd returns the end opposite to t. The cable is symmetric, so
// which side t occupies does not matter.
func (c *Cable) OppositeEnd(t Termination) (Termination, error) {
	switch {
	case c.terminationA.Same(t):
		return c.terminationB, nil
	case c.terminationB.Same(t):
		return c.terminationA, nil
	default:
		return Termination{}, fmt.Errorf("termination %s is not an end of cable %d", t, c.id)
	}
}
