package topology

import (
	"fmt"
	"time"

	vo "patchbay/internal/domain/topology/valueobjects"
)

// CircuitSide identifies which end of a provider circuit a termination sits
// on.
type CircuitSide string

const (
	CircuitSideA CircuitSide = "A"
	CircuitSideZ CircuitSide = "Z"
)

// Opposite returns the other side of the circuit.
func (s CircuitSide) Opposite() CircuitSide {
	if s == CircuitSideA {
		return CircuitSideZ
	}
	return CircuitSideA
}

// IsValid checks if the side is valid.
func (s CircuitSide) IsValid() bool {
	return s == CircuitSideA || s == CircuitSideZ
}

// CircuitTermination is one end of a provider circuit. It is a termination
// in its own right and passes a trace through to the opposite side when both
// sides are recorded.
type CircuitTermination struct {
	id        uint
	circuitID uint
	side      CircuitSide
	siteID    uint
}

// NewCircuitTermination creates a circuit termination.
func NewCircuitTermination(circuitID uint, side CircuitSide, siteID uint) (*CircuitTermination, error) {
	if circuitID == 0 {
		return nil, fmt.Errorf("circuit is required")
	}
	if !side.IsValid() {
		return nil, fmt.Errorf("invalid circuit side: %s", side)
	}
	return &CircuitTermination{
		circuitID: circuitID,
		side:      side,
		siteID:    siteID,
	}, nil
}

// ReconstructCircuitTermination reconstructs a circuit termination from
// persistence.
func ReconstructCircuitTermination(id, circuitID uint, side CircuitSide, siteID uint) (*CircuitTermination, error) {
	if id == 0 {
		return nil, fmt.Errorf("circuit termination ID is required for reconstruction")
	}
	ct, err := NewCircuitTermination(circuitID, side, siteID)
	if err != nil {
		return nil, err
	}
	ct.id = id
	return ct, nil
}

// SetID sets the ID after persistence. It may only be set once.
func (ct *CircuitTermination) SetID(id uint) error {
	if ct.id != 0 {
		return fmt.Errorf("circuit termination ID already set")
	}
	if id == 0 {
		return fmt.Errorf("circuit termination ID must not be zero")
	}
	ct.id = id
	return nil
}

func (ct *CircuitTermination) ID() uint          { return ct.id }
func (ct *CircuitTermination) CircuitID() uint   { return ct.circuitID }
func (ct *CircuitTermination) Side() CircuitSide { return ct.side }
func (ct *CircuitTermination) SiteID() uint      { return ct.siteID }

// Termination returns the termination reference for this circuit end.
func (ct *CircuitTermination) Termination() Termination {
	return Termination{
		Kind:  vo.KindCircuitTermination,
		ID:    ct.id,
		Label: fmt.Sprintf("circuit %d side %s", ct.circuitID, ct.side),
	}
}

// Circuit represents a provider circuit with up to two terminations.
type Circuit struct {
	id        uint
	cid       string // provider circuit ID
	provider  string
	createdAt time.Time
	updatedAt time.Time
}

// NewCircuit creates a circuit aggregate.
func NewCircuit(cid, provider string) (*Circuit, error) {
	if cid == "" {
		return nil, fmt.Errorf("circuit ID string is required")
	}
	if provider == "" {
		return nil, fmt.Errorf("circuit provider is required")
	}
	now := time.Now()
	return &Circuit{
		cid:       cid,
		provider:  provider,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCircuit reconstructs a circuit from persistence.
func ReconstructCircuit(id uint, cid, provider string, createdAt, updatedAt time.Time) (*Circuit, error) {
	if id == 0 {
		return nil, fmt.Errorf("circuit ID is required for reconstruction")
	}
	c, err := NewCircuit(cid, provider)
	if err != nil {
		return nil, err
	}
	c.id = id
	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return c, nil
}

// SetID sets the circuit ID after persistence. It may only be set once.
func (c *Circuit) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("circuit ID already set")
	}
	if id == 0 {
		return fmt.Errorf("circuit ID must not be zero")
	}
	c.id = id
	return nil
}

func (c *Circuit) ID() uint             { return c.id }
func (c *Circuit) CID() string          { return c.cid }
func (c *Circuit) Provider() string     { return c.provider }
func (c *Circuit) CreatedAt() time.Time { return c.createdAt }
func (c *Circuit) UpdatedAt() time.Time { return c.updatedAt }
