package topology

import (
	"fmt"
	"time"

	vo "patchbay/internal/domain/topology/valueobjects"
)

// Port represents one physical connector on a device or panel. Front and
// rear ports additionally carry their patch mapping.
type Port struct {
	id       uint
	deviceID uint
	name     string
	kind     vo.TerminationKind

	// Rear ports only: how many front-port positions this port maps to.
	positions int

	// Front ports only: the paired rear port and the position index on it.
	rearPortID       uint
	rearPortPosition int

	createdAt time.Time
	updatedAt time.Time
}

// NewPort creates a plain (non-patch) port.
func NewPort(deviceID uint, name string, kind vo.TerminationKind) (*Port, error) {
	if err := validatePortBasics(deviceID, name, kind); err != nil {
		return nil, err
	}
	if kind == vo.KindFrontPort || kind == vo.KindRearPort {
		return nil, fmt.Errorf("use NewFrontPort or NewRearPort for patch ports")
	}
	now := time.Now()
	return &Port{
		deviceID:  deviceID,
		name:      name,
		kind:      kind,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewRearPort creates a rear port declaring how many front-port positions it
// maps to.
func NewRearPort(deviceID uint, name string, positions int) (*Port, error) {
	if err := validatePortBasics(deviceID, name, vo.KindRearPort); err != nil {
		return nil, err
	}
	if positions < 1 {
		return nil, fmt.Errorf("rear port must declare at least one position, got %d", positions)
	}
	now := time.Now()
	return &Port{
		deviceID:  deviceID,
		name:      name,
		kind:      vo.KindRearPort,
		positions: positions,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewFrontPort creates a front port paired with one rear-port position. The
// position must be validated against the rear port's positions count by the
// caller, which holds the rear port; ValidateMapping does that check.
func NewFrontPort(deviceID uint, name string, rearPortID uint, rearPortPosition int) (*Port, error) {
	if err := validatePortBasics(deviceID, name, vo.KindFrontPort); err != nil {
		return nil, err
	}
	if rearPortID == 0 {
		return nil, fmt.Errorf("front port requires a rear port")
	}
	if rearPortPosition < 1 {
		return nil, fmt.Errorf("front port position must be at least 1, got %d", rearPortPosition)
	}
	now := time.Now()
	return &Port{
		deviceID:         deviceID,
		name:             name,
		kind:             vo.KindFrontPort,
		rearPortID:       rearPortID,
		rearPortPosition: rearPortPosition,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructPort reconstructs a port from persistence.
func ReconstructPort(
	id uint,
	deviceID uint,
	name string,
	kind vo.TerminationKind,
	positions int,
	rearPortID uint,
	rearPortPosition int,
	createdAt, updatedAt time.Time,
) (*Port, error) {
	if id == 0 {
		return nil, fmt.Errorf("port ID is required for reconstruction")
	}
	if err := validatePortBasics(deviceID, name, kind); err != nil {
		return nil, err
	}
	return &Port{
		id:               id,
		deviceID:         deviceID,
		name:             name,
		kind:             kind,
		positions:        positions,
		rearPortID:       rearPortID,
		rearPortPosition: rearPortPosition,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func validatePortBasics(deviceID uint, name string, kind vo.TerminationKind) error {
	if deviceID == 0 {
		return fmt.Errorf("port device is required")
	}
	if name == "" {
		return fmt.Errorf("port name is required")
	}
	if !kind.IsValid() {
		return fmt.Errorf("invalid port kind: %s", kind)
	}
	if kind == vo.KindCircuitTermination {
		return fmt.Errorf("circuit terminations belong to circuits, not devices")
	}
	return nil
}

// ValidateMapping checks a front port's position against its rear port's
// positions count. A violation is a MalformedPatchMappingError.
func (p *Port) ValidateMapping(rear *Port) error {
	if p.kind != vo.KindFrontPort {
		return fmt.Errorf("port %d is not a front port", p.id)
	}
	if rear == nil || rear.kind != vo.KindRearPort || rear.id != p.rearPortID {
		return fmt.Errorf("front port %d is not paired with rear port", p.id)
	}
	if p.rearPortPosition < 1 || p.rearPortPosition > rear.positions {
		return &MalformedPatchMappingError{
			RearPortID:  rear.id,
			FrontPortID: p.id,
			Position:    p.rearPortPosition,
			Positions:   rear.positions,
		}
	}
	return nil
}

// SetID sets the port ID after persistence. It may only be set once.
func (p *Port) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("port ID already set")
	}
	if id == 0 {
		return fmt.Errorf("port ID must not be zero")
	}
	p.id = id
	return nil
}

func (p *Port) ID() uint                  { return p.id }
func (p *Port) DeviceID() uint            { return p.deviceID }
func (p *Port) Name() string              { return p.name }
func (p *Port) Kind() vo.TerminationKind  { return p.kind }
func (p *Port) Positions() int            { return p.positions }
func (p *Port) RearPortID() uint          { return p.rearPortID }
func (p *Port) RearPortPosition() int     { return p.rearPortPosition }
func (p *Port) CreatedAt() time.Time      { return p.createdAt }
func (p *Port) UpdatedAt() time.Time      { return p.updatedAt }

// Termination returns the port's termination reference.
func (p *Port) Termination() Termination {
	return Termination{Kind: p.kind, ID: p.id, Label: p.name}
}
