// Package dto provides data transfer objects for the topology context.
package dto

import (
	"time"

	"patchbay/internal/domain/topology"
)

// TerminationDTO is the API shape of a termination reference.
type TerminationDTO struct {
	Kind  string `json:"kind"`
	ID    uint   `json:"id"`
	Label string `json:"label,omitempty"`
}

// CableDTO is the API shape of a cable.
type CableDTO struct {
	ID           uint           `json:"id"`
	TerminationA TerminationDTO `json:"termination_a"`
	TerminationB TerminationDTO `json:"termination_b"`
	Status       string         `json:"status"`
	Label        string         `json:"label,omitempty"`
	Length       float64        `json:"length,omitempty"`
	LengthUnit   string         `json:"length_unit,omitempty"`
	LengthMeters float64        `json:"length_meters,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

// HopDTO is one traced segment: near termination, the cable crossed (absent
// for transparent pass-through legs), and the far termination (absent for
// dead ends).
type HopDTO struct {
	Near  TerminationDTO  `json:"near"`
	Cable *CableDTO       `json:"cable,omitempty"`
	Far   *TerminationDTO `json:"far,omitempty"`
}

// PathDTO is one completed trace branch.
type PathDTO struct {
	Hops          []HopDTO        `json:"hops"`
	CycleDetected bool            `json:"cycle_detected"`
	IsComplete    bool            `json:"is_complete"`
	Endpoint      *TerminationDTO `json:"endpoint,omitempty"`
}

// PortDTO is the API shape of a port.
type PortDTO struct {
	ID               uint   `json:"id"`
	DeviceID         uint   `json:"device_id"`
	Name             string `json:"name"`
	Kind             string `json:"kind"`
	Positions        int    `json:"positions,omitempty"`
	RearPortID       uint   `json:"rear_port_id,omitempty"`
	RearPortPosition int    `json:"rear_port_position,omitempty"`
	CreatedAt        string `json:"created_at"`
}

// CircuitDTO is the API shape of a circuit.
type CircuitDTO struct {
	ID        uint   `json:"id"`
	CID       string `json:"cid"`
	Provider  string `json:"provider"`
	CreatedAt string `json:"created_at"`
}

// CircuitTerminationDTO is the API shape of a circuit end.
type CircuitTerminationDTO struct {
	ID        uint   `json:"id"`
	CircuitID uint   `json:"circuit_id"`
	Side      string `json:"side"`
	SiteID    uint   `json:"site_id,omitempty"`
}

// ToTerminationDTO converts a domain termination reference.
func ToTerminationDTO(t topology.Termination) TerminationDTO {
	return TerminationDTO{
		Kind:  t.Kind.String(),
		ID:    t.ID,
		Label: t.Label,
	}
}

// ToCableDTO converts a cable aggregate.
func ToCableDTO(c *topology.Cable) *CableDTO {
	if c == nil {
		return nil
	}
	return &CableDTO{
		ID:           c.ID(),
		TerminationA: ToTerminationDTO(c.TerminationA()),
		TerminationB: ToTerminationDTO(c.TerminationB()),
		Status:       c.Status().String(),
		Label:        c.Label(),
		Length:       c.Length(),
		LengthUnit:   c.LengthUnit().String(),
		LengthMeters: c.LengthMeters(),
		Tags:         c.Tags(),
		CreatedAt:    c.CreatedAt().Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt().Format(time.RFC3339),
	}
}

// ToPathDTO converts a traced path.
func ToPathDTO(p topology.Path) PathDTO {
	hops := make([]HopDTO, 0, len(p.Hops))
	for _, h := range p.Hops {
		hop := HopDTO{Near: ToTerminationDTO(h.Near)}
		if h.Cable != nil {
			hop.Cable = ToCableDTO(h.Cable)
		}
		if h.Far != nil {
			far := ToTerminationDTO(*h.Far)
			hop.Far = &far
		}
		hops = append(hops, hop)
	}

	out := PathDTO{
		Hops:          hops,
		CycleDetected: p.CycleDetected,
		IsComplete:    p.IsComplete(),
	}
	if ep := p.Endpoint(); ep != nil {
		far := ToTerminationDTO(*ep)
		out.Endpoint = &far
	}
	return out
}

// ToPathDTOs converts a set of traced paths.
func ToPathDTOs(paths []topology.Path) []PathDTO {
	out := make([]PathDTO, 0, len(paths))
	for _, p := range paths {
		out = append(out, ToPathDTO(p))
	}
	return out
}

// ToPortDTO converts a port.
func ToPortDTO(p *topology.Port) *PortDTO {
	if p == nil {
		return nil
	}
	return &PortDTO{
		ID:               p.ID(),
		DeviceID:         p.DeviceID(),
		Name:             p.Name(),
		Kind:             p.Kind().String(),
		Positions:        p.Positions(),
		RearPortID:       p.RearPortID(),
		RearPortPosition: p.RearPortPosition(),
		CreatedAt:        p.CreatedAt().Format(time.RFC3339),
	}
}

// ToCircuitDTO converts a circuit.
func ToCircuitDTO(c *topology.Circuit) *CircuitDTO {
	if c == nil {
		return nil
	}
	return &CircuitDTO{
		ID:        c.ID(),
		CID:       c.CID(),
		Provider:  c.Provider(),
		CreatedAt: c.CreatedAt().Format(time.RFC3339),
	}
}

// ToCircuitTerminationDTO converts a circuit end.
func ToCircuitTerminationDTO(ct *topology.CircuitTermination) *CircuitTerminationDTO {
	if ct == nil {
		return nil
	}
	return &CircuitTerminationDTO{
		ID:        ct.ID(),
		CircuitID: ct.CircuitID(),
		Side:      string(ct.Side()),
		SiteID:    ct.SiteID(),
	}
}
