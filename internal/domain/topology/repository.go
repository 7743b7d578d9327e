package topology

import "context"

// FrontPortLink is one front port associated with a rear port, carrying its
// position index on that rear port.
type FrontPortLink struct {
	Position    int
	Termination Termination
}

// RearPortLink is the rear port a front port maps to, with the front port's
// position index on it.
type RearPortLink struct {
	Position    int
	Termination Termination
}

// Reader is the lookup capability the trace engine consumes. Implementations
// read a consistent snapshot; the engine itself performs no writes and keeps
// no state between calls.
type Reader interface {
	// CableFor returns the cable attached to a termination, or nil when
	// none exists. Status filtering is the resolver's job, not the
	// reader's.
	CableFor(ctx context.Context, t Termination) (*Cable, error)

	// OppositeEnd returns the termination at the other end of a cable.
	OppositeEnd(ctx context.Context, cable *Cable, t Termination) (Termination, error)

	// RearPortPositions returns the declared positions count of a rear
	// port.
	RearPortPositions(ctx context.Context, rearPortID uint) (int, error)

	// FrontPortsForRear returns the front ports associated with a rear
	// port, ordered by ascending position.
	FrontPortsForRear(ctx context.Context, rearPortID uint) ([]FrontPortLink, error)

	// FrontPortRear returns the rear port a front port pairs with.
	FrontPortRear(ctx context.Context, frontPortID uint) (RearPortLink, error)

	// CircuitPair returns the termination on the opposite side of the
	// owning circuit, or nil when the circuit has only one side recorded.
	CircuitPair(ctx context.Context, circuitTerminationID uint) (*Termination, error)
}

// CableRepository defines the interface for cable persistence.
type CableRepository interface {
	// Create persists a new cable.
	Create(ctx context.Context, cable *Cable) error

	// GetByID retrieves a cable by ID.
	GetByID(ctx context.Context, id uint) (*Cable, error)

	// GetByTermination retrieves the cable attached to a termination, or
	// nil when none exists.
	GetByTermination(ctx context.Context, t Termination) (*Cable, error)

	// Delete removes a cable, disconnecting both ends.
	Delete(ctx context.Context, id uint) error

	// List returns cables ordered by normalized length, then ID.
	List(ctx context.Context, page, pageSize int) ([]*Cable, int64, error)
}

// PortRepository defines the interface for port persistence.
type PortRepository interface {
	// Create persists a new port.
	Create(ctx context.Context, port *Port) error

	// GetByID retrieves a port by ID.
	GetByID(ctx context.Context, id uint) (*Port, error)

	// ListByDevice returns all ports on a device ordered by name.
	ListByDevice(ctx context.Context, deviceID uint) ([]*Port, error)

	// Delete removes a port.
	Delete(ctx context.Context, id uint) error
}

// CircuitRepository defines the interface for circuit persistence.
type CircuitRepository interface {
	// Create persists a new circuit.
	Create(ctx context.Context, circuit *Circuit) error

	// GetByID retrieves a circuit by ID.
	GetByID(ctx context.Context, id uint) (*Circuit, error)

	// CreateTermination persists a circuit termination. A circuit holds at
	// most one termination per side.
	CreateTermination(ctx context.Context, ct *CircuitTermination) error

	// GetTerminations returns the recorded terminations of a circuit.
	GetTerminations(ctx context.Context, circuitID uint) ([]*CircuitTermination, error)
}
