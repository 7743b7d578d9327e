package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"patchbay/internal/domain/topology"
	vo "patchbay/internal/domain/topology/valueobjects"
	"patchbay/internal/infrastructure/persistence/mappers"
	"patchbay/internal/infrastructure/persistence/models"
	"patchbay/internal/shared/db"
	"patchbay/internal/shared/logger"
)

// TopologyReaderImpl implements the topology.Reader interface the trace
// engine consumes. It is read-only over the same tables the repositories
// write.
type TopologyReaderImpl struct {
	db     *gorm.DB
	mapper mappers.CableMapper
	logger logger.Interface
}

// NewTopologyReader creates a new topology reader instance.
func NewTopologyReader(db *gorm.DB, logger logger.Interface) topology.Reader {
	return &TopologyReaderImpl{
		db:     db,
		mapper: mappers.NewCableMapper(),
		logger: logger,
	}
}

// CableFor returns the cable attached to a termination, or nil when none
// exists.
func (r *TopologyReaderImpl) CableFor(ctx context.Context, t topology.Termination) (*topology.Cable, error) {
	var model models.CableModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where(
		"(termination_a_kind = ? AND termination_a_id = ?) OR (termination_b_kind = ? AND termination_b_id = ?)",
		t.Kind.String(), t.ID, t.Kind.String(), t.ID,
	).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to look up cable for termination", "termination", t.String(), "error", err)
		return nil, fmt.Errorf("failed to look up cable: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// OppositeEnd returns the termination at the other end of a cable.
func (r *TopologyReaderImpl) OppositeEnd(ctx context.Context, cable *topology.Cable, t topology.Termination) (topology.Termination, error) {
	return cable.OppositeEnd(t)
}

// RearPortPositions returns the declared positions count of a rear port.
func (r *TopologyReaderImpl) RearPortPositions(ctx context.Context, rearPortID uint) (int, error) {
	var model models.PortModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, rearPortID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, fmt.Errorf("rear port %d: %w", rearPortID, topology.ErrPortNotFound)
		}
		r.logger.Errorw("failed to get rear port", "id", rearPortID, "error", err)
		return 0, fmt.Errorf("failed to get rear port: %w", err)
	}
	if model.Kind != vo.KindRearPort.String() {
		return 0, fmt.Errorf("port %d is not a rear port", rearPortID)
	}

	return model.Positions, nil
}

// FrontPortsForRear returns the front ports mapped to a rear port, ordered
// by ascending position.
func (r *TopologyReaderImpl) FrontPortsForRear(ctx context.Context, rearPortID uint) ([]topology.FrontPortLink, error) {
	var portModels []*models.PortModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("rear_port_id = ? AND kind = ?", rearPortID, vo.KindFrontPort.String()).
		Order("rear_port_position ASC").
		Find(&portModels).Error
	if err != nil {
		r.logger.Errorw("failed to list front ports for rear port", "rear_port_id", rearPortID, "error", err)
		return nil, fmt.Errorf("failed to list front ports: %w", err)
	}

	links := make([]topology.FrontPortLink, 0, len(portModels))
	for _, model := range portModels {
		links = append(links, topology.FrontPortLink{
			Position: model.RearPortPosition,
			Termination: topology.Termination{
				Kind:  vo.KindFrontPort,
				ID:    model.ID,
				Label: model.Name,
			},
		})
	}
	return links, nil
}

// FrontPortRear returns the rear port a front port pairs with, along with
// the front port's position on it.
func (r *TopologyReaderImpl) FrontPortRear(ctx context.Context, frontPortID uint) (topology.RearPortLink, error) {
	var front models.PortModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&front, frontPortID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return topology.RearPortLink{}, fmt.Errorf("front port %d: %w", frontPortID, topology.ErrPortNotFound)
		}
		r.logger.Errorw("failed to get front port", "id", frontPortID, "error", err)
		return topology.RearPortLink{}, fmt.Errorf("failed to get front port: %w", err)
	}
	if front.Kind != vo.KindFrontPort.String() || front.RearPortID == nil {
		return topology.RearPortLink{}, fmt.Errorf("port %d is not a mapped front port", frontPortID)
	}

	var rear models.PortModel
	if err := tx.First(&rear, *front.RearPortID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return topology.RearPortLink{}, fmt.Errorf("rear port %d: %w", *front.RearPortID, topology.ErrPortNotFound)
		}
		r.logger.Errorw("failed to get rear port", "id", *front.RearPortID, "error", err)
		return topology.RearPortLink{}, fmt.Errorf("failed to get rear port: %w", err)
	}

	return topology.RearPortLink{
		Position: front.RearPortPosition,
		Termination: topology.Termination{
			Kind:  vo.KindRearPort,
			ID:    rear.ID,
			Label: rear.Name,
		},
	}, nil
}

// CircuitPair returns the termination on the opposite side of the owning
// circuit, or nil when only one side is recorded.
func (r *TopologyReaderImpl) CircuitPair(ctx context.Context, circuitTerminationID uint) (*topology.Termination, error) {
	var ct models.CircuitTerminationModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&ct, circuitTerminationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("circuit termination %d: %w", circuitTerminationID, topology.ErrCircuitNotFound)
		}
		r.logger.Errorw("failed to get circuit termination", "id", circuitTerminationID, "error", err)
		return nil, fmt.Errorf("failed to get circuit termination: %w", err)
	}

	var pair models.CircuitTerminationModel
	err := tx.Where("circuit_id = ? AND side <> ?", ct.CircuitID, ct.Side).First(&pair).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get circuit pair", "circuit_id", ct.CircuitID, "error", err)
		return nil, fmt.Errorf("failed to get circuit pair: %w", err)
	}

	return &topology.Termination{
		Kind:  vo.KindCircuitTermination,
		ID:    pair.ID,
		Label: fmt.Sprintf("circuit %d side %s", pair.CircuitID, pair.Side),
	}, nil
}
