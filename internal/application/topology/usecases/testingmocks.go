package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"patchbay/internal/domain/topology"
	"patchbay/internal/shared/logger"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, args ...any) { m.Called(msg, args) }
func (m *mockLogger) Info(msg string, args ...any)  { m.Called(msg, args) }
func (m *mockLogger) Warn(msg string, args ...any)  { m.Called(msg, args) }
func (m *mockLogger) Error(msg string, args ...any) { m.Called(msg, args) }

func (m *mockLogger) With(args ...any) logger.Interface {
	called := m.Called(args)
	if called.Get(0) == nil {
		return m
	}
	return called.Get(0).(logger.Interface)
}

func (m *mockLogger) Named(name string) logger.Interface {
	called := m.Called(name)
	if called.Get(0) == nil {
		return m
	}
	return called.Get(0).(logger.Interface)
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) { m.Called(msg, keysAndValues) }
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  { m.Called(msg, keysAndValues) }
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  { m.Called(msg, keysAndValues) }
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) { m.Called(msg, keysAndValues) }

// quietLogger returns a mock logger that accepts any log call.
func quietLogger() *mockLogger {
	log := new(mockLogger)
	log.On("Debugw", mock.Anything, mock.Anything).Return().Maybe()
	log.On("Infow", mock.Anything, mock.Anything).Return().Maybe()
	log.On("Warnw", mock.Anything, mock.Anything).Return().Maybe()
	log.On("Errorw", mock.Anything, mock.Anything).Return().Maybe()
	return log
}

type mockReader struct {
	mock.Mock
}

func (m *mockReader) CableFor(ctx context.Context, t topology.Termination) (*topology.Cable, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topology.Cable), args.Error(1)
}

func (m *mockReader) OppositeEnd(ctx context.Context, cable *topology.Cable, t topology.Termination) (topology.Termination, error) {
	args := m.Called(ctx, cable, t)
	return args.Get(0).(topology.Termination), args.Error(1)
}

func (m *mockReader) RearPortPositions(ctx context.Context, rearPortID uint) (int, error) {
	args := m.Called(ctx, rearPortID)
	return args.Int(0), args.Error(1)
}

func (m *mockReader) FrontPortsForRear(ctx context.Context, rearPortID uint) ([]topology.FrontPortLink, error) {
	args := m.Called(ctx, rearPortID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]topology.FrontPortLink), args.Error(1)
}

func (m *mockReader) FrontPortRear(ctx context.Context, frontPortID uint) (topology.RearPortLink, error) {
	args := m.Called(ctx, frontPortID)
	return args.Get(0).(topology.RearPortLink), args.Error(1)
}

func (m *mockReader) CircuitPair(ctx context.Context, circuitTerminationID uint) (*topology.Termination, error) {
	args := m.Called(ctx, circuitTerminationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topology.Termination), args.Error(1)
}

type mockCableRepository struct {
	mock.Mock
}

func (m *mockCableRepository) Create(ctx context.Context, cable *topology.Cable) error {
	args := m.Called(ctx, cable)
	return args.Error(0)
}

func (m *mockCableRepository) GetByID(ctx context.Context, id uint) (*topology.Cable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topology.Cable), args.Error(1)
}

func (m *mockCableRepository) GetByTermination(ctx context.Context, t topology.Termination) (*topology.Cable, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topology.Cable), args.Error(1)
}

func (m *mockCableRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCableRepository) List(ctx context.Context, page, pageSize int) ([]*topology.Cable, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*topology.Cable), args.Get(1).(int64), args.Error(2)
}

type mockCircuitRepository struct {
	mock.Mock
}

func (m *mockCircuitRepository) Create(ctx context.Context, circuit *topology.Circuit) error {
	args := m.Called(ctx, circuit)
	return args.Error(0)
}

func (m *mockCircuitRepository) GetByID(ctx context.Context, id uint) (*topology.Circuit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topology.Circuit), args.Error(1)
}

func (m *mockCircuitRepository) CreateTermination(ctx context.Context, ct *topology.CircuitTermination) error {
	args := m.Called(ctx, ct)
	return args.Error(0)
}

func (m *mockCircuitRepository) GetTerminations(ctx context.Context, circuitID uint) ([]*topology.CircuitTermination, error) {
	args := m.Called(ctx, circuitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*topology.CircuitTermination), args.Error(1)
}
