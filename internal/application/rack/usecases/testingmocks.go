package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"patchbay/internal/domain/rack"
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

type mockRackRepository struct {
	mock.Mock
}

func (m *mockRackRepository) Create(ctx context.Context, r *rack.Rack) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockRackRepository) GetByID(ctx context.Context, id uint) (*rack.Rack, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rack.Rack), args.Error(1)
}

func (m *mockRackRepository) ListBySite(ctx context.Context, siteID uint, offset, limit int) ([]*rack.Rack, int64, error) {
	args := m.Called(ctx, siteID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*rack.Rack), args.Get(1).(int64), args.Error(2)
}

func (m *mockRackRepository) List(ctx context.Context, offset, limit int) ([]*rack.Rack, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*rack.Rack), args.Get(1).(int64), args.Error(2)
}

func (m *mockRackRepository) Update(ctx context.Context, r *rack.Rack) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockRackRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockDeviceRepository struct {
	mock.Mock
}

func (m *mockDeviceRepository) Create(ctx context.Context, d *rack.Device) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDeviceRepository) GetByID(ctx context.Context, id uint) (*rack.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rack.Device), args.Error(1)
}

func (m *mockDeviceRepository) ListByRack(ctx context.Context, rackID uint) ([]*rack.Device, error) {
	args := m.Called(ctx, rackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rack.Device), args.Error(1)
}

func (m *mockDeviceRepository) Update(ctx context.Context, d *rack.Device) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDeviceRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockSiteRepository struct {
	mock.Mock
}

func (m *mockSiteRepository) Create(ctx context.Context, s *rack.Site) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSiteRepository) GetByID(ctx context.Context, id uint) (*rack.Site, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rack.Site), args.Error(1)
}

func (m *mockSiteRepository) GetBySlug(ctx context.Context, slug string) (*rack.Site, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rack.Site), args.Error(1)
}

func (m *mockSiteRepository) List(ctx context.Context, offset, limit int) ([]*rack.Site, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*rack.Site), args.Get(1).(int64), args.Error(2)
}

func (m *mockSiteRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockReservationRepository struct {
	mock.Mock
}

func (m *mockReservationRepository) Create(ctx context.Context, r *rack.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockReservationRepository) GetByID(ctx context.Context, id uint) (*rack.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rack.Reservation), args.Error(1)
}

func (m *mockReservationRepository) ListByRack(ctx context.Context, rackID uint) ([]*rack.Reservation, error) {
	args := m.Called(ctx, rackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rack.Reservation), args.Error(1)
}

func (m *mockReservationRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
