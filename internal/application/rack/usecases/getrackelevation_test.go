package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"patchbay/internal/domain/rack"
	vo "patchbay/internal/domain/rack/valueobjects"
	"patchbay/internal/shared/errors"
)

func fixtureRack(t *testing.T, uHeight int) *rack.Rack {
	t.Helper()
	r, err := rack.ReconstructRack(1, "r1", 1, uHeight, false, time.Time{}, time.Time{})
	require.NoError(t, err)
	return r
}

func fixtureDevice(t *testing.T, id uint, position, height int, face vo.Face) *rack.Device {
	t.Helper()
	d, err := rack.ReconstructDevice(id, "dev", 1, 1, position, height, face, false, nil, time.Time{}, time.Time{})
	require.NoError(t, err)
	return d
}

func TestGetRackElevationUseCase_Execute_Success(t *testing.T) {
	rackRepo := new(mockRackRepository)
	deviceRepo := new(mockDeviceRepository)
	reservationRepo := new(mockReservationRepository)
	log := quietLogger()

	rackRepo.On("GetByID", mock.Anything, uint(1)).Return(fixtureRack(t, 4), nil)
	deviceRepo.On("ListByRack", mock.Anything, uint(1)).
		Return([]*rack.Device{fixtureDevice(t, 10, 1, 2, vo.FaceFront)}, nil)
	reservationRepo.On("ListByRack", mock.Anything, uint(1)).Return([]*rack.Reservation{}, nil)

	uc := NewGetRackElevationUseCase(rackRepo, deviceRepo, reservationRepo, log)

	slots, err := uc.Execute(context.Background(), GetRackElevationQuery{RackID: 1})

	require.NoError(t, err)
	require.Len(t, slots, 4)
	// Ascending racks render top unit first.
	assert.Equal(t, 4, slots[0].Unit)
	assert.Equal(t, 1, slots[3].Unit)
	assert.False(t, slots[0].Occupied)
	assert.True(t, slots[2].Occupied)
	assert.True(t, slots[3].Occupied)
	require.NotNil(t, slots[3].Device)
	assert.Equal(t, uint(10), slots[3].Device.ID)

	rackRepo.AssertExpectations(t)
	deviceRepo.AssertExpectations(t)
	reservationRepo.AssertExpectations(t)
}

func TestGetRackElevationUseCase_Execute_OverlapIsConflict(t *testing.T) {
	rackRepo := new(mockRackRepository)
	deviceRepo := new(mockDeviceRepository)
	reservationRepo := new(mockReservationRepository)
	log := quietLogger()

	rackRepo.On("GetByID", mock.Anything, uint(1)).Return(fixtureRack(t, 4), nil)
	deviceRepo.On("ListByRack", mock.Anything, uint(1)).Return([]*rack.Device{
		fixtureDevice(t, 10, 1, 2, vo.FaceFront),
		fixtureDevice(t, 11, 2, 2, vo.FaceFront),
	}, nil)
	reservationRepo.On("ListByRack", mock.Anything, uint(1)).Return([]*rack.Reservation{}, nil)

	uc := NewGetRackElevationUseCase(rackRepo, deviceRepo, reservationRepo, log)

	slots, err := uc.Execute(context.Background(), GetRackElevationQuery{RackID: 1})

	assert.Nil(t, slots)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestGetRackElevationUseCase_Execute_RackNotFound(t *testing.T) {
	rackRepo := new(mockRackRepository)
	deviceRepo := new(mockDeviceRepository)
	reservationRepo := new(mockReservationRepository)
	log := quietLogger()

	rackRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, nil)

	uc := NewGetRackElevationUseCase(rackRepo, deviceRepo, reservationRepo, log)

	slots, err := uc.Execute(context.Background(), GetRackElevationQuery{RackID: 99})

	assert.Nil(t, slots)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}

func TestGetRackElevationUseCase_Execute_InvalidFace(t *testing.T) {
	uc := NewGetRackElevationUseCase(new(mockRackRepository), new(mockDeviceRepository),
		new(mockReservationRepository), quietLogger())

	slots, err := uc.Execute(context.Background(), GetRackElevationQuery{RackID: 1, Face: "sideways"})

	assert.Nil(t, slots)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}
