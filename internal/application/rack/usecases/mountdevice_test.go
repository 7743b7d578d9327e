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

func fixtureSite(t *testing.T) *rack.Site {
	t.Helper()
	s, err := rack.ReconstructSite(1, "dc1", "dc1", time.Time{}, time.Time{})
	require.NoError(t, err)
	return s
}

func TestMountDeviceUseCase_Execute_Success(t *testing.T) {
	deviceRepo := new(mockDeviceRepository)
	rackRepo := new(mockRackRepository)
	siteRepo := new(mockSiteRepository)
	log := quietLogger()

	siteRepo.On("GetByID", mock.Anything, uint(1)).Return(fixtureSite(t), nil)
	rackRepo.On("GetByID", mock.Anything, uint(1)).Return(fixtureRack(t, 4), nil)
	deviceRepo.On("ListByRack", mock.Anything, uint(1)).Return([]*rack.Device{}, nil)
	deviceRepo.On("Create", mock.Anything, mock.AnythingOfType("*rack.Device")).
		Run(func(args mock.Arguments) {
			d := args.Get(1).(*rack.Device)
			_ = d.SetID(42)
		}).
		Return(nil)

	uc := NewMountDeviceUseCase(deviceRepo, rackRepo, siteRepo, log)

	device, err := uc.Execute(context.Background(), MountDeviceCommand{
		Name: "sw1", SiteID: 1, RackID: 1, Position: 2, Height: 2, Face: "front",
	})

	require.NoError(t, err)
	require.NotNil(t, device)
	assert.Equal(t, uint(42), device.ID)

	deviceRepo.AssertExpectations(t)
	rackRepo.AssertExpectations(t)
	siteRepo.AssertExpectations(t)
}

func TestMountDeviceUseCase_Execute_FootprintCollision(t *testing.T) {
	deviceRepo := new(mockDeviceRepository)
	rackRepo := new(mockRackRepository)
	siteRepo := new(mockSiteRepository)
	log := quietLogger()

	siteRepo.On("GetByID", mock.Anything, uint(1)).Return(fixtureSite(t), nil)
	rackRepo.On("GetByID", mock.Anything, uint(1)).Return(fixtureRack(t, 4), nil)
	deviceRepo.On("ListByRack", mock.Anything, uint(1)).
		Return([]*rack.Device{fixtureDevice(t, 10, 1, 2, vo.FaceFront)}, nil)

	uc := NewMountDeviceUseCase(deviceRepo, rackRepo, siteRepo, log)

	device, err := uc.Execute(context.Background(), MountDeviceCommand{
		Name: "sw2", SiteID: 1, RackID: 1, Position: 2, Height: 2, Face: "front",
	})

	assert.Nil(t, device)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)

	deviceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMountDeviceUseCase_Execute_FootprintOutsideRack(t *testing.T) {
	deviceRepo := new(mockDeviceRepository)
	rackRepo := new(mockRackRepository)
	siteRepo := new(mockSiteRepository)
	log := quietLogger()

	siteRepo.On("GetByID", mock.Anything, uint(1)).Return(fixtureSite(t), nil)
	rackRepo.On("GetByID", mock.Anything, uint(1)).Return(fixtureRack(t, 4), nil)

	uc := NewMountDeviceUseCase(deviceRepo, rackRepo, siteRepo, log)

	// Top unit 5 of a 4U rack.
	device, err := uc.Execute(context.Background(), MountDeviceCommand{
		Name: "sw3", SiteID: 1, RackID: 1, Position: 4, Height: 2, Face: "front",
	})

	assert.Nil(t, device)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestMountDeviceUseCase_Execute_UnrackedDevice(t *testing.T) {
	deviceRepo := new(mockDeviceRepository)
	rackRepo := new(mockRackRepository)
	siteRepo := new(mockSiteRepository)
	log := quietLogger()

	siteRepo.On("GetByID", mock.Anything, uint(1)).Return(fixtureSite(t), nil)
	deviceRepo.On("Create", mock.Anything, mock.AnythingOfType("*rack.Device")).
		Run(func(args mock.Arguments) {
			d := args.Get(1).(*rack.Device)
			_ = d.SetID(43)
		}).
		Return(nil)

	uc := NewMountDeviceUseCase(deviceRepo, rackRepo, siteRepo, log)

	device, err := uc.Execute(context.Background(), MountDeviceCommand{
		Name: "spare", SiteID: 1, Height: 1,
	})

	require.NoError(t, err)
	require.NotNil(t, device)

	// No rack lookups for a device that is not mounted.
	rackRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
