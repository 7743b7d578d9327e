package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"patchbay/internal/domain/topology"
	vo "patchbay/internal/domain/topology/valueobjects"
	"patchbay/internal/shared/errors"
)

func TestConnectCableUseCase_Execute_Success(t *testing.T) {
	repo := new(mockCableRepository)
	log := quietLogger()

	repo.On("GetByTermination", mock.Anything, mock.AnythingOfType("topology.Termination")).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*topology.Cable")).
		Run(func(args mock.Arguments) {
			cable := args.Get(1).(*topology.Cable)
			_ = cable.SetID(7)
		}).
		Return(nil)

	uc := NewConnectCableUseCase(repo, log)

	result, err := uc.Execute(context.Background(), ConnectCableCommand{
		EndA:   CableEnd{Kind: "interface", ID: 1},
		EndB:   CableEnd{Kind: "interface", ID: 2},
		Length: 3, LengthUnit: "m",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(7), result.ID)
	assert.Equal(t, "connected", result.Status)
	assert.Equal(t, 3.0, result.LengthMeters)

	repo.AssertExpectations(t)
}

func TestConnectCableUseCase_Execute_TerminationOccupied(t *testing.T) {
	repo := new(mockCableRepository)
	log := quietLogger()

	endA := topology.Termination{Kind: vo.KindInterface, ID: 1}
	other := topology.Termination{Kind: vo.KindInterface, ID: 9}
	existing, err := topology.NewCable(endA, other, vo.CableStatusConnected, "", 0, "", nil)
	require.NoError(t, err)
	require.NoError(t, existing.SetID(3))

	repo.On("GetByTermination", mock.Anything, endA).Return(existing, nil)

	uc := NewConnectCableUseCase(repo, log)

	result, err := uc.Execute(context.Background(), ConnectCableCommand{
		EndA: CableEnd{Kind: "interface", ID: 1},
		EndB: CableEnd{Kind: "interface", ID: 2},
	})

	assert.Nil(t, result)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	assert.Equal(t, topology.ErrTerminationInUse.Error(), appErr.Message)

	repo.AssertExpectations(t)
}

func TestConnectCableUseCase_Execute_InvalidCable(t *testing.T) {
	repo := new(mockCableRepository)
	log := quietLogger()

	repo.On("GetByTermination", mock.Anything, mock.AnythingOfType("topology.Termination")).Return(nil, nil)

	uc := NewConnectCableUseCase(repo, log)

	// Both ends on the same termination.
	result, err := uc.Execute(context.Background(), ConnectCableCommand{
		EndA: CableEnd{Kind: "interface", ID: 1},
		EndB: CableEnd{Kind: "interface", ID: 1},
	})

	assert.Nil(t, result)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}
