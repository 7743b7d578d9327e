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

func TestTraceCablePathUseCase_Execute_SingleCable(t *testing.T) {
	reader := new(mockReader)
	log := quietLogger()

	start := topology.Termination{Kind: vo.KindInterface, ID: 1}
	far := topology.Termination{Kind: vo.KindInterface, ID: 2}

	cable, err := topology.NewCable(start, far, vo.CableStatusConnected, "", 0, "", nil)
	require.NoError(t, err)
	require.NoError(t, cable.SetID(100))

	reader.On("CableFor", mock.Anything, start).Return(cable, nil)
	reader.On("OppositeEnd", mock.Anything, cable, start).Return(far, nil)
	// The far end's lookup finds the same cable again; the trace must not
	// walk back across it.
	reader.On("CableFor", mock.Anything, far).Return(cable, nil)

	uc := NewTraceCablePathUseCase(reader, log)

	paths, err := uc.Execute(context.Background(), TraceCablePathQuery{Kind: "interface", ID: 1})

	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.True(t, paths[0].IsComplete)
	assert.False(t, paths[0].CycleDetected)
	require.Len(t, paths[0].Hops, 1)
	assert.Equal(t, uint(100), paths[0].Hops[0].Cable.ID)
	require.NotNil(t, paths[0].Endpoint)
	assert.Equal(t, uint(2), paths[0].Endpoint.ID)

	reader.AssertExpectations(t)
}

func TestTraceCablePathUseCase_Execute_UnsupportedKind(t *testing.T) {
	reader := new(mockReader)
	log := quietLogger()

	uc := NewTraceCablePathUseCase(reader, log)

	paths, err := uc.Execute(context.Background(), TraceCablePathQuery{Kind: "garbage", ID: 1})

	assert.Nil(t, paths)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)

	reader.AssertExpectations(t)
}

func TestTraceCablePathUseCase_Execute_MalformedMapping(t *testing.T) {
	reader := new(mockReader)
	log := quietLogger()

	front := topology.Termination{Kind: vo.KindFrontPort, ID: 5}
	rear := topology.Termination{Kind: vo.KindRearPort, ID: 9}

	reader.On("CableFor", mock.Anything, front).Return(nil, nil)
	// Mapped position 3 on a rear port that declares only 2.
	reader.On("FrontPortRear", mock.Anything, uint(5)).
		Return(topology.RearPortLink{Position: 3, Termination: rear}, nil)
	reader.On("RearPortPositions", mock.Anything, uint(9)).Return(2, nil)

	uc := NewTraceCablePathUseCase(reader, log)

	paths, err := uc.Execute(context.Background(), TraceCablePathQuery{Kind: "front_port", ID: 5})

	assert.Nil(t, paths)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeUnprocessable, appErr.Type)

	reader.AssertExpectations(t)
}
