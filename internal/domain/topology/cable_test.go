package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "patchbay/internal/domain/topology/valueobjects"
)

func TestNewCable(t *testing.T) {
	a := term(vo.KindInterface, 1)
	b := term(vo.KindInterface, 2)

	t.Run("should create cable successfully", func(t *testing.T) {
		cable, err := NewCable(a, b, vo.CableStatusConnected, "uplink", 3, vo.LengthUnitMeter, []string{"copper"})
		require.NoError(t, err)
		assert.Equal(t, a, cable.TerminationA())
		assert.Equal(t, b, cable.TerminationB())
		assert.Equal(t, vo.CableStatusConnected, cable.Status())
		assert.Equal(t, "uplink", cable.Label())
		assert.InDelta(t, 3.0, cable.LengthMeters(), 1e-9)
	})

	t.Run("should normalize imperial lengths to meters", func(t *testing.T) {
		cable, err := NewCable(a, b, vo.CableStatusConnected, "", 10, vo.LengthUnitFoot, nil)
		require.NoError(t, err)
		assert.InDelta(t, 3.048, cable.LengthMeters(), 1e-9)
	})

	t.Run("should fail when both ends are the same termination", func(t *testing.T) {
		cable, err := NewCable(a, a, vo.CableStatusConnected, "", 0, "", nil)
		assert.Error(t, err)
		assert.Nil(t, cable)
	})

	t.Run("should fail on invalid status", func(t *testing.T) {
		_, err := NewCable(a, b, "unplugged", "", 0, "", nil)
		assert.Error(t, err)
	})

	t.Run("should fail on negative length", func(t *testing.T) {
		_, err := NewCable(a, b, vo.CableStatusConnected, "", -1, vo.LengthUnitMeter, nil)
		assert.Error(t, err)
	})

	t.Run("should fail on invalid termination end", func(t *testing.T) {
		_, err := NewCable(Termination{Kind: "bogus", ID: 3}, b, vo.CableStatusConnected, "", 0, "", nil)
		assert.Error(t, err)
	})
}

func TestCable_OppositeEnd(t *testing.T) {
	a := term(vo.KindInterface, 1)
	b := term(vo.KindFrontPort, 2)
	cable, err := NewCable(a, b, vo.CableStatusConnected, "", 0, "", nil)
	require.NoError(t, err)

	far, err := cable.OppositeEnd(a)
	require.NoError(t, err)
	assert.Equal(t, b, far)

	far, err = cable.OppositeEnd(b)
	require.NoError(t, err)
	assert.Equal(t, a, far)

	_, err = cable.OppositeEnd(term(vo.KindInterface, 99))
	assert.Error(t, err)
}

func TestCable_SetID(t *testing.T) {
	cable, err := NewCable(term(vo.KindInterface, 1), term(vo.KindInterface, 2), vo.CableStatusConnected, "", 0, "", nil)
	require.NoError(t, err)

	require.NoError(t, cable.SetID(7))
	assert.Equal(t, uint(7), cable.ID())
	assert.Error(t, cable.SetID(8), "ID may only be set once")
}
