package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "patchbay/internal/domain/topology/valueobjects"
)

func TestNewPort(t *testing.T) {
	t.Run("should create plain port", func(t *testing.T) {
		port, err := NewPort(1, "eth0", vo.KindInterface)
		require.NoError(t, err)
		assert.Equal(t, vo.KindInterface, port.Kind())
		assert.Equal(t, "eth0", port.Name())
	})

	t.Run("should reject patch kinds", func(t *testing.T) {
		_, err := NewPort(1, "fp1", vo.KindFrontPort)
		assert.Error(t, err)
	})

	t.Run("should reject circuit termination kind", func(t *testing.T) {
		_, err := NewPort(1, "ct", vo.KindCircuitTermination)
		assert.Error(t, err)
	})

	t.Run("should require device and name", func(t *testing.T) {
		_, err := NewPort(0, "eth0", vo.KindInterface)
		assert.Error(t, err)
		_, err = NewPort(1, "", vo.KindInterface)
		assert.Error(t, err)
	})
}

func TestNewRearPort(t *testing.T) {
	t.Run("should create rear port with positions", func(t *testing.T) {
		port, err := NewRearPort(1, "rp1", 6)
		require.NoError(t, err)
		assert.Equal(t, 6, port.Positions())
	})

	t.Run("should reject zero positions", func(t *testing.T) {
		_, err := NewRearPort(1, "rp1", 0)
		assert.Error(t, err)
	})
}

func TestNewFrontPort(t *testing.T) {
	t.Run("should create front port with mapping", func(t *testing.T) {
		port, err := NewFrontPort(1, "fp1", 9, 3)
		require.NoError(t, err)
		assert.Equal(t, uint(9), port.RearPortID())
		assert.Equal(t, 3, port.RearPortPosition())
	})

	t.Run("should require a rear port", func(t *testing.T) {
		_, err := NewFrontPort(1, "fp1", 0, 1)
		assert.Error(t, err)
	})

	t.Run("should reject position below 1", func(t *testing.T) {
		_, err := NewFrontPort(1, "fp1", 9, 0)
		assert.Error(t, err)
	})
}

func TestPort_ValidateMapping(t *testing.T) {
	rear, err := NewRearPort(1, "rp1", 2)
	require.NoError(t, err)
	require.NoError(t, rear.SetID(9))

	t.Run("valid mapping passes", func(t *testing.T) {
		front, err := NewFrontPort(1, "fp1", 9, 2)
		require.NoError(t, err)
		require.NoError(t, front.SetID(10))
		assert.NoError(t, front.ValidateMapping(rear))
	})

	t.Run("position beyond declared count is malformed", func(t *testing.T) {
		front, err := NewFrontPort(1, "fp1", 9, 3)
		require.NoError(t, err)
		require.NoError(t, front.SetID(11))

		err = front.ValidateMapping(rear)
		var mapErr *MalformedPatchMappingError
		require.ErrorAs(t, err, &mapErr)
		assert.Equal(t, uint(9), mapErr.RearPortID)
		assert.Equal(t, 3, mapErr.Position)
		assert.Equal(t, 2, mapErr.Positions)
	})

	t.Run("mismatched rear port is rejected", func(t *testing.T) {
		other, err := NewRearPort(1, "rp2", 2)
		require.NoError(t, err)
		require.NoError(t, other.SetID(99))

		front, err := NewFrontPort(1, "fp1", 9, 1)
		require.NoError(t, err)
		assert.Error(t, front.ValidateMapping(other))
	})
}

func TestPort_Termination(t *testing.T) {
	port, err := NewPort(1, "console0", vo.KindConsolePort)
	require.NoError(t, err)
	require.NoError(t, port.SetID(42))

	ref := port.Termination()
	assert.Equal(t, vo.KindConsolePort, ref.Kind)
	assert.Equal(t, uint(42), ref.ID)
	assert.Equal(t, "console0", ref.Label)
}
