package rack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "patchbay/internal/domain/rack/valueobjects"
)

func zeroTime() time.Time {
	return time.Time{}
}

func TestNewRack(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := NewRack("r1", 1, 42, false)
		require.NoError(t, err)
		assert.Equal(t, uint(0), r.ID())
		assert.Equal(t, 42, r.UHeight())
	})

	t.Run("rejects bad height", func(t *testing.T) {
		_, err := NewRack("r1", 1, 0, false)
		assert.Error(t, err)
		_, err = NewRack("r1", 1, 101, false)
		assert.Error(t, err)
	})

	t.Run("rejects missing name or site", func(t *testing.T) {
		_, err := NewRack("", 1, 42, false)
		assert.Error(t, err)
		_, err = NewRack("r1", 0, 42, false)
		assert.Error(t, err)
	})
}

func TestRack_SetID(t *testing.T) {
	r, err := NewRack("r1", 1, 42, false)
	require.NoError(t, err)
	require.NoError(t, r.SetID(7))
	assert.Error(t, r.SetID(8))
}

func TestRack_Units(t *testing.T) {
	r, err := NewRack("r1", 1, 3, false)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, r.Units())

	desc, err := NewRack("r2", 1, 3, true)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, desc.Units())
}

func TestRack_Contains(t *testing.T) {
	r, err := NewRack("r1", 1, 4, false)
	require.NoError(t, err)
	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(0))
	assert.False(t, r.Contains(5))
}

func TestNewDevice(t *testing.T) {
	t.Run("racked", func(t *testing.T) {
		d, err := NewDevice("sw1", 1, 2, 3, 2, vo.FaceFront, true, nil)
		require.NoError(t, err)
		assert.True(t, d.IsRacked())
		assert.Equal(t, 4, d.TopUnit())
	})

	t.Run("unracked skips position checks", func(t *testing.T) {
		d, err := NewDevice("spare", 1, 0, 0, 1, "", false, nil)
		require.NoError(t, err)
		assert.False(t, d.IsRacked())
	})

	t.Run("rejects zero height", func(t *testing.T) {
		_, err := NewDevice("sw1", 1, 2, 3, 0, vo.FaceFront, false, nil)
		assert.Error(t, err)
	})

	t.Run("rejects racked device without position or face", func(t *testing.T) {
		_, err := NewDevice("sw1", 1, 2, 0, 1, vo.FaceFront, false, nil)
		assert.Error(t, err)
		_, err = NewDevice("sw1", 1, 2, 3, 1, "sideways", false, nil)
		assert.Error(t, err)
	})
}

func TestNewReservation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := NewReservation(1, []int{2, 3}, "netops", "expansion")
		require.NoError(t, err)
		assert.True(t, r.Covers(2))
		assert.False(t, r.Covers(4))
	})

	t.Run("rejects empty or duplicate units", func(t *testing.T) {
		_, err := NewReservation(1, nil, "netops", "")
		assert.Error(t, err)
		_, err = NewReservation(1, []int{2, 2}, "netops", "")
		assert.Error(t, err)
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		_, err := NewReservation(1, []int{2}, "", "")
		assert.Error(t, err)
	})

	t.Run("units returns a copy", func(t *testing.T) {
		r, err := NewReservation(1, []int{2, 3}, "netops", "")
		require.NoError(t, err)
		units := r.Units()
		units[0] = 99
		assert.Equal(t, []int{2, 3}, r.Units())
	})
}

func TestFace(t *testing.T) {
	assert.True(t, vo.FaceFront.IsValid())
	assert.False(t, vo.Face("top").IsValid())
	assert.Equal(t, vo.FaceRear, vo.FaceFront.Opposite())
	assert.Equal(t, vo.FaceFront, vo.FaceRear.Opposite())
}
