package rack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "patchbay/internal/domain/rack/valueobjects"
)

func mustRack(t *testing.T, uHeight int, descUnits bool) *Rack {
	t.Helper()
	r, err := ReconstructRack(1, "r1", 1, uHeight, descUnits, zeroTime(), zeroTime())
	require.NoError(t, err)
	return r
}

func mounted(id uint, name string, position, height int, face vo.Face, fullDepth bool) MountedDevice {
	return MountedDevice{ID: id, Name: name, Position: position, Height: height, Face: face, FullDepth: fullDepth}
}

func TestBuildElevation_FillsEveryUnit(t *testing.T) {
	r := mustRack(t, 4, false)
	devices := []MountedDevice{
		mounted(10, "a", 1, 2, vo.FaceFront, false),
		mounted(20, "b", 3, 1, vo.FaceFront, false),
	}

	slots, err := BuildElevation(r, vo.FaceFront, devices, nil)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	// Display order runs from the top of the rack down.
	assert.Equal(t, []int{4, 3, 2, 1}, []int{slots[0].Unit, slots[1].Unit, slots[2].Unit, slots[3].Unit})

	assert.False(t, slots[0].Occupied)
	assert.Nil(t, slots[0].Device)

	require.NotNil(t, slots[1].Device)
	assert.Equal(t, uint(20), slots[1].Device.ID)

	require.NotNil(t, slots[2].Device)
	assert.Equal(t, uint(10), slots[2].Device.ID)
	require.NotNil(t, slots[3].Device)
	assert.Equal(t, uint(10), slots[3].Device.ID)
}

func TestBuildElevation_DescendingUnits(t *testing.T) {
	r := mustRack(t, 3, true)
	slots, err := BuildElevation(r, vo.FaceFront, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, []int{slots[0].Unit, slots[1].Unit, slots[2].Unit})
}

func TestBuildElevation_Overlap(t *testing.T) {
	r := mustRack(t, 4, false)
	devices := []MountedDevice{
		mounted(10, "a", 1, 2, vo.FaceFront, false),
		mounted(20, "b", 2, 2, vo.FaceFront, false),
	}

	_, err := BuildElevation(r, vo.FaceFront, devices, nil)
	var fault *OverlapFault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, 2, fault.Unit)
	assert.Equal(t, uint(10), fault.OtherDeviceID)
	assert.Equal(t, uint(20), fault.DeviceID)
}

func TestBuildElevation_FaceIsolation(t *testing.T) {
	r := mustRack(t, 2, false)
	devices := []MountedDevice{
		mounted(10, "front-only", 1, 1, vo.FaceFront, false),
		mounted(20, "rear-only", 1, 1, vo.FaceRear, false),
	}

	// Half-depth devices at the same position on opposite faces coexist.
	front, err := BuildElevation(r, vo.FaceFront, devices, nil)
	require.NoError(t, err)
	require.NotNil(t, front[1].Device)
	assert.Equal(t, uint(10), front[1].Device.ID)

	rear, err := BuildElevation(r, vo.FaceRear, devices, nil)
	require.NoError(t, err)
	require.NotNil(t, rear[1].Device)
	assert.Equal(t, uint(20), rear[1].Device.ID)
}

func TestBuildElevation_FullDepthOccupiesBothFaces(t *testing.T) {
	r := mustRack(t, 2, false)
	devices := []MountedDevice{
		mounted(10, "switch", 1, 1, vo.FaceFront, true),
	}

	for _, face := range []vo.Face{vo.FaceFront, vo.FaceRear} {
		slots, err := BuildElevation(r, face, devices, nil)
		require.NoError(t, err)
		require.NotNil(t, slots[1].Device)
		assert.Equal(t, uint(10), slots[1].Device.ID)
	}

	// A rear half-depth device colliding with the full-depth footprint is an
	// overlap on the rear face.
	devices = append(devices, mounted(20, "patch", 1, 1, vo.FaceRear, false))
	_, err := BuildElevation(r, vo.FaceRear, devices, nil)
	var fault *OverlapFault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, 1, fault.Unit)
}

func TestBuildElevation_ReservedUnits(t *testing.T) {
	r := mustRack(t, 3, false)
	res, err := ReconstructReservation(5, r.ID(), []int{2, 3}, "netops", "expansion", zeroTime(), zeroTime())
	require.NoError(t, err)
	devices := []MountedDevice{mounted(10, "a", 3, 1, vo.FaceFront, false)}

	slots, berr := BuildElevation(r, vo.FaceFront, devices, []*Reservation{res})
	require.NoError(t, berr)

	// Unit 3 is occupied, so the reservation flag yields to the device.
	assert.True(t, slots[0].Occupied)
	assert.False(t, slots[0].Reserved)
	assert.True(t, slots[1].Reserved)
	assert.False(t, slots[2].Reserved)
}

func TestBuildElevation_OutOfRange(t *testing.T) {
	r := mustRack(t, 4, false)
	devices := []MountedDevice{mounted(10, "a", 4, 2, vo.FaceFront, false)}

	_, err := BuildElevation(r, vo.FaceFront, devices, nil)
	var rangeErr *UnitRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, uint(10), rangeErr.DeviceID)
	assert.Equal(t, 4, rangeErr.UHeight)
}

func TestSummarize(t *testing.T) {
	r := mustRack(t, 5, false)
	devices := []MountedDevice{
		mounted(10, "a", 1, 3, vo.FaceFront, false),
		mounted(20, "b", 5, 1, vo.FaceFront, false),
	}

	slots, err := BuildElevation(r, vo.FaceFront, devices, nil)
	require.NoError(t, err)

	collapsed := Summarize(slots)
	require.Len(t, collapsed, 3)

	assert.Equal(t, 5, collapsed[0].Unit)
	assert.Equal(t, 1, collapsed[0].Height)
	require.NotNil(t, collapsed[0].Device)
	assert.Equal(t, uint(20), collapsed[0].Device.ID)

	assert.Equal(t, 4, collapsed[1].Unit)
	assert.Nil(t, collapsed[1].Device)

	// Device a's three units merge into one slot anchored at its top unit.
	assert.Equal(t, 3, collapsed[2].Unit)
	assert.Equal(t, 3, collapsed[2].Height)
	require.NotNil(t, collapsed[2].Device)
	assert.Equal(t, uint(10), collapsed[2].Device.ID)
}

func TestSummarize_DoesNotMergeDistinctNeighbors(t *testing.T) {
	r := mustRack(t, 2, false)
	devices := []MountedDevice{
		mounted(10, "a", 1, 1, vo.FaceFront, false),
		mounted(20, "b", 2, 1, vo.FaceFront, false),
	}

	slots, err := BuildElevation(r, vo.FaceFront, devices, nil)
	require.NoError(t, err)

	collapsed := Summarize(slots)
	require.Len(t, collapsed, 2)
	assert.Equal(t, 1, collapsed[0].Height)
	assert.Equal(t, 1, collapsed[1].Height)
}

func TestAvailableUnits(t *testing.T) {
	r := mustRack(t, 4, false)
	devices := []MountedDevice{
		mounted(10, "a", 1, 2, vo.FaceFront, false),
		mounted(20, "b", 4, 1, vo.FaceRear, false),
	}

	units, err := AvailableUnits(r, devices, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, units)

	// Excluding a device frees its footprint, as when validating a move.
	units, err = AvailableUnits(r, devices, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, units)
}

func TestAvailableUnits_OutOfRange(t *testing.T) {
	r := mustRack(t, 2, false)
	devices := []MountedDevice{mounted(10, "a", 2, 2, vo.FaceFront, false)}

	_, err := AvailableUnits(r, devices, 0)
	var rangeErr *UnitRangeError
	require.True(t, errors.As(err, &rangeErr))
}
