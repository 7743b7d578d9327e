package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminationKind_IsValid(t *testing.T) {
	assert.True(t, KindInterface.IsValid())
	assert.True(t, KindCircuitTermination.IsValid())
	assert.False(t, TerminationKind("patch_bay").IsValid())
	assert.False(t, TerminationKind("").IsValid())
}

func TestCableStatus(t *testing.T) {
	assert.True(t, CableStatusConnected.IsConnected())
	assert.False(t, CableStatusPlanned.IsConnected())
	assert.False(t, CableStatusDecommissioning.IsConnected())
	assert.False(t, CableStatus("ready").IsValid())
}

func TestLengthUnit_Normalize(t *testing.T) {
	assert.InDelta(t, 2.5, LengthUnitMeter.Normalize(2.5), 1e-9)
	assert.InDelta(t, 0.5, LengthUnitCentimeter.Normalize(50), 1e-9)
	assert.InDelta(t, 0.3048, LengthUnitFoot.Normalize(1), 1e-9)
	assert.InDelta(t, 0.0254, LengthUnitInch.Normalize(1), 1e-9)
	assert.False(t, LengthUnit("yd").IsValid())
}
