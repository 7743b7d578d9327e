package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "patchbay/internal/domain/topology/valueobjects"
)

func TestClassify(t *testing.T) {
	t.Run("valid reference", func(t *testing.T) {
		kind, err := Classify(term(vo.KindPowerOutlet, 5))
		require.NoError(t, err)
		assert.Equal(t, vo.KindPowerOutlet, kind)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Classify(Termination{Kind: "usb_hub", ID: 5})
		var kindErr *UnsupportedTerminationKindError
		assert.ErrorAs(t, err, &kindErr)
	})

	t.Run("zero identifier", func(t *testing.T) {
		_, err := Classify(term(vo.KindInterface, 0))
		assert.Error(t, err)
	})
}

func TestCapabilitiesFor(t *testing.T) {
	cases := []struct {
		kind        vo.TerminationKind
		passThrough bool
		fanOut      bool
	}{
		{vo.KindConsolePort, false, false},
		{vo.KindConsoleServerPort, false, false},
		{vo.KindPowerPort, false, false},
		{vo.KindPowerOutlet, false, false},
		{vo.KindInterface, false, false},
		{vo.KindPowerFeed, false, false},
		{vo.KindFrontPort, true, false},
		{vo.KindRearPort, true, true},
		{vo.KindCircuitTermination, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			caps := CapabilitiesFor(tc.kind)
			assert.Equal(t, tc.passThrough, caps.PassThrough)
			assert.Equal(t, tc.fanOut, caps.FanOut)
		})
	}
}
