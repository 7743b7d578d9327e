package topology

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "patchbay/internal/domain/topology/valueobjects"
)

func TestLinkResolver_ResolveCable(t *testing.T) {
	a := term(vo.KindInterface, 1)
	b := term(vo.KindInterface, 2)

	t.Run("returns cable and opposite end", func(t *testing.T) {
		reader := newFakeReader()
		cable := mustCable(t, 10, a, b, vo.CableStatusConnected)
		reader.connect(cable)

		resolver := NewLinkResolver(reader)
		got, far, err := resolver.ResolveCable(context.Background(), a, nil)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, uint(10), got.ID())
		require.NotNil(t, far)
		assert.Equal(t, b, *far)
	})

	t.Run("symmetric from either end", func(t *testing.T) {
		reader := newFakeReader()
		reader.connect(mustCable(t, 10, a, b, vo.CableStatusConnected))

		resolver := NewLinkResolver(reader)
		_, far, err := resolver.ResolveCable(context.Background(), b, nil)
		require.NoError(t, err)
		require.NotNil(t, far)
		assert.Equal(t, a, *far)
	})

	t.Run("no cable yields empty result", func(t *testing.T) {
		resolver := NewLinkResolver(newFakeReader())
		cable, far, err := resolver.ResolveCable(context.Background(), a, nil)
		require.NoError(t, err)
		assert.Nil(t, cable)
		assert.Nil(t, far)
	})

	t.Run("non-connected status yields empty result", func(t *testing.T) {
		reader := newFakeReader()
		reader.connect(mustCable(t, 10, a, b, vo.CableStatusDecommissioning))

		resolver := NewLinkResolver(reader)
		cable, far, err := resolver.ResolveCable(context.Background(), a, nil)
		require.NoError(t, err)
		assert.Nil(t, cable)
		assert.Nil(t, far)
	})

	t.Run("excluded arrival cable yields empty result", func(t *testing.T) {
		reader := newFakeReader()
		cable := mustCable(t, 10, a, b, vo.CableStatusConnected)
		reader.connect(cable)

		resolver := NewLinkResolver(reader)
		got, far, err := resolver.ResolveCable(context.Background(), b, cable)
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Nil(t, far)
	})

	t.Run("rejects unclassifiable termination", func(t *testing.T) {
		resolver := NewLinkResolver(newFakeReader())
		_, _, err := resolver.ResolveCable(context.Background(), Termination{Kind: "bogus", ID: 1}, nil)

		var kindErr *UnsupportedTerminationKindError
		assert.ErrorAs(t, err, &kindErr)
	})
}

func TestLinkResolver_ExpandRearPort(t *testing.T) {
	rear := term(vo.KindRearPort, 100)

	t.Run("returns front ports ordered by position", func(t *testing.T) {
		reader := newFakeReader()
		reader.rearPositions[rear.ID] = 2
		reader.frontsForRear[rear.ID] = []FrontPortLink{
			{Position: 1, Termination: term(vo.KindFrontPort, 201)},
			{Position: 2, Termination: term(vo.KindFrontPort, 202)},
		}

		resolver := NewLinkResolver(reader)
		positions, fronts, err := resolver.ExpandRearPort(context.Background(), rear)
		require.NoError(t, err)
		assert.Equal(t, 2, positions)
		require.Len(t, fronts, 2)
		assert.Equal(t, 1, fronts[0].Position)
		assert.Equal(t, 2, fronts[1].Position)
	})

	t.Run("rejects position outside declared range", func(t *testing.T) {
		reader := newFakeReader()
		reader.rearPositions[rear.ID] = 2
		reader.frontsForRear[rear.ID] = []FrontPortLink{
			{Position: 3, Termination: term(vo.KindFrontPort, 201)},
		}

		resolver := NewLinkResolver(reader)
		_, _, err := resolver.ExpandRearPort(context.Background(), rear)

		var mapErr *MalformedPatchMappingError
		require.ErrorAs(t, err, &mapErr)
		assert.Equal(t, 3, mapErr.Position)
		assert.Equal(t, 2, mapErr.Positions)
	})

	t.Run("rejects non-rear-port termination", func(t *testing.T) {
		resolver := NewLinkResolver(newFakeReader())
		_, _, err := resolver.ExpandRearPort(context.Background(), term(vo.KindInterface, 1))

		var kindErr *UnsupportedTerminationKindError
		assert.ErrorAs(t, err, &kindErr)
	})
}

func TestLinkResolver_ResolveFrontPort(t *testing.T) {
	front := term(vo.KindFrontPort, 200)
	rear := term(vo.KindRearPort, 100)

	t.Run("maps to the paired rear port position", func(t *testing.T) {
		reader := newFakeReader()
		reader.rearPositions[rear.ID] = 4
		reader.frontRear[front.ID] = RearPortLink{Position: 3, Termination: rear}

		resolver := NewLinkResolver(reader)
		link, err := resolver.ResolveFrontPort(context.Background(), front)
		require.NoError(t, err)
		assert.Equal(t, 3, link.Position)
		assert.Equal(t, rear, link.Termination)
	})

	t.Run("rejects position outside declared range", func(t *testing.T) {
		reader := newFakeReader()
		reader.rearPositions[rear.ID] = 2
		reader.frontRear[front.ID] = RearPortLink{Position: 0, Termination: rear}

		resolver := NewLinkResolver(reader)
		_, err := resolver.ResolveFrontPort(context.Background(), front)

		var mapErr *MalformedPatchMappingError
		assert.ErrorAs(t, err, &mapErr)
	})
}

func TestLinkResolver_ResolveCircuitPair(t *testing.T) {
	ctA := term(vo.KindCircuitTermination, 50)
	ctZ := term(vo.KindCircuitTermination, 51)

	t.Run("returns the opposite side", func(t *testing.T) {
		reader := newFakeReader()
		reader.circuitPairs[ctA.ID] = &ctZ

		resolver := NewLinkResolver(reader)
		pair, err := resolver.ResolveCircuitPair(context.Background(), ctA)
		require.NoError(t, err)
		require.NotNil(t, pair)
		assert.Equal(t, ctZ, *pair)
	})

	t.Run("single-sided circuit has no pair", func(t *testing.T) {
		resolver := NewLinkResolver(newFakeReader())
		pair, err := resolver.ResolveCircuitPair(context.Background(), ctA)
		require.NoError(t, err)
		assert.Nil(t, pair)
	})
}
