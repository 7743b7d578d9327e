package topology

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "patchbay/internal/domain/topology/valueobjects"
)

func zeroTime() time.Time {
	return time.Time{}
}

// fakeReader is an in-memory topology snapshot for tracer tests. CableFor
// answers per termination, so chains are modeled by giving each termination
// the next cable along the run.
type fakeReader struct {
	cables        map[TerminationKey]*Cable
	rearPositions map[uint]int
	frontsForRear map[uint][]FrontPortLink
	frontRear     map[uint]RearPortLink
	circuitPairs  map[uint]*Termination
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		cables:        make(map[TerminationKey]*Cable),
		rearPositions: make(map[uint]int),
		frontsForRear: make(map[uint][]FrontPortLink),
		frontRear:     make(map[uint]RearPortLink),
		circuitPairs:  make(map[uint]*Termination),
	}
}

func (f *fakeReader) CableFor(_ context.Context, t Termination) (*Cable, error) {
	return f.cables[t.Key()], nil
}

func (f *fakeReader) OppositeEnd(_ context.Context, cable *Cable, t Termination) (Termination, error) {
	return cable.OppositeEnd(t)
}

func (f *fakeReader) RearPortPositions(_ context.Context, rearPortID uint) (int, error) {
	return f.rearPositions[rearPortID], nil
}

func (f *fakeReader) FrontPortsForRear(_ context.Context, rearPortID uint) ([]FrontPortLink, error) {
	return f.frontsForRear[rearPortID], nil
}

func (f *fakeReader) FrontPortRear(_ context.Context, frontPortID uint) (RearPortLink, error) {
	return f.frontRear[frontPortID], nil
}

func (f *fakeReader) CircuitPair(_ context.Context, circuitTerminationID uint) (*Termination, error) {
	return f.circuitPairs[circuitTerminationID], nil
}

func term(kind vo.TerminationKind, id uint) Termination {
	return Termination{Kind: kind, ID: id}
}

func mustCable(t *testing.T, id uint, a, b Termination, status vo.CableStatus) *Cable {
	t.Helper()
	cable, err := ReconstructCable(id, a, b, status, "", 0, "", nil, zeroTime(), zeroTime())
	require.NoError(t, err)
	return cable
}

// connect wires a cable into the fake on both ends.
func (f *fakeReader) connect(cable *Cable) {
	f.cables[cable.TerminationA().Key()] = cable
	f.cables[cable.TerminationB().Key()] = cable
}

func TestTracer_NoCable(t *testing.T) {
	reader := newFakeReader()
	tracer := NewTracer(reader)

	start := term(vo.KindInterface, 1)
	paths, err := tracer.Trace(context.Background(), start, TraceOptions{})
	require.NoError(t, err)

	require.Len(t, paths, 1)
	require.Len(t, paths[0].Hops, 1)
	hop := paths[0].Hops[0]
	assert.True(t, hop.IsDeadEnd())
	assert.Equal(t, start, hop.Near)
	assert.False(t, paths[0].CycleDetected)
	assert.False(t, paths[0].IsComplete())
}

func TestTracer_AcyclicChain(t *testing.T) {
	reader := newFakeReader()
	a := term(vo.KindInterface, 1)
	b := term(vo.KindInterface, 2)
	c := term(vo.KindInterface, 3)
	d := term(vo.KindInterface, 4)

	c1 := mustCable(t, 10, a, b, vo.CableStatusConnected)
	c2 := mustCable(t, 11, b, c, vo.CableStatusConnected)
	c3 := mustCable(t, 12, c, d, vo.CableStatusConnected)

	// Each termination answers with the next cable along the run.
	reader.cables[a.Key()] = c1
	reader.cables[b.Key()] = c2
	reader.cables[c.Key()] = c3

	tracer := NewTracer(reader)
	paths, err := tracer.Trace(context.Background(), a, TraceOptions{})
	require.NoError(t, err)

	require.Len(t, paths, 1)
	path := paths[0]
	require.Len(t, path.Hops, 3)
	assert.True(t, path.IsComplete())
	assert.False(t, path.CycleDetected)

	for i := 0; i < len(path.Hops)-1; i++ {
		require.NotNil(t, path.Hops[i].Far)
		assert.Equal(t, *path.Hops[i].Far, path.Hops[i+1].Near,
			"far end of hop %d must equal near end of hop %d", i, i+1)
	}
	require.NotNil(t, path.Endpoint())
	assert.Equal(t, d, *path.Endpoint())
}

func TestTracer_PlannedCableDoesNotPropagate(t *testing.T) {
	reader := newFakeReader()
	a := term(vo.KindInterface, 1)
	b := term(vo.KindInterface, 2)
	reader.connect(mustCable(t, 10, a, b, vo.CableStatusPlanned))

	tracer := NewTracer(reader)
	paths, err := tracer.Trace(context.Background(), a, TraceOptions{})
	require.NoError(t, err)

	require.Len(t, paths, 1)
	require.Len(t, paths[0].Hops, 1)
	assert.True(t, paths[0].Hops[0].IsDeadEnd())
}

func TestTracer_RearPortFanOut(t *testing.T) {
	reader := newFakeReader()
	rear := term(vo.KindRearPort, 100)
	reader.rearPositions[rear.ID] = 3

	var fronts []Termination
	var ifaces []Termination
	for i := uint(1); i <= 3; i++ {
		front := term(vo.KindFrontPort, 200+i)
		iface := term(vo.KindInterface, 300+i)
		reader.frontsForRear[rear.ID] = append(reader.frontsForRear[rear.ID], FrontPortLink{
			Position:    int(i),
			Termination: front,
		})
		reader.frontRear[front.ID] = RearPortLink{Position: int(i), Termination: rear}
		reader.connect(mustCable(t, 400+i, front, iface, vo.CableStatusConnected))
		fronts = append(fronts, front)
		ifaces = append(ifaces, iface)
	}

	tracer := NewTracer(reader)
	paths, err := tracer.Trace(context.Background(), rear, TraceOptions{})
	require.NoError(t, err)

	require.Len(t, paths, 3)
	for i, path := range paths {
		require.Len(t, path.Hops, 2, "path %d", i)
		assert.True(t, path.IsComplete(), "path %d", i)

		passThrough := path.Hops[0]
		assert.True(t, passThrough.IsPassThrough())
		assert.Equal(t, rear, passThrough.Near)
		require.NotNil(t, passThrough.Far)
		assert.Equal(t, fronts[i], *passThrough.Far, "branch order follows position order")

		cableHop := path.Hops[1]
		require.NotNil(t, cableHop.Cable)
		require.NotNil(t, cableHop.Far)
		assert.Equal(t, ifaces[i], *cableHop.Far)
	}
}

func TestTracer_CycleDetected(t *testing.T) {
	reader := newFakeReader()
	a := term(vo.KindInterface, 1)
	b := term(vo.KindInterface, 2)

	c1 := mustCable(t, 10, a, b, vo.CableStatusConnected)
	c2 := mustCable(t, 11, b, a, vo.CableStatusConnected)
	reader.cables[a.Key()] = c1
	reader.cables[b.Key()] = c2

	tracer := NewTracer(reader)
	paths, err := tracer.Trace(context.Background(), a, TraceOptions{})
	require.NoError(t, err)

	require.Len(t, paths, 1)
	path := paths[0]
	assert.True(t, path.CycleDetected)
	// One hop per distinct termination visited before detection.
	assert.Len(t, path.Hops, 2)
}

func TestTracer_CircuitPassThrough(t *testing.T) {
	reader := newFakeReader()
	ctA := term(vo.KindCircuitTermination, 50)
	ctZ := term(vo.KindCircuitTermination, 51)
	iface := term(vo.KindInterface, 1)

	reader.circuitPairs[ctA.ID] = &ctZ
	reader.circuitPairs[ctZ.ID] = &ctA
	reader.connect(mustCable(t, 10, ctZ, iface, vo.CableStatusConnected))

	t.Run("follow circuits traces through to the paired side", func(t *testing.T) {
		tracer := NewTracer(reader)
		paths, err := tracer.Trace(context.Background(), ctA, TraceOptions{FollowCircuits: true})
		require.NoError(t, err)

		require.Len(t, paths, 1)
		path := paths[0]
		require.Len(t, path.Hops, 2)
		assert.True(t, path.Hops[0].IsPassThrough())
		assert.Equal(t, ctZ, *path.Hops[0].Far)
		require.NotNil(t, path.Endpoint())
		assert.Equal(t, iface, *path.Endpoint())
	})

	t.Run("without follow circuits the pair is a dead end", func(t *testing.T) {
		tracer := NewTracer(reader)
		paths, err := tracer.Trace(context.Background(), ctA, TraceOptions{FollowCircuits: false})
		require.NoError(t, err)

		require.Len(t, paths, 1)
		require.Len(t, paths[0].Hops, 1)
		assert.True(t, paths[0].Hops[0].IsDeadEnd())
	})
}

func TestTracer_CircuitWithoutPairIsDeadEnd(t *testing.T) {
	reader := newFakeReader()
	ctA := term(vo.KindCircuitTermination, 50)

	tracer := NewTracer(reader)
	paths, err := tracer.Trace(context.Background(), ctA, TraceOptions{FollowCircuits: true})
	require.NoError(t, err)

	require.Len(t, paths, 1)
	require.Len(t, paths[0].Hops, 1)
	assert.True(t, paths[0].Hops[0].IsDeadEnd())
}

func TestTracer_PatchPanelChain(t *testing.T) {
	// A --c1-- front1 ~ rear1 --c2-- rear2 ~ front2 --c3-- B
	reader := newFakeReader()
	a := term(vo.KindInterface, 1)
	b := term(vo.KindInterface, 2)
	front1 := term(vo.KindFrontPort, 10)
	rear1 := term(vo.KindRearPort, 11)
	rear2 := term(vo.KindRearPort, 12)
	front2 := term(vo.KindFrontPort, 13)

	reader.rearPositions[rear1.ID] = 1
	reader.rearPositions[rear2.ID] = 1
	reader.frontRear[front1.ID] = RearPortLink{Position: 1, Termination: rear1}
	reader.frontRear[front2.ID] = RearPortLink{Position: 1, Termination: rear2}
	reader.frontsForRear[rear1.ID] = []FrontPortLink{{Position: 1, Termination: front1}}
	reader.frontsForRear[rear2.ID] = []FrontPortLink{{Position: 1, Termination: front2}}

	reader.connect(mustCable(t, 20, a, front1, vo.CableStatusConnected))
	reader.connect(mustCable(t, 21, rear1, rear2, vo.CableStatusConnected))
	reader.connect(mustCable(t, 22, front2, b, vo.CableStatusConnected))

	tracer := NewTracer(reader)
	paths, err := tracer.Trace(context.Background(), a, TraceOptions{})
	require.NoError(t, err)

	require.Len(t, paths, 1)
	path := paths[0]
	assert.True(t, path.IsComplete())
	require.Len(t, path.Hops, 5)

	// Cable hops and transparent legs interleave, all recorded.
	assert.NotNil(t, path.Hops[0].Cable)
	assert.True(t, path.Hops[1].IsPassThrough())
	assert.NotNil(t, path.Hops[2].Cable)
	assert.True(t, path.Hops[3].IsPassThrough())
	assert.NotNil(t, path.Hops[4].Cable)

	for i := 0; i < len(path.Hops)-1; i++ {
		assert.Equal(t, *path.Hops[i].Far, path.Hops[i+1].Near)
	}
	assert.Equal(t, b, *path.Endpoint())
}

func TestTracer_UncabledFrontPortIsDeadEndNotCycle(t *testing.T) {
	reader := newFakeReader()
	rear := term(vo.KindRearPort, 100)
	front1 := term(vo.KindFrontPort, 201)
	front2 := term(vo.KindFrontPort, 202)
	iface := term(vo.KindInterface, 301)

	reader.rearPositions[rear.ID] = 2
	reader.frontsForRear[rear.ID] = []FrontPortLink{
		{Position: 1, Termination: front1},
		{Position: 2, Termination: front2},
	}
	reader.frontRear[front1.ID] = RearPortLink{Position: 1, Termination: rear}
	reader.frontRear[front2.ID] = RearPortLink{Position: 2, Termination: rear}
	reader.connect(mustCable(t, 10, front1, iface, vo.CableStatusConnected))
	// front2 stays uncabled

	tracer := NewTracer(reader)
	paths, err := tracer.Trace(context.Background(), rear, TraceOptions{})
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.True(t, paths[0].IsComplete())

	dead := paths[1]
	assert.False(t, dead.CycleDetected, "bouncing back through the pairing is a dead end, not a cycle")
	require.Len(t, dead.Hops, 2)
	assert.True(t, dead.Hops[1].IsDeadEnd())
}

func TestTracer_FanOutBranchesHaveIndependentCycleGuards(t *testing.T) {
	// Both fan-out branches converge on the same downstream termination.
	// With a shared visited set the second branch would be falsely flagged
	// as a cycle.
	reader := newFakeReader()
	rear := term(vo.KindRearPort, 100)
	front1 := term(vo.KindFrontPort, 201)
	front2 := term(vo.KindFrontPort, 202)
	mid := term(vo.KindInterface, 300)
	end := term(vo.KindInterface, 301)

	reader.rearPositions[rear.ID] = 2
	reader.frontsForRear[rear.ID] = []FrontPortLink{
		{Position: 1, Termination: front1},
		{Position: 2, Termination: front2},
	}
	reader.frontRear[front1.ID] = RearPortLink{Position: 1, Termination: rear}
	reader.frontRear[front2.ID] = RearPortLink{Position: 2, Termination: rear}

	c1 := mustCable(t, 10, front1, mid, vo.CableStatusConnected)
	c2 := mustCable(t, 11, front2, mid, vo.CableStatusConnected)
	c3 := mustCable(t, 12, mid, end, vo.CableStatusConnected)
	reader.cables[front1.Key()] = c1
	reader.cables[front2.Key()] = c2
	reader.cables[mid.Key()] = c3

	tracer := NewTracer(reader)
	paths, err := tracer.Trace(context.Background(), rear, TraceOptions{})
	require.NoError(t, err)

	require.Len(t, paths, 2)
	for i, path := range paths {
		assert.True(t, path.IsComplete(), "path %d", i)
		assert.False(t, path.CycleDetected, "path %d", i)
		require.NotNil(t, path.Endpoint())
		assert.Equal(t, end, *path.Endpoint())
	}
}

func TestTracer_MalformedPatchMapping(t *testing.T) {
	reader := newFakeReader()
	a := term(vo.KindInterface, 1)
	front := term(vo.KindFrontPort, 10)
	rear := term(vo.KindRearPort, 11)

	reader.rearPositions[rear.ID] = 2
	reader.frontRear[front.ID] = RearPortLink{Position: 5, Termination: rear}
	reader.connect(mustCable(t, 20, a, front, vo.CableStatusConnected))

	tracer := NewTracer(reader)
	_, err := tracer.Trace(context.Background(), a, TraceOptions{})
	require.Error(t, err)

	var mapErr *MalformedPatchMappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, rear.ID, mapErr.RearPortID)
	assert.Equal(t, 5, mapErr.Position)
	assert.Equal(t, 2, mapErr.Positions)
}

func TestTracer_UnsupportedTerminationKind(t *testing.T) {
	tracer := NewTracer(newFakeReader())

	_, err := tracer.Trace(context.Background(), Termination{Kind: "teleport_pad", ID: 1}, TraceOptions{})
	require.Error(t, err)

	var kindErr *UnsupportedTerminationKindError
	assert.ErrorAs(t, err, &kindErr)
}

func TestTracer_Idempotent(t *testing.T) {
	reader := newFakeReader()
	a := term(vo.KindInterface, 1)
	b := term(vo.KindInterface, 2)
	c := term(vo.KindInterface, 3)
	c1 := mustCable(t, 10, a, b, vo.CableStatusConnected)
	c2 := mustCable(t, 11, b, c, vo.CableStatusConnected)
	reader.cables[a.Key()] = c1
	reader.cables[b.Key()] = c2

	tracer := NewTracer(reader)
	first, err := tracer.Trace(context.Background(), a, TraceOptions{})
	require.NoError(t, err)
	second, err := tracer.Trace(context.Background(), a, TraceOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second, "tracing must not mutate the snapshot or carry state between calls")
}
