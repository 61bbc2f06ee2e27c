package apsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoplan/stnet/apsp"
	"github.com/chronoplan/stnet/distgraph"
)

// buildWalkthroughGraph constructs the five-event network from the
// scheduling walkthrough (scenario 3): 1->2:[10,20], 2->3:[30,40],
// 4->3:[10,20], 4->5:[40,50], 1->5:[60,70].
func buildWalkthroughGraph(t *testing.T) *distgraph.Graph {
	t.Helper()

	g := distgraph.New()
	for v := distgraph.EventID(1); v <= 5; v++ {
		g.AddVertex(v)
	}

	type constraint struct {
		u, v       distgraph.EventID
		lower, upper float64
	}
	constraints := []constraint{
		{1, 2, 10, 20},
		{2, 3, 30, 40},
		{4, 3, 10, 20},
		{4, 5, 40, 50},
		{1, 5, 60, 70},
	}
	for _, c := range constraints {
		require.NoError(t, g.UpsertEdge(c.u, c.v, c.upper))
		require.NoError(t, g.UpsertEdge(c.v, c.u, -c.lower))
	}

	return g
}

func TestCompileWalkthroughNetwork(t *testing.T) {
	t.Parallel()

	g := buildWalkthroughGraph(t)
	d, err := apsp.Compile(g)
	require.NoError(t, err)

	// interval(1,3) == [40,50]  <=> w*(1->3)=50, w*(3->1)=-40
	w13, ok := d.Weight(1, 3)
	require.True(t, ok)
	assert.Equal(t, 50.0, w13)

	w31, ok := d.Weight(3, 1)
	require.True(t, ok)
	assert.Equal(t, -40.0, w31)

	// interval(4,5) == [40,50] <=> w*(4->5)=50, w*(5->4)=-40
	w45, ok := d.Weight(4, 5)
	require.True(t, ok)
	assert.Equal(t, 50.0, w45)

	w54, ok := d.Weight(5, 4)
	require.True(t, ok)
	assert.Equal(t, -40.0, w54)

	// Self-distance invariant: w*(v,v) = 0 for every event.
	for v := distgraph.EventID(1); v <= 5; v++ {
		wvv, ok := d.Weight(v, v)
		require.True(t, ok)
		assert.Equal(t, 0.0, wvv)
	}
}

func TestCompileExpectedFullClosure(t *testing.T) {
	t.Parallel()

	g := buildWalkthroughGraph(t)
	d, err := apsp.Compile(g)
	require.NoError(t, err)

	// Values pinned against the reference constraint table for this
	// network (also used by the schedule package's interval tests).
	expected := map[[2]distgraph.EventID]float64{
		{1, 1}: 0, {1, 2}: 20, {1, 3}: 50, {1, 4}: 30, {1, 5}: 70,
		{2, 1}: -10, {2, 2}: 0, {2, 3}: 40, {2, 4}: 20, {2, 5}: 60,
		{3, 1}: -40, {3, 2}: -30, {3, 3}: 0, {3, 4}: -10, {3, 5}: 30,
		{4, 1}: -20, {4, 2}: -10, {4, 3}: 20, {4, 4}: 0, {4, 5}: 50,
		{5, 1}: -60, {5, 2}: -50, {5, 3}: -20, {5, 4}: -40, {5, 5}: 0,
	}

	for pair, want := range expected {
		got, ok := d.Weight(pair[0], pair[1])
		require.Truef(t, ok, "missing (%d,%d)", pair[0], pair[1])
		assert.Equalf(t, want, got, "(%d,%d)", pair[0], pair[1])
	}
}

// TestCompileNegativeCycle is scenario 4: adding 3->1:[0,0] to the
// walkthrough network forces a negative cycle.
func TestCompileNegativeCycle(t *testing.T) {
	t.Parallel()

	g := buildWalkthroughGraph(t)
	require.NoError(t, g.UpsertEdge(3, 1, 0))
	require.NoError(t, g.UpsertEdge(1, 3, 0))

	_, err := apsp.Compile(g)
	require.Error(t, err)

	var cycleErr *apsp.NegativeCycleError
	require.ErrorAs(t, err, &cycleErr)
}

func TestCompileEmptyGraph(t *testing.T) {
	t.Parallel()

	g := distgraph.New()
	_, err := apsp.Compile(g)
	assert.ErrorIs(t, err, apsp.ErrEmptyGraph)
}

func TestWeightMissingForUnreachablePair(t *testing.T) {
	t.Parallel()

	g := distgraph.New()
	g.AddVertex(1)
	g.AddVertex(2)
	// No edges at all: 1 and 2 are mutually unreachable.

	d, err := apsp.Compile(g)
	require.NoError(t, err)

	_, ok := d.Weight(1, 2)
	assert.False(t, ok)
}

func TestTriangleInequality(t *testing.T) {
	t.Parallel()

	g := buildWalkthroughGraph(t)
	d, err := apsp.Compile(g)
	require.NoError(t, err)

	nodes := []distgraph.EventID{1, 2, 3, 4, 5}
	for _, a := range nodes {
		for _, b := range nodes {
			for _, c := range nodes {
				wac, okAC := d.Weight(a, c)
				wab, okAB := d.Weight(a, b)
				wbc, okBC := d.Weight(b, c)
				if okAC && okAB && okBC {
					assert.LessOrEqualf(t, wac, wab+wbc, "(%d,%d,%d)", a, b, c)
				}
			}
		}
	}
}

func TestRecompileIsAFixedPoint(t *testing.T) {
	t.Parallel()

	g := buildWalkthroughGraph(t)
	d1, err := apsp.Compile(g)
	require.NoError(t, err)
	d2, err := apsp.Compile(g)
	require.NoError(t, err)

	for _, v := range []distgraph.EventID{1, 2, 3, 4, 5} {
		for _, u := range []distgraph.EventID{1, 2, 3, 4, 5} {
			w1, ok1 := d1.Weight(v, u)
			w2, ok2 := d2.Weight(v, u)
			require.Equal(t, ok1, ok2)
			assert.Equal(t, w1, w2)
		}
	}
}
