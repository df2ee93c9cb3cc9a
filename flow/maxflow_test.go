package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlflow/core"
	"github.com/katalvlaran/lvlflow/flow"
)

// MaxFlowSuite exercises the driver end to end on canonical networks.
type MaxFlowSuite struct {
	suite.Suite
}

// arc is a shorthand for building test networks.
type arc struct {
	from, to string
	capacity int64
}

// TestChainBottleneck verifies the two-edge chain: the tighter downstream
// edge caps the whole chain.
func (s *MaxFlowSuite) TestChainBottleneck() {
	g, caps := buildNetwork(s.T(), []arc{
		{"S", "A", 3},
		{"A", "T", 2},
	})

	total, err := flow.MaxFlow(g, "S", "T", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), total)

	for id := range caps {
		require.Equal(s.T(), int64(2), edgeAt(s.T(), g, id).Flow)
	}

	assertConservation(s.T(), g, "S", "T", total)
	assertPairInvariants(s.T(), g, caps)
}

// TestParallelPaths verifies two disjoint branches combine their bottlenecks.
func (s *MaxFlowSuite) TestParallelPaths() {
	g, caps := buildNetwork(s.T(), []arc{
		{"S", "A", 3},
		{"A", "T", 2},
		{"S", "B", 2},
		{"B", "T", 3},
	})

	total, err := flow.MaxFlow(g, "S", "T", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), total)

	assertConservation(s.T(), g, "S", "T", total)
	assertPairInvariants(s.T(), g, caps)
}

// TestDisconnectedSink verifies an unreachable sink yields zero flow and an
// untouched assignment.
func (s *MaxFlowSuite) TestDisconnectedSink() {
	g, caps := buildNetwork(s.T(), []arc{
		{"S", "A", 5},
		{"B", "T", 3},
	})

	total, err := flow.MaxFlow(g, "S", "T", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), total)

	for id := range caps {
		require.Equal(s.T(), int64(0), edgeAt(s.T(), g, id).Flow)
	}
	assertConservation(s.T(), g, "S", "T", total)
}

// TestRerouteThroughReverseEdge forces the second augmentation to travel a
// reverse companion, canceling flow the first round committed.
func (s *MaxFlowSuite) TestRerouteThroughReverseEdge() {
	// Depth-first order sends round one S→b→a→T, saturating b→a. The only
	// way to route S→a afterwards is through the companion of b→a.
	g, caps := buildNetwork(s.T(), []arc{
		{"S", "a", 1},
		{"S", "b", 1},
		{"b", "a", 1},
		{"a", "T", 1},
		{"b", "T", 1},
	})
	ba := findArc(s.T(), g, "b", "a")

	rec := &recordingTracer{}
	opts := flow.DefaultOptions()
	opts.Tracer = rec

	total, err := flow.MaxFlow(g, "S", "T", opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), total)

	// the detour was committed, then fully canceled
	require.Equal(s.T(), int64(0), edgeAt(s.T(), g, ba).Flow)

	// round two really traversed a reverse companion
	require.Len(s.T(), rec.paths, 2)
	reroute := rec.paths[1]
	var usedReverse bool
	for _, id := range reroute {
		if edgeAt(s.T(), g, id).Reverse {
			usedReverse = true
		}
	}
	require.True(s.T(), usedReverse, "second path must use a reverse companion")

	assertConservation(s.T(), g, "S", "T", total)
	assertPairInvariants(s.T(), g, caps)
}

// TestCrossBranchNetwork verifies a five-edge network whose optimum needs
// all three routes, including the A→B cross edge.
func (s *MaxFlowSuite) TestCrossBranchNetwork() {
	g, caps := buildNetwork(s.T(), []arc{
		{"S", "A", 3},
		{"S", "B", 2},
		{"A", "B", 2},
		{"A", "T", 2},
		{"B", "T", 3},
	})

	total, err := flow.MaxFlow(g, "S", "T", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), total)

	assertConservation(s.T(), g, "S", "T", total)
	assertPairInvariants(s.T(), g, caps)
}

// TestValidationErrors covers every configuration failure, surfaced before
// any algorithmic work.
func (s *MaxFlowSuite) TestValidationErrors() {
	g, _ := buildNetwork(s.T(), []arc{{"S", "T", 1}})

	_, err := flow.MaxFlow(nil, "S", "T", flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrGraphNil)

	_, err = flow.MaxFlow(g, "X", "T", flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)

	_, err = flow.MaxFlow(g, "S", "Z", flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrSinkNotFound)

	_, err = flow.MaxFlow(g, "S", "S", flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrSourceIsSink)

	// validation must leave the graph untouched
	require.False(s.T(), g.ResidualBuilt())
}

// TestDeterministicAcrossRuns verifies equal totals and equal per-edge
// assignments for independently built copies of the same input, and for a
// Reset graph solved again.
func (s *MaxFlowSuite) TestDeterministicAcrossRuns() {
	arcs := []arc{
		{"S", "A", 3},
		{"S", "B", 2},
		{"A", "B", 2},
		{"A", "T", 2},
		{"B", "T", 3},
	}

	first, _ := buildNetwork(s.T(), arcs)
	second, _ := buildNetwork(s.T(), arcs)

	totalFirst, err := flow.MaxFlow(first, "S", "T", flow.DefaultOptions())
	require.NoError(s.T(), err)
	totalSecond, err := flow.MaxFlow(second, "S", "T", flow.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), totalFirst, totalSecond)
	require.Equal(s.T(), assignment(s.T(), first), assignment(s.T(), second))

	// reset and re-solve reproduces the run exactly
	first.Reset()
	totalAgain, err := flow.MaxFlow(first, "S", "T", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), totalFirst, totalAgain)
	require.Equal(s.T(), assignment(s.T(), second), assignment(s.T(), first))
}

// TestIterationLimit verifies the defensive bound trips with the partial
// total of the rounds that did run.
func (s *MaxFlowSuite) TestIterationLimit() {
	g, _ := buildNetwork(s.T(), []arc{
		{"S", "A", 3},
		{"A", "T", 2},
		{"S", "B", 2},
		{"B", "T", 3},
	})

	opts := flow.DefaultOptions()
	opts.MaxIterations = 1

	total, err := flow.MaxFlow(g, "S", "T", opts)
	require.ErrorIs(s.T(), err, flow.ErrIterationLimit)
	require.Equal(s.T(), int64(2), total, "one full round must have been applied")
}

// TestTracerEventOrderAndMonotonicity verifies the event protocol and that
// the running total strictly increases by each bottleneck.
func (s *MaxFlowSuite) TestTracerEventOrderAndMonotonicity() {
	g, _ := buildNetwork(s.T(), []arc{
		{"S", "A", 3},
		{"S", "B", 2},
		{"A", "B", 2},
		{"A", "T", 2},
		{"B", "T", 3},
	})

	rec := &recordingTracer{}
	opts := flow.DefaultOptions()
	opts.Tracer = rec

	total, err := flow.MaxFlow(g, "S", "T", opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), total)

	want := []string{"residual", "path", "augment", "path", "augment", "path", "augment", "done"}
	require.Equal(s.T(), want, rec.events)

	var running int64
	for i, b := range rec.bottlenecks {
		require.Positive(s.T(), b, "every bottleneck must be positive")
		running += b
		require.Equal(s.T(), running, rec.totals[i], "total must grow by exactly the bottleneck")
	}
	require.Equal(s.T(), total, running)
	require.Equal(s.T(), total, rec.doneTotal)
}

// TestPairInvariantsEveryRound re-checks the residual invariants after
// construction and after every single augmentation, not just at the end.
func (s *MaxFlowSuite) TestPairInvariantsEveryRound() {
	g, caps := buildNetwork(s.T(), []arc{
		{"S", "A", 3},
		{"S", "B", 2},
		{"A", "B", 2},
		{"A", "T", 2},
		{"B", "T", 3},
	})

	opts := flow.DefaultOptions()
	opts.Tracer = &invariantTracer{t: s.T(), originals: caps}

	_, err := flow.MaxFlow(g, "S", "T", opts)
	require.NoError(s.T(), err)
}

// Entry point for running the suite
func TestMaxFlowSuite(t *testing.T) {
	suite.Run(t, new(MaxFlowSuite))
}

//
// Helpers methods
// // // // // // // // // //

// buildNetwork adds the arcs to a fresh graph and records each original
// edge's total input capacity (merge-aware).
func buildNetwork(t *testing.T, arcs []arc) (*core.Graph, map[core.EdgeID]int64) {
	t.Helper()
	g := core.NewGraph()
	caps := make(map[core.EdgeID]int64, len(arcs))
	for _, a := range arcs {
		id, err := g.AddEdge(a.from, a.to, a.capacity)
		require.NoError(t, err)
		caps[id] += a.capacity
	}
	return g, caps
}

// edgeAt fetches an edge value, failing the test on a bad id.
func edgeAt(t *testing.T, g *core.Graph, id core.EdgeID) core.Edge {
	t.Helper()
	e, err := g.Edge(id)
	require.NoError(t, err)
	return e
}

// findArc locates the original edge from→to.
func findArc(t *testing.T, g *core.Graph, from, to string) core.EdgeID {
	t.Helper()
	for _, id := range g.OriginalEdges() {
		e := edgeAt(t, g, id)
		if e.From == from && e.To == to {
			return id
		}
	}
	t.Fatalf("no original edge %s→%s", from, to)
	return core.NoEdge
}

// assignment snapshots the per-original-edge flows in result order.
func assignment(t *testing.T, g *core.Graph) []int64 {
	t.Helper()
	ids := g.OriginalEdges()
	flows := make([]int64, 0, len(ids))
	for _, id := range ids {
		flows = append(flows, edgeAt(t, g, id).Flow)
	}
	return flows
}

// assertConservation verifies the boundary and internal conservation laws
// over the original (externally visible) edges.
func assertConservation(t *testing.T, g *core.Graph, source, sink string, total int64) {
	t.Helper()
	balance := make(map[string]int64, g.VertexCount())
	for _, id := range g.OriginalEdges() {
		e := edgeAt(t, g, id)
		balance[e.From] += e.Flow
		balance[e.To] -= e.Flow
	}
	for v, b := range balance {
		switch v {
		case source:
			require.Equal(t, total, b, "source must emit the total")
		case sink:
			require.Equal(t, -total, b, "sink must absorb the total")
		default:
			require.Zero(t, b, "internal vertex %q must conserve flow", v)
		}
	}
}

// assertPairInvariants verifies, for every original edge: mutual pairing,
// flow antisymmetry, per-pair capacity conservation against the capacities
// recorded at build time, and the flow bounds.
func assertPairInvariants(t *testing.T, g *core.Graph, originals map[core.EdgeID]int64) {
	t.Helper()
	for id, orig := range originals {
		e := edgeAt(t, g, id)
		require.NotEqual(t, core.NoEdge, e.Pair)

		p := edgeAt(t, g, e.Pair)
		require.Equal(t, id, p.Pair, "pairing must be mutual")
		require.Equal(t, e.Flow, -p.Flow, "pair flows must be antisymmetric")
		require.Equal(t, orig, e.Capacity+p.Capacity, "pair capacity sum must equal the original")
		require.GreaterOrEqual(t, e.Flow, int64(0))
		require.LessOrEqual(t, e.Flow, orig)
		require.GreaterOrEqual(t, e.Capacity, int64(0))
		require.GreaterOrEqual(t, p.Capacity, int64(0))
	}
}

// recordingTracer captures the driver's event stream for order, path, and
// monotonicity assertions.
type recordingTracer struct {
	events      []string
	paths       []flow.Path
	bottlenecks []int64
	totals      []int64
	doneTotal   int64
}

func (r *recordingTracer) ResidualReady(*core.Graph) {
	r.events = append(r.events, "residual")
}

func (r *recordingTracer) PathFound(_ *core.Graph, p flow.Path) {
	r.events = append(r.events, "path")
	cp := make(flow.Path, len(p))
	copy(cp, p)
	r.paths = append(r.paths, cp)
}

func (r *recordingTracer) Augmented(_ *core.Graph, _ flow.Path, bottleneck, total int64) {
	r.events = append(r.events, "augment")
	r.bottlenecks = append(r.bottlenecks, bottleneck)
	r.totals = append(r.totals, total)
}

func (r *recordingTracer) Done(total int64) {
	r.events = append(r.events, "done")
	r.doneTotal = total
}

// invariantTracer re-asserts the pair invariants at every event that can
// change residual state.
type invariantTracer struct {
	t         *testing.T
	originals map[core.EdgeID]int64
}

func (it *invariantTracer) ResidualReady(g *core.Graph) {
	assertPairInvariants(it.t, g, it.originals)
}

func (it *invariantTracer) PathFound(*core.Graph, flow.Path) {}

func (it *invariantTracer) Augmented(g *core.Graph, _ flow.Path, _, _ int64) {
	assertPairInvariants(it.t, g, it.originals)
}

func (it *invariantTracer) Done(int64) {}
