// Package flow computes maximum flow over lvlflow's capacitated graphs
// using the Ford–Fulkerson method: depth-first augmenting paths over a
// residual graph of paired forward/reverse edges.
//
// The engine is split along its natural seams, each piece usable on its own:
//
//   - FindPath: iterative depth-first search with an explicit frame stack.
//     Edges leave each vertex in reverse (target, id) order, so path
//     selection is deterministic and reproducible. The visited set is
//     scoped to the call: no marker ever touches the graph, a returned
//     path never repeats a vertex, and independent searches cannot see
//     each other.
//   - Bottleneck: minimum residual capacity along a non-empty path.
//   - Apply: pushes that amount across every path edge and withdraws it
//     from each reverse companion (core.Augment), which is what makes
//     committed flow cancelable in later rounds.
//   - MaxFlow: the driver loop. Build residual companions once, then
//     repeat {search → bottleneck → apply} until the search fails. Total
//     time is O(E · F) with F the flow pushed; depth-first selection
//     carries no shortest-path round bound.
//
// # Determinism
//
// Edges are tried highest-target-label first (ties to the higher edge id),
// so which augmenting path wins when several exist is fixed by the input,
// and totals, per-edge assignments, and traces reproduce run to run.
//
// # Tracing
//
// Options.Tracer is an injectable diagnostic side-channel with no effect on
// results. The driver fires ResidualReady once, (PathFound, Augmented) per
// round, and Done at normal termination. NewLogTracer adapts any logrus
// logger; the per-edge residual dump after each augmentation logs at debug
// level.
//
// # API
//
//	opts := flow.DefaultOptions()       // no tracing, unbounded rounds
//	total, err := flow.MaxFlow(g, "s", "t", opts)
//
// Options:
//
//	type Options struct {
//	    Tracer        Tracer // diagnostic side-channel; nil disables
//	    MaxIterations int    // defensive round bound; 0 = unbounded
//	}
//
// The solved assignment stays on the graph: g.OriginalEdges() lists the
// input edges in result order and g.Edge(id).Flow carries each final value.
// g.Reset() returns the network to its pre-solve state for another run.
//
// # Errors
//
//	ErrGraphNil       - nil graph argument.
//	ErrSourceNotFound - source vertex missing from the graph.
//	ErrSinkNotFound   - sink vertex missing from the graph.
//	ErrSourceIsSink   - source and sink name the same vertex.
//	ErrEmptyPath      - Bottleneck/Apply over an empty path.
//	ErrIterationLimit - optional MaxIterations bound exceeded.
//
// Invariant violations inside a round (over-capacity push, foreign edge id)
// surface wrapped with their path index and edge context; they signal a
// defective caller and abort the solve with the partial total.
//
// # Integration
//
//   - Relies on github.com/katalvlaran/lvlflow/core for storage, ordering,
//     and the symmetric pair update.
//   - netio reads/writes the networks this package solves; netgen fabricates
//     reproducible ones for tests and benchmarks.
package flow
