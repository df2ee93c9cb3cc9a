package flow

import "github.com/katalvlaran/lvlflow/core"

// MaxFlow computes the maximum feasible flow from source to sink in g using
// depth-first augmenting paths over the residual graph.
//
// The driver is a two-state loop: after residual construction it repeats
// search rounds, measuring each found path (Bottleneck) and applying it
// (Apply) into the running total, and the first failed search is the normal
// termination. The final per-edge assignment stays on g and is read through
// g.OriginalEdges and g.Edge; reverse companions never appear in externally
// visible results.
//
// It returns:
//   - total : the maximum flow value
//   - err   : a validation sentinel, ErrIterationLimit, or a wrapped
//     invariant violation from Bottleneck/Apply
//
// Steps:
//  1. Validate: nil graph, missing source, missing sink, equal endpoints.
//  2. Normalize options (installs the no-op tracer when none given).
//  3. Build reverse companions (idempotent) and fire ResidualReady.
//  4. Repeat until no augmenting path:
//     a. FindPath source→sink; break when not found.
//     b. Trip ErrIterationLimit when this round would exceed the optional
//     bound; a solve completing within the bound never trips it.
//     c. Fire PathFound; compute the bottleneck.
//     d. Apply the bottleneck symmetrically along the path.
//     e. Accumulate the total and fire Augmented.
//  5. Fire Done and return the total.
//
// Complexity:
//
//	Time:   O(E · F) where F is the total flow pushed (integer capacities);
//	        path selection is depth-first, so no polynomial round bound.
//	Memory: O(V + E) per search round beyond the graph itself.
func MaxFlow(g *core.Graph, source, sink string, opts Options) (total int64, err error) {
	// 1) Validate configuration before any algorithmic work.
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return 0, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, ErrSinkNotFound
	}
	if source == sink {
		return 0, ErrSourceIsSink
	}

	// 2) Normalize options so the loop never branches on nil.
	opts.normalize()

	// 3) Reverse companions; an already-frozen graph passes through as-is.
	g.AddReverseEdges()
	opts.Tracer.ResidualReady(g)

	var (
		path       Path
		found      bool
		bottleneck int64
	)

	// 4) Augment until no path remains.
	for round := 0; ; round++ {
		// 4a) One depth-first search over the current residual state.
		if path, found = FindPath(g, source, sink); !found {
			break
		}

		// 4b) The found path would begin round MaxIterations+1; abort with
		// the partial total before emitting any event for it.
		if opts.MaxIterations > 0 && round >= opts.MaxIterations {
			return total, ErrIterationLimit
		}
		opts.Tracer.PathFound(g, path)

		// 4c) The amount this path can carry.
		if bottleneck, err = Bottleneck(g, path); err != nil {
			return total, err
		}

		// 4d) Symmetric update along the path.
		if err = Apply(g, path, bottleneck); err != nil {
			return total, err
		}

		// 4e) Accumulate and report.
		total += bottleneck
		opts.Tracer.Augmented(g, path, bottleneck, total)
	}

	// 5) Normal termination: no augmenting path remains.
	opts.Tracer.Done(total)

	return total, nil
}
