// Package lvlflow is a maximum-flow engine for directed capacitated
// networks — residual graphs, augmenting paths, and the plumbing to feed
// and drain them.
//
// 🚀 What is lvlflow?
//
//	A small, deterministic Ford–Fulkerson toolkit built from four pieces:
//		• core/   — the capacitated graph: an arena of edges with paired
//		            reverse edges, frozen topology, symmetric flow updates
//		• flow/   — augmenting-path search (iterative DFS), bottleneck,
//		            flow application, the max-flow driver, and a pluggable
//		            Tracer for step-by-step diagnostics
//		• netio/  — text, table and YAML readers/writers for networks and
//		            solve results
//		• netgen/ — seeded random network generation for tests, benches
//		            and demos
//
// ✨ Why choose lvlflow?
//
//   - Deterministic – edge ordering and path selection are reproducible,
//     so results (and traces) are stable across runs
//   - Honest errors – invariant violations surface with the offending
//     edge and amounts, never silently clamped
//   - Arena storage – edges are values indexed by dense ids, pairs are
//     indices, nothing cyclic, everything serializable
//   - Traceable – inject a Tracer and watch every augmentation land
//
// Quick ASCII example:
//
//	    S ──3──▶ A ──2──▶ T
//
//	carries at most 2 units end to end: the A→T edge is the bottleneck.
//
// The lvlflow command wraps it all: `lvlflow solve` reads a network and
// prints the max flow with per-edge assignments; `lvlflow gen` emits
// reproducible random networks.
//
//	go get github.com/katalvlaran/lvlflow
package lvlflow
