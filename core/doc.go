// Package core provides the capacitated graph underlying every lvlflow
// solve: an arena of edges with paired reverse companions, deterministic
// adjacency order, and constant-time symmetric flow updates.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Directed, integer-capacitated edges only: no weights-vs-capacities
//     ambiguity, no undirected mirroring
//   - Edges live in a flat arena ([]Edge) indexed by dense EdgeID; an edge
//     references its residual partner by index (Pair), never by pointer
//   - Vertices are bare string labels created on first reference; search
//     state never touches the graph, so independent solves on independent
//     graphs need no coordination
//   - One forward edge per ordered vertex pair: duplicate AddEdge calls
//     merge by summing capacities
//   - Topology freezes when AddReverseEdges runs; afterwards only Augment
//     and Reset may touch the arena
//
// Why an arena?
//
//   - No cyclic ownership: a pair is two indices into the same slice,
//     trivially serializable and copyable
//   - Deterministic iteration: OutEdges is sorted by (target, id), and
//     Vertices/OriginalEdges return stable orders, so path selection and
//     printed results reproduce run to run
//   - Cheap invariants: Augment maintains Capacity+pair.Capacity and
//     Flow == -pair.Flow mechanically, in O(1), with no bookkeeping pass
//
// Core methods:
//
//	// Construction
//	NewGraph() *Graph                                   // O(1)
//	AddEdge(from, to string, capacity int64) (EdgeID, error) // merge on repeat
//	AddReverseEdges()                                   // idempotent; freezes topology
//
//	// Query
//	HasVertex(label string) bool        // O(1)
//	Vertices() []string                 // sorted, O(V log V)
//	OutEdges(v string) []EdgeID         // (To, ID) ascending, fresh copy
//	Edge(id EdgeID) (Edge, error)       // value copy, O(1)
//	Edges() []Edge                      // arena copy, ascending id
//	OriginalEdges() []EdgeID            // result order, reverse edges excluded
//	VertexCount() int / EdgeCount() int // O(1)
//	ResidualBuilt() bool                // O(1)
//
//	// Mutation after freeze
//	Augment(id EdgeID, amount int64) error // symmetric pair update, O(1)
//	Reset()                                // back to pre-solve state, O(E)
//
// Errors:
//
//	ErrEmptyVertexID    – zero-length vertex label
//	ErrSelfLoop         – edge endpoints coincide
//	ErrNegativeCapacity – capacity below zero
//	ErrFrozen           – AddEdge after AddReverseEdges
//	ErrEdgeNotFound     – EdgeID outside the arena
//	ErrNotResidual      – Augment before pairing
//	ErrNegativeAmount   – negative augmentation
//	ErrCapacityExceeded – over-capacity augmentation (wrapped in *CapacityError)
//
// Invariants after AddReverseEdges, preserved by every Augment:
//
//	g.Edge(g.Edge(id).Pair).Pair == id          (pairing is mutual)
//	edge.Capacity + pair.Capacity == original    (per-pair conservation)
//	edge.Flow == -pair.Flow                      (antisymmetry)
//	0 ≤ edge.Capacity                            (never clamped, errors instead)
package core
