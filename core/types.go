// Package core defines the capacitated Graph and Edge types shared by all
// lvlflow packages: a flat arena of edges indexed by EdgeID, per-vertex
// adjacency in deterministic order, and the residual-pair primitives.
//
// This file declares EdgeID, Edge, Graph, sentinel errors, CapacityError,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID    - vertex label is the empty string.
//	ErrSelfLoop         - edge endpoints are the same vertex.
//	ErrNegativeCapacity - edge capacity is below zero.
//	ErrFrozen           - topology mutation after residual construction.
//	ErrEdgeNotFound     - EdgeID outside the arena.
//	ErrNotResidual      - pair operation on an edge with no partner.
//	ErrNegativeAmount   - negative augmentation amount.
//	ErrCapacityExceeded - augmentation exceeds residual capacity.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and augmentation.
var (
	// ErrEmptyVertexID indicates an empty vertex label.
	ErrEmptyVertexID = errors.New("core: vertex label is empty")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeCapacity indicates a negative edge capacity.
	ErrNegativeCapacity = errors.New("core: negative edge capacity")

	// ErrFrozen indicates a topology mutation after AddReverseEdges.
	ErrFrozen = errors.New("core: topology frozen after residual construction")

	// ErrEdgeNotFound indicates an EdgeID outside the arena.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNotResidual indicates a pair operation before residual construction.
	ErrNotResidual = errors.New("core: edge has no reverse partner")

	// ErrNegativeAmount indicates a negative augmentation amount.
	ErrNegativeAmount = errors.New("core: negative augmentation amount")

	// ErrCapacityExceeded indicates an augmentation larger than the remaining
	// residual capacity. Surfaces wrapped inside a *CapacityError.
	ErrCapacityExceeded = errors.New("core: augmentation exceeds residual capacity")
)

// EdgeID indexes an Edge inside its Graph's arena.
type EdgeID int

// NoEdge marks the absence of a paired reverse edge.
const NoEdge EdgeID = -1

// Edge is one directed capacitated arc.
//
// Edges are stored by value in the Graph's arena; Pair holds the arena index
// of the opposite-direction partner (NoEdge until AddReverseEdges runs)
// instead of a raw reference, so nothing in the model is cyclic.
type Edge struct {
	// ID is this edge's arena index.
	ID EdgeID

	// From is the source vertex label.
	From string

	// To is the destination vertex label.
	To string

	// Capacity is the remaining residual capacity. Never negative.
	Capacity int64

	// Flow is the flow carried so far; negative on reverse edges.
	Flow int64

	// Reverse marks an auto-generated residual companion edge.
	Reverse bool

	// Pair is the arena index of the paired opposite edge.
	Pair EdgeID
}

// CapacityError reports an augmentation that would drive an edge's residual
// capacity negative: a malformed or stale path rather than a recoverable
// input condition. It wraps ErrCapacityExceeded for errors.Is matching.
type CapacityError struct {
	ID       EdgeID // offending edge
	From, To string // its endpoints
	Residual int64  // capacity still available
	Amount   int64  // augmentation requested
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("core: augmentation of %d exceeds residual capacity %d on edge %q→%q",
		e.Amount, e.Residual, e.From, e.To)
}

// Unwrap lets errors.Is(err, ErrCapacityExceeded) match through the struct.
func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// Graph is a directed capacitated network: the edge arena plus per-vertex
// adjacency. Vertices are plain string labels created on first reference;
// there is no vertex struct and no per-vertex search state.
//
// A Graph is built once, frozen by AddReverseEdges, and afterwards mutated
// only through Augment (capacities and flows, never topology). It is not
// safe for concurrent use: a solve owns its graph.
type Graph struct {
	edges []Edge // arena; EdgeID indexes into it

	// out[v] lists v's outgoing edge ids sorted ascending by (To, ID).
	out map[string][]EdgeID

	// forward[from][to] locates the original edge for duplicate merging.
	forward map[string]map[string]EdgeID

	frozen bool // latched by AddReverseEdges
}

// NewGraph creates an empty capacitated graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		out:     make(map[string][]EdgeID),
		forward: make(map[string]map[string]EdgeID),
	}
}
