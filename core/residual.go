package core

// AddReverseEdges gives every original edge lacking a partner a companion
// edge target→source with zero capacity and zero flow, links both Pair
// indices, and freezes the topology.
//
// Idempotent: edges that already carry a partner are skipped. That also
// covers graphs holding both a→b and b→a as input edges: each receives its
// own fresh companion; opposite originals are never paired with each other,
// so their capacities stay independent.
//
// Steps:
//  1. Snapshot the arena length; companions appended past it are already
//     paired at birth and never re-examined.
//  2. For each unpaired edge, append its reverse companion and insert it
//     into the target vertex's ordered adjacency.
//  3. Latch the frozen flag.
//
// Complexity: O(E · deg) for the ordered adjacency inserts.
func (g *Graph) AddReverseEdges() {
	n := len(g.edges)
	for id := EdgeID(0); int(id) < n; id++ {
		if g.edges[id].Pair != NoEdge {
			continue
		}
		from, to := g.edges[id].From, g.edges[id].To
		rev := EdgeID(len(g.edges))
		g.edges = append(g.edges, Edge{
			ID:      rev,
			From:    to,
			To:      from,
			Reverse: true,
			Pair:    id,
		})
		g.edges[id].Pair = rev
		g.insertOrdered(to, rev)
	}
	g.frozen = true
}

// ResidualBuilt reports whether AddReverseEdges has run.
// Complexity: O(1)
func (g *Graph) ResidualBuilt() bool { return g.frozen }

// Augment pushes amount units of flow across the edge at id and withdraws
// the same amount from its reverse partner:
//
//	edge.Flow += amount; edge.Capacity -= amount
//	pair.Flow -= amount; pair.Capacity += amount
//
// The per-pair capacity sum is untouched, so residual conservation holds by
// construction, and Flow == -pair.Flow stays exact.
//
// Errors: ErrEdgeNotFound, ErrNotResidual before pairing, ErrNegativeAmount,
// or a *CapacityError (wrapping ErrCapacityExceeded) when amount exceeds the
// edge's remaining capacity. On error the graph is left unmodified.
//
// Complexity: O(1)
func (g *Graph) Augment(id EdgeID, amount int64) error {
	if id < 0 || int(id) >= len(g.edges) {
		return ErrEdgeNotFound
	}
	e := &g.edges[id]
	if e.Pair == NoEdge {
		return ErrNotResidual
	}
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount > e.Capacity {
		return &CapacityError{ID: id, From: e.From, To: e.To, Residual: e.Capacity, Amount: amount}
	}

	p := &g.edges[e.Pair]
	e.Flow += amount
	e.Capacity -= amount
	p.Flow -= amount
	p.Capacity += amount

	return nil
}

// Reset restores every pair to its pre-solve state: the original edge takes
// back the pair's whole capacity, the companion returns to zero, and both
// flows clear. The topology stays frozen, so the same network can be solved
// again from scratch. Before AddReverseEdges, Reset only clears flows.
// Complexity: O(E)
func (g *Graph) Reset() {
	for id := range g.edges {
		e := &g.edges[id]
		if e.Reverse {
			continue // restored through its original partner
		}
		e.Flow = 0
		if e.Pair == NoEdge {
			continue
		}
		p := &g.edges[e.Pair]
		e.Capacity += p.Capacity
		p.Capacity = 0
		p.Flow = 0
	}
}
