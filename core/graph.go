package core

import "sort"

// AddEdge inserts a directed edge from→to with the given capacity, creating
// either vertex on first reference. Inserting an ordered pair that already
// carries an original edge merges by summing capacities into that edge and
// returns its id, so the graph never holds parallel forward edges.
//
// Errors: ErrEmptyVertexID, ErrSelfLoop, ErrNegativeCapacity, or ErrFrozen
// once AddReverseEdges has run.
//
// Complexity: O(log deg(from) + deg(from)) for the ordered insert.
func (g *Graph) AddEdge(from, to string, capacity int64) (EdgeID, error) {
	// 1) Validate labels and capacity before touching any state.
	if from == "" || to == "" {
		return NoEdge, ErrEmptyVertexID
	}
	if from == to {
		return NoEdge, ErrSelfLoop
	}
	if capacity < 0 {
		return NoEdge, ErrNegativeCapacity
	}
	// 1a) Topology is immutable once residual companions exist.
	if g.frozen {
		return NoEdge, ErrFrozen
	}

	// 2) Register both endpoints as vertices.
	g.addVertex(from)
	g.addVertex(to)

	// 3) Merge when the ordered pair repeats.
	if id, ok := g.forward[from][to]; ok {
		g.edges[id].Capacity += capacity
		return id, nil
	}

	// 4) Append a fresh edge to the arena and index it.
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{
		ID:       id,
		From:     from,
		To:       to,
		Capacity: capacity,
		Pair:     NoEdge,
	})
	if g.forward[from] == nil {
		g.forward[from] = make(map[string]EdgeID)
	}
	g.forward[from][to] = id
	g.insertOrdered(from, id)

	return id, nil
}

// addVertex registers a label, keeping HasVertex and Vertices in sync.
func (g *Graph) addVertex(label string) {
	if _, ok := g.out[label]; !ok {
		g.out[label] = nil
	}
}

// insertOrdered places id into out[v], preserving (To, ID) ascending order.
func (g *Graph) insertOrdered(v string, id EdgeID) {
	list := g.out[v]
	to := g.edges[id].To
	i := sort.Search(len(list), func(i int) bool {
		other := g.edges[list[i]]
		if other.To != to {
			return other.To > to
		}
		return other.ID > id
	})
	list = append(list, NoEdge)
	copy(list[i+1:], list[i:])
	list[i] = id
	g.out[v] = list
}

// HasVertex reports whether label was ever referenced by an edge.
// Complexity: O(1)
func (g *Graph) HasVertex(label string) bool {
	_, ok := g.out[label]
	return ok
}

// Vertices returns every vertex label in ascending order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	vs := make([]string, 0, len(g.out))
	for v := range g.out {
		vs = append(vs, v)
	}
	sort.Strings(vs)
	return vs
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int { return len(g.out) }

// EdgeCount returns the arena size, reverse edges included once built.
// Complexity: O(1)
func (g *Graph) EdgeCount() int { return len(g.edges) }

// OutEdges returns v's outgoing edge ids sorted ascending by (target label,
// edge id). The slice is a fresh copy; callers may reorder it freely.
// Complexity: O(deg(v))
func (g *Graph) OutEdges(v string) []EdgeID {
	list := g.out[v]
	ids := make([]EdgeID, len(list))
	copy(ids, list)
	return ids
}

// Edge returns a value copy of the edge at id.
// Complexity: O(1)
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, ErrEdgeNotFound
	}
	return g.edges[id], nil
}

// Edges returns value copies of every edge, ascending by id.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	es := make([]Edge, len(g.edges))
	copy(es, g.edges)
	return es
}

// OriginalEdges returns the non-reverse edge ids in result order: source
// label ascending, then (target label, id) ascending within each source.
// This is the order external writers present per-edge flow assignments in.
// Complexity: O(V log V + E)
func (g *Graph) OriginalEdges() []EdgeID {
	ids := make([]EdgeID, 0, len(g.edges))
	for _, v := range g.Vertices() {
		for _, id := range g.out[v] {
			if !g.edges[id].Reverse {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
