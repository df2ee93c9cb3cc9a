package flow

import "github.com/katalvlaran/lvlflow/core"

// searchFrame tracks one vertex on the DFS stack: its out-edges and the
// cursor of the next edge to try. The cursor counts down, so edges are
// visited in reverse (target, id) order, highest target label first, which
// is the tie-break among otherwise equal choices.
type searchFrame struct {
	vertex string
	edges  []core.EdgeID
	next   int
}

// newFrame snapshots v's ordered out-edges with the cursor on the last entry.
func newFrame(g *core.Graph, v string) searchFrame {
	edges := g.OutEdges(v)
	return searchFrame{vertex: v, edges: edges, next: len(edges) - 1}
}

// FindPath locates one augmenting path source→sink over edges with positive
// residual capacity, or reports that none exists.
//
// The search is depth-first with an explicit frame stack. An edge is taken
// when its capacity is positive and its target is not already on the current
// path; reaching the sink returns the accumulated prefix plus that edge
// immediately. A frame whose edges are exhausted is popped, its vertex
// released from the visited set, and the edge that led to it discarded.
//
// The visited set is scoped to this call and seeded with the source, so a
// returned path never repeats a vertex (simple-path guarantee), searches
// leak no state into the graph or each other, and a vertex refused on one
// prefix may be taken again on another within the same call. With
// source == sink no path is ever found, since the sink is pre-visited.
//
// Steps:
//  1. Seed the visited set with source and push its frame.
//  2. Advance the top frame's cursor past saturated or visited targets.
//  3. Take an edge: return on sink, otherwise mark and push the target.
//  4. Exhausted frame: pop, release its vertex, drop the incoming edge.
//
// Complexity:
//
//	Time:   O(V + E) per call.
//	Memory: O(V + E) for the frames' edge snapshots, path, and visited set.
func FindPath(g *core.Graph, source, sink string) (Path, bool) {
	if g == nil {
		return nil, false
	}

	// 1) Transient search state, discarded when this call returns.
	visited := map[string]bool{source: true}
	path := make(Path, 0, g.VertexCount())
	stack := []searchFrame{newFrame(g, source)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// 2) Advance the cursor to the next admissible edge.
		descended := false
		for top.next >= 0 {
			id := top.edges[top.next]
			top.next--

			e, _ := g.Edge(id)
			if e.Capacity <= 0 || visited[e.To] {
				continue
			}

			// 3) Take the edge.
			path = append(path, id)
			if e.To == sink {
				return path, true
			}
			visited[e.To] = true
			stack = append(stack, newFrame(g, e.To))
			descended = true
			break
		}

		// 4) Backtrack once the frame has nothing admissible left.
		if !descended {
			last := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				delete(visited, last.vertex)
				path = path[:len(path)-1]
			}
		}
	}

	return nil, false
}
