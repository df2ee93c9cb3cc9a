package netio

import (
	"github.com/katalvlaran/lvlflow/core"
)

// Network bundles a capacity graph with the endpoints a solve runs between.
type Network struct {
	Graph  *core.Graph
	Source string
	Sink   string
}

// originalCapacity reconstructs an edge's input capacity from its residual
// split. Before the residual build the edge still carries it whole.
func originalCapacity(g *core.Graph, e core.Edge) (int64, error) {
	if e.Pair == core.NoEdge {
		return e.Capacity, nil
	}
	p, err := g.Edge(e.Pair)
	if err != nil {
		return 0, err
	}
	return e.Capacity + p.Capacity, nil
}
