package flow

import (
	"fmt"

	"github.com/katalvlaran/lvlflow/core"
)

// ErrGraphNil is returned when the graph argument is nil.
var ErrGraphNil = fmt.Errorf("flow: %w", errGraphNil)
var errGraphNil = fmt.Errorf("graph is nil")

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink vertex not found")

// ErrSourceIsSink is returned when source and sink name the same vertex.
var ErrSourceIsSink = fmt.Errorf("flow: %w", errSourceIsSink)
var errSourceIsSink = fmt.Errorf("source and sink must differ")

// ErrEmptyPath is returned for bottleneck or apply over an empty path.
var ErrEmptyPath = fmt.Errorf("flow: %w", errEmptyPath)
var errEmptyPath = fmt.Errorf("path is empty")

// ErrIterationLimit is returned when the optional augmentation bound trips.
var ErrIterationLimit = fmt.Errorf("flow: %w", errIterationLimit)
var errIterationLimit = fmt.Errorf("augmentation iteration limit exceeded")

// Path is an ordered sequence of edge ids forming a directed walk in which
// each edge's target is the next edge's source. Paths are transient: the
// driver recomputes one per augmentation round and never persists them.
type Path []core.EdgeID

// Vertices expands the path into its vertex sequence: the first edge's
// source followed by every edge's target.
//
// Errors: ErrGraphNil, ErrEmptyPath, or a wrapped core.ErrEdgeNotFound on
// a foreign id.
//
// Complexity: O(len(p))
func (p Path) Vertices(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(p) == 0 {
		return nil, ErrEmptyPath
	}

	vs := make([]string, 0, len(p)+1)
	for i, id := range p {
		e, err := g.Edge(id)
		if err != nil {
			return nil, fmt.Errorf("flow: path index %d: %w", i, err)
		}
		if i == 0 {
			vs = append(vs, e.From)
		}
		vs = append(vs, e.To)
	}

	return vs, nil
}

// Options configures the max-flow driver.
//   - Tracer: diagnostic side-channel receiving residual construction, path
//     discovery, and augmentation events. Nil disables tracing.
//   - MaxIterations: defensive bound on augmentation rounds; zero or
//     negative means unbounded.
type Options struct {
	Tracer        Tracer
	MaxIterations int
}

// DefaultOptions returns production-safe defaults: no tracing, unbounded
// augmentation.
func DefaultOptions() Options {
	return Options{}
}

// normalize fills defaults so the driver never branches on nil.
func (o *Options) normalize() {
	if o.Tracer == nil {
		o.Tracer = nopTracer{}
	}
	if o.MaxIterations < 0 {
		o.MaxIterations = 0
	}
}
