package flow

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlflow/core"
)

// Tracer receives the driver's diagnostic events. Implementations must not
// mutate the graph; tracing is a pure side-channel with no effect on the
// computed result.
//
// Event order for one solve: ResidualReady once, then zero or more
// (PathFound, Augmented) pairs, then Done once at normal termination.
type Tracer interface {
	// ResidualReady fires once the reverse companions are in place.
	ResidualReady(g *core.Graph)

	// PathFound fires for each discovered augmenting path.
	PathFound(g *core.Graph, path Path)

	// Augmented fires after the path's bottleneck has been applied, with
	// the running total.
	Augmented(g *core.Graph, path Path, bottleneck, total int64)

	// Done fires at normal termination with the final total.
	Done(total int64)
}

// nopTracer is installed by option normalization when no Tracer is given.
type nopTracer struct{}

func (nopTracer) ResidualReady(*core.Graph)                 {}
func (nopTracer) PathFound(*core.Graph, Path)               {}
func (nopTracer) Augmented(*core.Graph, Path, int64, int64) {}
func (nopTracer) Done(int64)                                {}

// logTracer emits structured logrus records for every driver event.
type logTracer struct {
	log logrus.FieldLogger
}

// NewLogTracer returns a Tracer writing structured records through logger.
// A nil logger falls back to the logrus standard logger. Augmentation events
// log at info level; the edge-by-edge residual dump after each augmentation
// logs at debug level to keep info output compact.
func NewLogTracer(logger logrus.FieldLogger) Tracer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &logTracer{log: logger}
}

func (t *logTracer) ResidualReady(g *core.Graph) {
	t.log.WithFields(logrus.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Info("residual graph ready")
}

func (t *logTracer) PathFound(g *core.Graph, path Path) {
	t.log.WithFields(logrus.Fields{
		"path":  pathField(g, path),
		"edges": len(path),
	}).Info("augmenting path found")
}

func (t *logTracer) Augmented(g *core.Graph, path Path, bottleneck, total int64) {
	t.log.WithFields(logrus.Fields{
		"path":       pathField(g, path),
		"bottleneck": bottleneck,
		"total":      total,
	}).Info("flow augmented")

	for _, e := range g.Edges() {
		t.log.WithFields(logrus.Fields{
			"from":     e.From,
			"to":       e.To,
			"capacity": e.Capacity,
			"flow":     e.Flow,
			"reverse":  e.Reverse,
		}).Debug("residual edge")
	}
}

func (t *logTracer) Done(total int64) {
	t.log.WithField("maxFlow", total).Info("no augmenting path remains")
}

// pathField renders a path as its space-joined vertex sequence.
func pathField(g *core.Graph, path Path) string {
	vs, err := path.Vertices(g)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return strings.Join(vs, " ")
}
