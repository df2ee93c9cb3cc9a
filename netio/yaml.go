package netio

import (
	"io"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/katalvlaran/lvlflow/core"
)

// edgeYAML is one edge in the structured form. Flow is present only in
// solved documents.
type edgeYAML struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Capacity int64  `yaml:"capacity"`
	Flow     int64  `yaml:"flow,omitempty"`
}

// networkYAML is the structured input document.
type networkYAML struct {
	Source string     `yaml:"source"`
	Sink   string     `yaml:"sink"`
	Edges  []edgeYAML `yaml:"edges"`
}

// resultYAML is the structured output document: the input network plus the
// solved total and per-edge flows.
type resultYAML struct {
	MaxFlow int64      `yaml:"max_flow"`
	Source  string     `yaml:"source"`
	Sink    string     `yaml:"sink"`
	Edges   []edgeYAML `yaml:"edges"`
}

// ReadNetworkYAML parses the structured document form:
//
//	source: S
//	sink: T
//	edges:
//	  - {from: S, to: A, capacity: 3}
//
// Flow fields in the input are ignored; duplicate ordered pairs merge by
// summing capacities, same as the token stream.
func ReadNetworkYAML(r io.Reader) (*Network, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read document")
	}

	var doc networkYAML
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decode document")
	}
	if doc.Source == "" {
		return nil, errors.New("document has no source")
	}
	if doc.Sink == "" {
		return nil, errors.New("document has no sink")
	}

	g := core.NewGraph()
	for i, e := range doc.Edges {
		if _, err = g.AddEdge(e.From, e.To, e.Capacity); err != nil {
			return nil, errors.Wrapf(err, "edge %d %s→%s", i, e.From, e.To)
		}
	}
	return &Network{Graph: g, Source: doc.Source, Sink: doc.Sink}, nil
}

// WriteNetworkYAML emits an unsolved structured document that
// ReadNetworkYAML accepts back: endpoints plus input capacities, no flows.
func WriteNetworkYAML(w io.Writer, nw *Network) error {
	doc := networkYAML{Source: nw.Source, Sink: nw.Sink}
	for _, id := range nw.Graph.OriginalEdges() {
		e, err := nw.Graph.Edge(id)
		if err != nil {
			return errors.Wrapf(err, "edge %d", id)
		}
		capacity, err := originalCapacity(nw.Graph, e)
		if err != nil {
			return errors.Wrapf(err, "edge %d companion", id)
		}
		doc.Edges = append(doc.Edges, edgeYAML{From: e.From, To: e.To, Capacity: capacity})
	}

	b, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encode document")
	}
	if _, err = w.Write(b); err != nil {
		return errors.Wrap(err, "write document")
	}
	return nil
}

// WriteResultYAML emits the solved network as a structured document,
// carrying the reconstructed input capacities alongside the assigned flows.
func WriteResultYAML(w io.Writer, nw *Network, total int64) error {
	doc := resultYAML{
		MaxFlow: total,
		Source:  nw.Source,
		Sink:    nw.Sink,
	}
	for _, id := range nw.Graph.OriginalEdges() {
		e, err := nw.Graph.Edge(id)
		if err != nil {
			return errors.Wrapf(err, "edge %d", id)
		}
		capacity, err := originalCapacity(nw.Graph, e)
		if err != nil {
			return errors.Wrapf(err, "edge %d companion", id)
		}
		doc.Edges = append(doc.Edges, edgeYAML{
			From:     e.From,
			To:       e.To,
			Capacity: capacity,
			Flow:     e.Flow,
		})
	}

	b, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encode document")
	}
	if _, err = w.Write(b); err != nil {
		return errors.Wrap(err, "write document")
	}
	return nil
}
