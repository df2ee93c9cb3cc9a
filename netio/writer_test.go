package netio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	yaml "gopkg.in/yaml.v2"

	"github.com/katalvlaran/lvlflow/flow"
	"github.com/katalvlaran/lvlflow/netio"
)

// WriterSuite renders a solved network through every output form.
type WriterSuite struct {
	suite.Suite

	nw    *netio.Network
	total int64
}

// SetupTest solves a fresh two-branch network for each rendering.
func (s *WriterSuite) SetupTest() {
	nw, err := netio.ReadNetwork(strings.NewReader("4 s t s a 3 a t 2 s b 2 b t 3"))
	require.NoError(s.T(), err)

	total, err := flow.MaxFlow(nw.Graph, nw.Source, nw.Sink, flow.DefaultOptions())
	require.NoError(s.T(), err)

	s.nw, s.total = nw, total
}

// TestWriteResultGolden pins the plain form byte for byte.
func (s *WriterSuite) TestWriteResultGolden() {
	var buf bytes.Buffer
	require.NoError(s.T(), netio.WriteResult(&buf, s.nw, s.total))

	want := "4\na t 2\nb t 2\ns a 2\ns b 2\n"
	require.Equal(s.T(), want, buf.String())
}

// TestNetworkRoundTrip verifies the canonical form survives write→read even
// after a solve: input capacities come back whole, flows do not travel.
func (s *WriterSuite) TestNetworkRoundTrip() {
	var buf bytes.Buffer
	require.NoError(s.T(), netio.WriteNetwork(&buf, s.nw))
	require.True(s.T(), strings.HasPrefix(buf.String(), "4 s t\n"))

	reloaded, err := netio.ReadNetwork(bytes.NewReader(buf.Bytes()))
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.nw.Source, reloaded.Source)
	require.Equal(s.T(), s.nw.Sink, reloaded.Sink)
	// the reloaded arena holds only originals; the solved one also carries
	// its residual companions
	require.Equal(s.T(), len(s.nw.Graph.OriginalEdges()), reloaded.Graph.EdgeCount())

	total, err := flow.MaxFlow(reloaded.Graph, reloaded.Source, reloaded.Sink, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.total, total, "the reloaded instance must solve identically")
}

// TestYAMLNetworkRoundTrip does the same through the structured form.
func (s *WriterSuite) TestYAMLNetworkRoundTrip() {
	var buf bytes.Buffer
	require.NoError(s.T(), netio.WriteNetworkYAML(&buf, s.nw))
	require.NotContains(s.T(), buf.String(), "flow", "unsolved documents carry no flows")

	reloaded, err := netio.ReadNetworkYAML(bytes.NewReader(buf.Bytes()))
	require.NoError(s.T(), err)

	total, err := flow.MaxFlow(reloaded.Graph, reloaded.Source, reloaded.Sink, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.total, total)
}

// TestWriteTable checks the human rendering carries the headers, the
// reconstructed capacities, and the total.
func (s *WriterSuite) TestWriteTable() {
	var buf bytes.Buffer
	require.NoError(s.T(), netio.WriteTable(&buf, s.nw, s.total))

	out := buf.String()
	require.Contains(s.T(), out, "FROM")
	require.Contains(s.T(), out, "CAPACITY")
	require.Contains(s.T(), out, "max flow: 4")
}

// TestYAMLRoundTrip verifies a solved document reloads into the same
// network shape.
func (s *WriterSuite) TestYAMLRoundTrip() {
	var buf bytes.Buffer
	require.NoError(s.T(), netio.WriteResultYAML(&buf, s.nw, s.total))

	// the document itself carries the solved total
	var doc struct {
		MaxFlow int64 `yaml:"max_flow"`
	}
	require.NoError(s.T(), yaml.Unmarshal(buf.Bytes(), &doc))
	require.Equal(s.T(), s.total, doc.MaxFlow)

	// and reloads into an equivalent unsolved network
	reloaded, err := netio.ReadNetworkYAML(bytes.NewReader(buf.Bytes()))
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.nw.Source, reloaded.Source)
	require.Equal(s.T(), s.nw.Sink, reloaded.Sink)
	require.Equal(s.T(), len(s.nw.Graph.OriginalEdges()), reloaded.Graph.EdgeCount())

	// reloaded capacities are the input capacities, flows discarded
	for _, id := range reloaded.Graph.OriginalEdges() {
		e, err := reloaded.Graph.Edge(id)
		require.NoError(s.T(), err)
		require.Zero(s.T(), e.Flow)
		require.Positive(s.T(), e.Capacity)
	}
}

// TestReadYAMLErrors covers the malformed document shapes.
func (s *WriterSuite) TestReadYAMLErrors() {
	cases := []struct {
		name  string
		input string
	}{
		{"not yaml", ":\n\t-"},
		{"no source", "sink: t\nedges: []\n"},
		{"no sink", "source: s\nedges: []\n"},
		{"self loop", "source: s\nsink: t\nedges:\n- {from: a, to: a, capacity: 1}\n"},
	}

	for _, tc := range cases {
		tc := tc
		s.Run(tc.name, func() {
			_, err := netio.ReadNetworkYAML(strings.NewReader(tc.input))
			require.Error(s.T(), err)
		})
	}
}

// Entry point for running the suite
func TestWriterSuite(t *testing.T) {
	suite.Run(t, new(WriterSuite))
}
