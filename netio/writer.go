package netio

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// WriteNetwork emits the canonical token stream ReadNetwork accepts: the
// header line, then one "from to capacity" triple per original edge. A
// solved network writes its input capacities, not the residual split.
func WriteNetwork(w io.Writer, nw *Network) error {
	ids := nw.Graph.OriginalEdges()
	if _, err := fmt.Fprintf(w, "%d %s %s\n", len(ids), nw.Source, nw.Sink); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, id := range ids {
		e, err := nw.Graph.Edge(id)
		if err != nil {
			return errors.Wrapf(err, "edge %d", id)
		}
		capacity, err := originalCapacity(nw.Graph, e)
		if err != nil {
			return errors.Wrapf(err, "edge %d companion", id)
		}
		if _, err = fmt.Fprintf(w, "%s %s %d\n", e.From, e.To, capacity); err != nil {
			return errors.Wrap(err, "write edge")
		}
	}
	return nil
}

// WriteResult emits the plain solved form: the total on its own line, then
// one "from to flow" line per original edge. Edges appear grouped by tail
// label ascending, heads ascending within a group, so results diff cleanly.
func WriteResult(w io.Writer, nw *Network, total int64) error {
	if _, err := fmt.Fprintln(w, total); err != nil {
		return errors.Wrap(err, "write total")
	}
	for _, id := range nw.Graph.OriginalEdges() {
		e, err := nw.Graph.Edge(id)
		if err != nil {
			return errors.Wrapf(err, "edge %d", id)
		}
		if _, err = fmt.Fprintf(w, "%s %s %d\n", e.From, e.To, e.Flow); err != nil {
			return errors.Wrap(err, "write edge")
		}
	}
	return nil
}

// WriteTable renders the assignment for humans: one row per original edge
// with its input capacity and assigned flow, then the total.
func WriteTable(w io.Writer, nw *Network, total int64) error {
	var table = tablewriter.NewWriter(w)
	table.SetHeader([]string{"FROM", "TO", "CAPACITY", "FLOW"})

	for _, id := range nw.Graph.OriginalEdges() {
		e, err := nw.Graph.Edge(id)
		if err != nil {
			return errors.Wrapf(err, "edge %d", id)
		}
		capacity, err := originalCapacity(nw.Graph, e)
		if err != nil {
			return errors.Wrapf(err, "edge %d companion", id)
		}
		table.Append([]string{
			e.From,
			e.To,
			strconv.FormatInt(capacity, 10),
			strconv.FormatInt(e.Flow, 10),
		})
	}
	table.Render()

	if _, err := fmt.Fprintf(w, "max flow: %s\n", humanize.Comma(total)); err != nil {
		return errors.Wrap(err, "write total")
	}
	return nil
}
