package netio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlflow/core"
)

// ReadNetwork parses the canonical token stream: edge count, source label,
// sink label, then exactly that many "from to capacity" triples. Tokens
// past the declared triples are ignored.
//
// Duplicate ordered pairs merge by summing capacities, so the returned
// graph may hold fewer edges than the stream declared. Malformed tokens,
// truncated streams (io.ErrUnexpectedEOF), and rejected edges (self-loops,
// negative capacities) surface as wrapped errors.
func ReadNetwork(r io.Reader) (*Network, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// 1) Header: edge count and the two endpoints.
	tok, err := nextToken(sc, "edge count")
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(tok)
	if err != nil {
		return nil, errors.Wrapf(err, "parse edge count %q", tok)
	}
	if count < 0 {
		return nil, errors.Errorf("edge count %d is negative", count)
	}

	source, err := nextToken(sc, "source label")
	if err != nil {
		return nil, err
	}
	sink, err := nextToken(sc, "sink label")
	if err != nil {
		return nil, err
	}

	// 2) Body: one triple per declared edge.
	g := core.NewGraph()
	for i := 0; i < count; i++ {
		from, err := nextToken(sc, "edge tail")
		if err != nil {
			return nil, errors.Wrapf(err, "edge %d", i)
		}
		to, err := nextToken(sc, "edge head")
		if err != nil {
			return nil, errors.Wrapf(err, "edge %d", i)
		}
		capTok, err := nextToken(sc, "edge capacity")
		if err != nil {
			return nil, errors.Wrapf(err, "edge %d", i)
		}
		capacity, err := strconv.ParseInt(capTok, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "edge %d: parse capacity %q", i, capTok)
		}
		if _, err = g.AddEdge(from, to, capacity); err != nil {
			return nil, errors.Wrapf(err, "edge %d %s→%s", i, from, to)
		}
	}

	return &Network{Graph: g, Source: source, Sink: sink}, nil
}

// nextToken pulls one whitespace-delimited token, translating a clean end
// of stream into io.ErrUnexpectedEOF so callers can tell truncation from
// transport failure.
func nextToken(sc *bufio.Scanner, what string) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", errors.Wrapf(err, "reading %s", what)
		}
		return "", errors.Wrapf(io.ErrUnexpectedEOF, "reading %s", what)
	}
	return sc.Text(), nil
}
