// SPDX-License-Identifier: MIT
// Package: lvlflow/netgen
//
// doc.go - package overview.

// Package netgen samples reproducible random flow networks for benchmarks,
// fuzzing seeds, and demo inputs.
//
// Every instance is a layered DAG: a guaranteed spine source→…→sink plus
// Bernoulli-sampled forward skip edges. Because the trial order is fixed, a
// Config with the same Seed always yields the identical network, down to
// edge ids. Typical use:
//
//	nw, err := netgen.Generate(netgen.Config{
//		Vertices:    100,
//		Density:     0.2,
//		MaxCapacity: 50,
//		Seed:        42,
//	})
//	if err != nil { ... }
//	total, err := flow.MaxFlow(nw.Graph, nw.Source, nw.Sink, flow.DefaultOptions())
//
// The DAG shape keeps instances acyclic, so solve times stay proportional
// to the flow value rather than pathological cycle interplay.
package netgen
