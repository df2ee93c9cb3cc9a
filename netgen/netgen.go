// SPDX-License-Identifier: MIT
// Package: lvlflow/netgen
//
// netgen.go - seeded random flow-network generator.
//
// Canonical model:
//   - Vertices are labeled v0..v{n-1}; v0 is the source, v{n-1} the sink.
//   - A spine v0→v1→…→v{n-1} is always present, so every instance admits a
//     positive flow.
//   - Each forward skip pair (i,j) with j > i+1 is included independently
//     with probability Density.
//   - Capacities are drawn uniformly from [1, MaxCapacity].
//
// Contract:
//   - Vertices ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ Density ≤ 1 (else ErrInvalidDensity).
//   - MaxCapacity ≥ 1 (else ErrInvalidCapacity).
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Stable trial order: spine i asc, then skip pairs i asc / j asc.
//   - Fixed Seed reproduces the instance exactly, edge ids included.

package netgen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlflow/core"
	"github.com/katalvlaran/lvlflow/netio"
)

// File-local constants (no magic literals).
const (
	methodGenerate = "Generate"
	minVertices    = 2
	densityMin     = 0.0
	densityMax     = 1.0
	minCeiling     = 1

	labelFormat = "v%d"
)

// Config parameterizes one generated instance.
type Config struct {
	// Vertices is the total vertex count, source and sink included.
	Vertices int
	// Density is the inclusion probability of each forward skip edge.
	Density float64
	// MaxCapacity is the inclusive ceiling of drawn capacities.
	MaxCapacity int64
	// Seed feeds the deterministic random source.
	Seed int64
}

// DefaultConfig returns a small, comfortably dense instance.
func DefaultConfig() Config {
	return Config{
		Vertices:    8,
		Density:     0.35,
		MaxCapacity: 20,
		Seed:        1,
	}
}

// Generate samples one flow network under cfg.
//
// Steps:
//  1. Validate the configuration (fail fast, no side effects).
//  2. Lay the spine with random capacities.
//  3. Run one Bernoulli trial per forward skip pair, i asc then j asc.
//
// Complexity: O(n²) trials, O(V+E) result.
func Generate(cfg Config) (*netio.Network, error) {
	// 1) Validate parameters early.
	if cfg.Vertices < minVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodGenerate, cfg.Vertices, minVertices, ErrTooFewVertices)
	}
	if cfg.Density < densityMin || cfg.Density > densityMax {
		return nil, fmt.Errorf("%s: density=%.6f not in [%.1f,%.1f]: %w",
			methodGenerate, cfg.Density, densityMin, densityMax, ErrInvalidDensity)
	}
	if cfg.MaxCapacity < minCeiling {
		return nil, fmt.Errorf("%s: maxCapacity=%d < min=%d: %w",
			methodGenerate, cfg.MaxCapacity, minCeiling, ErrInvalidCapacity)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g := core.NewGraph()

	// 2) Spine: v0→v1→…→v{n-1}, guaranteeing sink reachability.
	for i := 0; i+1 < cfg.Vertices; i++ {
		if _, err := g.AddEdge(label(i), label(i+1), draw(rng, cfg.MaxCapacity)); err != nil {
			return nil, fmt.Errorf("%s: spine %d: %w", methodGenerate, i, err)
		}
	}

	// 3) Skip edges: each forward pair (i,j), j > i+1, with probability Density.
	for i := 0; i < cfg.Vertices; i++ {
		for j := i + 2; j < cfg.Vertices; j++ {
			if rng.Float64() >= cfg.Density {
				continue
			}
			if _, err := g.AddEdge(label(i), label(j), draw(rng, cfg.MaxCapacity)); err != nil {
				return nil, fmt.Errorf("%s: skip %d→%d: %w", methodGenerate, i, j, err)
			}
		}
	}

	return &netio.Network{
		Graph:  g,
		Source: label(0),
		Sink:   label(cfg.Vertices - 1),
	}, nil
}

// label renders the canonical vertex id for index i.
func label(i int) string { return fmt.Sprintf(labelFormat, i) }

// draw samples a capacity uniformly from [1, ceiling].
func draw(rng *rand.Rand, ceiling int64) int64 {
	return 1 + rng.Int63n(ceiling)
}
