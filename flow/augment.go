package flow

import (
	"fmt"

	"github.com/katalvlaran/lvlflow/core"
)

// Bottleneck returns the minimum residual capacity over the edges of a
// non-empty path: the amount one augmentation along it can carry.
//
// Errors: ErrGraphNil, ErrEmptyPath (a malformed caller, not a normal
// condition), or a wrapped core.ErrEdgeNotFound on a foreign edge id.
//
// Complexity: O(len(path))
func Bottleneck(g *core.Graph, path Path) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}

	var minCap int64
	for i, id := range path {
		e, err := g.Edge(id)
		if err != nil {
			return 0, fmt.Errorf("flow: bottleneck at path index %d: %w", i, err)
		}
		if i == 0 || e.Capacity < minCap {
			minCap = e.Capacity
		}
	}

	return minCap, nil
}

// Apply pushes amount units of flow across every edge of path, updating each
// edge and its reverse companion symmetrically through core.Augment. A
// capacity can never go negative: an over-capacity push aborts with the
// offending edge's full context instead of clamping.
//
// Errors: ErrGraphNil, ErrEmptyPath, or a wrapped core error
// (core.ErrNegativeAmount, core.ErrNotResidual, core.ErrEdgeNotFound, or a
// *core.CapacityError). All of them signal a defective caller; the driver
// treats them as fatal, so a partially applied path is never observed in
// correct operation.
//
// Complexity: O(len(path))
func Apply(g *core.Graph, path Path, amount int64) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}

	for i, id := range path {
		if err := g.Augment(id, amount); err != nil {
			return fmt.Errorf("flow: apply at path index %d: %w", i, err)
		}
	}

	return nil
}
