// SPDX-License-Identifier: MIT
// Package: lvlflow/netgen
//
// errors.go - sentinel errors for the generator package.
//
// Error policy:
//   - Only package-level sentinels are exposed.
//   - Callers branch with errors.Is(err, ErrX); messages are not contracts.
//   - Generate attaches method context via %w wrapping.

package netgen

import "errors"

// ErrTooFewVertices indicates the requested vertex count cannot host a
// distinct source and sink.
var ErrTooFewVertices = errors.New("netgen: too few vertices")

// ErrInvalidDensity indicates the extra-edge probability lies outside the
// closed interval [0,1].
var ErrInvalidDensity = errors.New("netgen: density out of range")

// ErrInvalidCapacity indicates the capacity ceiling is below 1, leaving no
// admissible capacity to draw.
var ErrInvalidCapacity = errors.New("netgen: capacity ceiling too small")
