// SPDX-License-Identifier: MIT
// Package: s1fibre/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w (see builderErrorf).
//   • Constructors never panic; validation panics are confined to the
//     option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadComplex indicates a simplicial complex that is empty, mixes
// simplex sizes, repeats a vertex inside a simplex, or has a facet shared
// by more than two simplices.
var ErrBadComplex = errors.New("builder: invalid simplicial complex")

// ErrBadDimension indicates a requested dimension outside the supported range.
var ErrBadDimension = errors.New("builder: unsupported dimension")

// ErrNeedRandSource indicates that WithShuffle was requested without an rng
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadMonodromy indicates a vertex map that is not a simplicial
// automorphism of the fibre complex.
var ErrBadMonodromy = errors.New("builder: monodromy is not an automorphism")

// ErrConstructFailed indicates that a gluing could not be applied.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a wrapped error with the constructor name.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
