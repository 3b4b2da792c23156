// SPDX-License-Identifier: MIT
// Package: s1fibre/fibre
//
// errors.go — sentinel errors for the fibre package.
//
// Error policy:
//   • Verifiers return plain booleans; only constructors, the lift, the
//     fibre triangulator and the search driver return errors.
//   • Context (vertex, edge and simplex indices) is attached with %w.

package fibre

import "errors"

var (
	// ErrNilTriangulation is returned by New for a nil input.
	ErrNilTriangulation = errors.New("fibre: triangulation is nil")

	// ErrEmptyTriangulation is returned by New for a triangulation without
	// simplices.
	ErrEmptyTriangulation = errors.New("fibre: triangulation is empty")

	// ErrUnsupportedDimension is returned for dimensions other than 2, 3, 4.
	ErrUnsupportedDimension = errors.New("fibre: unsupported dimension")

	// ErrCochainLength is returned when a cochain does not have one entry
	// per edge.
	ErrCochainLength = errors.New("fibre: cochain length differs from edge count")

	// ErrNotMonotone is returned when some simplex has no corner from which
	// every edge rises, so the cochain cannot be lifted.
	ErrNotMonotone = errors.New("fibre: cochain has no lowest corner in a simplex")

	// ErrNoVertices is returned when a lift is asked of a triangulation
	// with no vertices, where no fibre level exists.
	ErrNoVertices = errors.New("fibre: no vertices to lift")

	// ErrMatchingEquations is returned when the arcs of a 1-dimensional
	// fibre disagree across an edge.
	ErrMatchingEquations = errors.New("fibre: matching equations fail")

	// ErrNullLoop is returned when a 1-edge loop with zero cohomology value
	// survives conditioning.
	ErrNullLoop = errors.New("fibre: homologically null loop edge")

	// ErrConditioning is returned when conditioning leaves a triangulation
	// whose first cohomology no longer has rank one.
	ErrConditioning = errors.New("fibre: conditioning changed first cohomology")
)
