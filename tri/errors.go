// SPDX-License-Identifier: MIT

package tri

import "errors"

// Sentinel errors for triangulation construction, moves and parsing.
var (
	// ErrBadDimension is returned for dimensions outside [MinDim, MaxDim].
	ErrBadDimension = errors.New("tri: unsupported dimension")

	// ErrOutOfRange is returned when a simplex, facet or face index is invalid.
	ErrOutOfRange = errors.New("tri: index out of range")

	// ErrFacetGlued is returned when joining a facet that is already glued.
	ErrFacetGlued = errors.New("tri: facet already glued")

	// ErrBadGluing is returned for gluing permutations that move points beyond
	// the simplex or that glue a facet to itself.
	ErrBadGluing = errors.New("tri: invalid gluing permutation")

	// ErrInconsistentLink is returned when a face link cannot be assembled
	// from the gluings around the face.
	ErrInconsistentLink = errors.New("tri: inconsistent face link")

	// ErrSyntax is returned by Parse for malformed input.
	ErrSyntax = errors.New("tri: syntax error")

	// ErrTooLarge is returned by Parse when the size header exceeds
	// MaxParsedSimplices.
	ErrTooLarge = errors.New("tri: triangulation too large")
)
