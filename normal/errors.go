// SPDX-License-Identifier: MIT

package normal

import "errors"

var (
	// ErrWrongDimension is returned when the ambient triangulation has the
	// wrong dimension for the requested vector type.
	ErrWrongDimension = errors.New("normal: wrong ambient dimension")

	// ErrOutOfRange is returned for a coordinate index outside the vector.
	ErrOutOfRange = errors.New("normal: coordinate out of range")

	// ErrNegative is returned when a coordinate is set below zero.
	ErrNegative = errors.New("normal: negative coordinate")

	// ErrIncompatible is returned when a simplex carries piece types that
	// cannot be realised disjointly.
	ErrIncompatible = errors.New("normal: incompatible piece types")

	// ErrMatchingEquations is returned by Triangulate when the pieces on
	// the two sides of an internal facet do not agree.
	ErrMatchingEquations = errors.New("normal: matching equations fail")
)
