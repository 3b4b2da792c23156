// SPDX-License-Identifier: MIT

// Package fibre decides whether a triangulated manifold of dimension 2, 3
// or 4 fibres over the circle and triangulates the fibre.
//
// What:
//
//	A circle-valued map is encoded as a Cochain: one rational per edge,
//	read as the increase of the map along the edge. MapToS1 offers:
//	  • VerifyPrimitive: the cochain is a nowhere-zero cocycle whose
//	    class is primitive in integral cohomology.
//	  • VerifySimpleBundle / Diagnose: the level set through every vertex
//	    link is a sphere (a ball at boundary vertices), so the map is a
//	    bundle projection.
//	  • TriangulateFibre: the pre-image of a generic level, as a
//	    dim1.Complex for surfaces or as a normal surface / hypersurface
//	    triangulation in dimensions 3 and 4.
//	  • FindBundle: a randomised search for such a cochain when the first
//	    cohomology has rank one. The search may subdivide and collapse
//	    edges of the working triangulation. WithCocycle starts it from a
//	    known class; WithPrePerturbation adds a perturbation round before
//	    any collapse.
//
// Determinism:
//
//	The perturbation search draws from a seeded *rand.Rand (WithSeed,
//	WithRand; DefaultSeed otherwise), so results are reproducible.
//
// Logging:
//
//	FindBundle reports conditioning moves and perturbation attempts at
//	Debug level and its outcome at Info level through the zap logger set
//	by WithLogger. The default logger discards everything.
//
// Errors:
//
//	ErrNilTriangulation, ErrEmptyTriangulation, ErrUnsupportedDimension,
//	ErrCochainLength, ErrNoVertices, ErrNotMonotone, ErrMatchingEquations,
//	ErrNullLoop, ErrConditioning.
package fibre
