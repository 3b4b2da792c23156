// Package builder provides ready-made triangulations for tests, examples and
// experiments, in the functional-options style used across the module.
//
// The package offers:
//
//   - Simplicial complexes (Complex) to feed the product construction:
//     SphereComplex(k), BallComplex(k), Circle3, Interval, Torus7,
//     PuncturedTorus, and the automorphism TorusTwist.
//   - Triangulations:
//     – FromComplex:        glue a pure complex along shared facets.
//     – SphereBoundary(d):  ∂Δ^{d+1}.
//     – Ball(d):            a single d-simplex.
//     – LensL31:            two tetrahedra forming L(3,1).
//     – LayeredSolidTorus:  the one-tetrahedron solid torus.
//     – ProductWithCircle:  F × S¹ together with its product cocycle.
//     – MappingTorus:       F × [0,1] with F × {1} glued back by σ.
//     – TrefoilComplement:  the mapping torus of TorusTwist.
//   - Options:
//     – WithSeed / WithRand: configure the rng.
//     – WithShuffle:         randomly relabel top simplices.
//
// Guarantees:
//
//   - Determinism: the same inputs, options and seed give identical output.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrBadComplex, ErrBadDimension,
//     ErrNeedRandSource, ErrBadMonodromy, ErrConstructFailed) wrapped with
//     the constructor name.
package builder
