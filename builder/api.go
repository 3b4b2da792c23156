// SPDX-License-Identifier: MIT
// Package: s1fibre/builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   - Every constructor resolves its options into an immutable builderConfig,
//     assembles the triangulation deterministically and finally applies the
//     optional shuffle (finish).
//   - Same inputs, options and seed ⇒ identical triangulations.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name.

package builder

import (
	"github.com/katalvlaran/s1fibre/perm"
	"github.com/katalvlaran/s1fibre/tri"
)

// Method tags used as error context.
const (
	methodFromComplex  = "FromComplex"
	methodProduct      = "ProductWithCircle"
	methodMappingTorus = "MappingTorus"
	methodLens         = "LensL31"
	methodLST          = "LayeredSolidTorus"
	methodShuffle      = "WithShuffle"
)

// FromComplex glues the simplices of c along every shared facet. The complex
// must have dimension 2, 3 or 4. Corners of each top simplex follow the
// ascending order of its vertex ids.
func FromComplex(c Complex, opts ...BuilderOption) (*tri.Triangulation, error) {
	cfg := newBuilderConfig(opts...)
	k, err := c.validate()
	if err != nil {
		return nil, builderErrorf(methodFromComplex, "%w", err)
	}
	labels := make([][]int, len(c))
	for i, s := range c {
		labels[i] = sortedCopy(s)
	}
	t, _, err := glueByLabels(k, labels)
	if err != nil {
		return nil, builderErrorf(methodFromComplex, "%w", err)
	}
	t, _, err = finish(t, cfg)

	return t, err
}

// SphereBoundary returns ∂Δ^{d+1}, a d-sphere with d+2 simplices.
func SphereBoundary(d int, opts ...BuilderOption) (*tri.Triangulation, error) {
	return FromComplex(SphereComplex(d), opts...)
}

// Ball returns a single d-simplex.
func Ball(d int, opts ...BuilderOption) (*tri.Triangulation, error) {
	return FromComplex(BallComplex(d), opts...)
}

// LensL31 returns a two-tetrahedron triangulation of the lens space L(3,1).
func LensL31(opts ...BuilderOption) (*tri.Triangulation, error) {
	cfg := newBuilderConfig(opts...)
	t, err := tri.New(3)
	if err != nil {
		return nil, builderErrorf(methodLens, "%w", err)
	}
	r := t.NewSimplex()
	s := t.NewSimplex()
	joins := []struct {
		f int
		g perm.Perm
	}{
		{0, perm.New(0, 2, 3, 1)},
		{1, perm.Identity()},
		{2, perm.Identity()},
		{3, perm.Identity()},
	}
	for _, j := range joins {
		if err := t.Join(r, j.f, s, j.g); err != nil {
			return nil, builderErrorf(methodLens, "%w: %v", ErrConstructFailed, err)
		}
	}
	t, _, err = finish(t, cfg)

	return t, err
}

// LayeredSolidTorus returns the one-tetrahedron solid torus: facet 0 is
// glued to facet 1 by (1 2 3 0); facets 2 and 3 form the boundary torus.
func LayeredSolidTorus(opts ...BuilderOption) (*tri.Triangulation, error) {
	cfg := newBuilderConfig(opts...)
	t, err := tri.New(3)
	if err != nil {
		return nil, builderErrorf(methodLST, "%w", err)
	}
	s := t.NewSimplex()
	if err := t.Join(s, 0, s, perm.New(1, 2, 3, 0)); err != nil {
		return nil, builderErrorf(methodLST, "%w: %v", ErrConstructFailed, err)
	}
	t, _, err = finish(t, cfg)

	return t, err
}

// finish applies the shuffle option. It returns the triangulation to hand
// out and, when shuffled, newOf[old] = new simplex index (nil otherwise).
func finish(t *tri.Triangulation, cfg builderConfig) (*tri.Triangulation, []int, error) {
	if !cfg.shuffle {
		return t, nil, nil
	}
	if cfg.rng == nil {
		return nil, nil, builderErrorf(methodShuffle, "%w", ErrNeedRandSource)
	}
	newOf := cfg.rng.Perm(t.Size())
	out, err := tri.New(t.Dim())
	if err != nil {
		return nil, nil, err
	}
	out.NewSimplices(t.Size())
	for s := 0; s < t.Size(); s++ {
		for f := 0; f <= t.Dim(); f++ {
			u := t.Adjacent(s, f)
			g := t.Gluing(s, f)
			if u < 0 || u < s || (u == s && g.At(f) < f) {
				continue
			}
			if err := out.Join(newOf[s], f, newOf[u], g); err != nil {
				return nil, nil, builderErrorf(methodShuffle, "%w: %v", ErrConstructFailed, err)
			}
		}
	}

	return out, newOf, nil
}
