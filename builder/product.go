// SPDX-License-Identifier: MIT
// Package: s1fibre/builder
//
// product.go — F × S¹ and mapping tori by the staircase construction.
//
// A vertex (w, l) of F × [0,1] gets the label 2w + l. A k-simplex
// v0 < ... < vk of F becomes the k+1 top simplices
//
//	(v0,0) ... (vi,0) (vi,1) ... (vk,1)     for i = 0..k,
//
// whose corners are already in ascending label order. Equal facets are
// glued by labels, then every facet of F × {1} is glued to the facet of
// F × {0} obtained by moving each vertex (w, 1) to (σ(w), 0). The product
// is the case σ = id.
//
// The cocycle takes the value l1 - l0 on an edge running from (w0, l0) to
// (w1, l1): 0 on edges inside a level, ±1 on the others. It is dual to the
// fibre F × {0}.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/s1fibre/tri"
)

// ProductWithCircle builds F × S¹ for a complex F of dimension 1, 2 or 3 and
// returns it with the product cocycle, indexed by the edges of the result.
//
// Complexity: O(k · |F|) simplices, glued through a hash of facet labels.
func ProductWithCircle(f Complex, opts ...BuilderOption) (*tri.Triangulation, []int64, error) {
	return staircase(methodProduct, f, nil, opts...)
}

// MappingTorus builds F × [0,1] / (x, 1) ~ (σ(x), 0) for a simplicial
// automorphism σ of F, given on vertex ids. It returns the triangulation
// with the cocycle dual to the fibre, indexed by the edges of the result.
// σ must be a bijection of the vertices of F that sends every top simplex
// of F to a top simplex of F; otherwise ErrBadMonodromy is returned. A nil
// σ gives the product.
//
// Complexity: O(k · |F|) simplices, glued through a hash of facet labels.
func MappingTorus(f Complex, sigma map[int]int, opts ...BuilderOption) (*tri.Triangulation, []int64, error) {
	return staircase(methodMappingTorus, f, sigma, opts...)
}

// TrefoilComplement returns the mapping torus of TorusTwist on
// PuncturedTorus, a 24-tetrahedron triangulation of the trefoil knot
// complement with torus boundary, and the cocycle dual to its fibre.
func TrefoilComplement(opts ...BuilderOption) (*tri.Triangulation, []int64, error) {
	return MappingTorus(PuncturedTorus(), TorusTwist(), opts...)
}

func staircase(method string, f Complex, sigma map[int]int, opts ...BuilderOption) (*tri.Triangulation, []int64, error) {
	cfg := newBuilderConfig(opts...)
	k, err := f.validate()
	if err != nil {
		return nil, nil, builderErrorf(method, "%w", err)
	}
	if k+1 > tri.MaxDim {
		return nil, nil, builderErrorf(method, "%w: F has dimension %d", ErrBadDimension, k)
	}
	if err := f.checkAutomorphism(sigma); err != nil {
		return nil, nil, builderErrorf(method, "%w", err)
	}
	// (w, 1) goes to (σ(w), 0)
	down := func(l int) int {
		w := l >> 1
		if sigma != nil {
			w = sigma[w]
		}
		return 2 * w
	}

	var labels [][]int
	for _, s := range f {
		v := sortedCopy(s)
		for i := 0; i <= k; i++ {
			l := make([]int, 0, k+2)
			for j := 0; j <= i; j++ {
				l = append(l, 2*v[j])
			}
			for j := i; j <= k; j++ {
				l = append(l, 2*v[j]+1)
			}
			labels = append(labels, l)
		}
	}

	t, open, err := glueByLabels(k+1, labels)
	if err != nil {
		return nil, nil, builderErrorf(method, "%w", err)
	}
	for key, top := range open {
		if !allOdd(labels[top.s], top.f) {
			continue
		}
		bottom, ok := open[movedKey(labels[top.s], top.f, down)]
		if !ok {
			return nil, nil, builderErrorf(method, "%w: no bottom facet for {%s}", ErrConstructFailed, key)
		}
		g := matchCorners(labels[top.s], top.f, labels[bottom.s], bottom.f, down)
		if err := t.Join(top.s, top.f, bottom.s, g); err != nil {
			return nil, nil, builderErrorf(method, "%w: %v", ErrConstructFailed, err)
		}
	}

	t, newOf, err := finish(t, cfg)
	if err != nil {
		return nil, nil, err
	}
	level := make([][]int, t.Size())
	for old, l := range labels {
		s := old
		if newOf != nil {
			s = newOf[old]
		}
		level[s] = make([]int, len(l))
		for i, x := range l {
			level[s][i] = x & 1
		}
	}

	c := make([]int64, t.CountEdges())
	for e := range c {
		emb := t.Edge(e).Embedding(0)
		p := emb.Vertices
		c[e] = int64(level[emb.Simplex][p.At(1)] - level[emb.Simplex][p.At(0)])
	}

	return t, c, nil
}

// checkAutomorphism verifies that sigma permutes the vertices of c and maps
// top simplices to top simplices. A nil sigma is the identity.
func (c Complex) checkAutomorphism(sigma map[int]int) error {
	if sigma == nil {
		return nil
	}
	verts := make(map[int]bool)
	simplices := make(map[string]bool, len(c))
	for _, s := range c {
		for _, v := range s {
			verts[v] = true
		}
		simplices[facetKey(sortedCopy(s), -1)] = true
	}
	if len(sigma) != len(verts) {
		return fmt.Errorf("%w: %d images for %d vertices", ErrBadMonodromy, len(sigma), len(verts))
	}
	images := make(map[int]bool, len(sigma))
	for v, w := range sigma {
		if !verts[v] || !verts[w] || images[w] {
			return fmt.Errorf("%w: %d -> %d", ErrBadMonodromy, v, w)
		}
		images[w] = true
	}
	for i, s := range c {
		moved := make([]int, len(s))
		for j, v := range s {
			moved[j] = sigma[v]
		}
		sort.Ints(moved)
		if !simplices[facetKey(moved, -1)] {
			return fmt.Errorf("%w: simplex %d is not sent to a simplex", ErrBadMonodromy, i)
		}
	}

	return nil
}

// allOdd reports whether every label of s except corner f is odd (level 1).
func allOdd(labels []int, f int) bool {
	for i, l := range labels {
		if i != f && l%2 == 0 {
			return false
		}
	}

	return true
}

// movedKey is the facet key of the level-0 image of a level-1 facet.
func movedKey(labels []int, f int, down func(int) int) string {
	moved := make([]int, 0, len(labels))
	for i, l := range labels {
		if i != f {
			moved = append(moved, down(l))
		}
	}
	sort.Ints(moved)

	return facetKey(moved, len(moved))
}
