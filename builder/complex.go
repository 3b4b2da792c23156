// SPDX-License-Identifier: MIT
// Package: s1fibre/builder
//
// complex.go — pure simplicial complexes and gluing by vertex labels.

package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/s1fibre/perm"
	"github.com/katalvlaran/s1fibre/tri"
)

// Complex is a pure simplicial complex given by the vertex ids of its top
// simplices. All simplices have the same number of vertices.
type Complex [][]int

// Dim returns the dimension of the top simplices, or -1 for an empty complex.
func (c Complex) Dim() int {
	if len(c) == 0 {
		return -1
	}

	return len(c[0]) - 1
}

// validate checks the shape of c and returns its dimension.
func (c Complex) validate() (int, error) {
	if len(c) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrBadComplex)
	}
	k := c.Dim()
	if k < 1 || k > tri.MaxDim {
		return 0, fmt.Errorf("%w: dimension %d", ErrBadDimension, k)
	}
	for i, s := range c {
		if len(s) != k+1 {
			return 0, fmt.Errorf("%w: simplex %d has %d vertices, want %d", ErrBadComplex, i, len(s), k+1)
		}
		seen := make(map[int]bool, len(s))
		for _, v := range s {
			if v < 0 || seen[v] {
				return 0, fmt.Errorf("%w: simplex %d has bad vertex %d", ErrBadComplex, i, v)
			}
			seen[v] = true
		}
	}

	return k, nil
}

// SphereComplex returns the boundary of the (k+1)-simplex, a k-sphere.
func SphereComplex(k int) Complex {
	var c Complex
	for skip := 0; skip <= k+1; skip++ {
		s := make([]int, 0, k+1)
		for v := 0; v <= k+1; v++ {
			if v != skip {
				s = append(s, v)
			}
		}
		c = append(c, s)
	}

	return c
}

// BallComplex returns a single k-simplex.
func BallComplex(k int) Complex {
	s := make([]int, k+1)
	for i := range s {
		s[i] = i
	}

	return Complex{s}
}

// Circle3 returns the three-edge circle.
func Circle3() Complex {
	return Complex{{0, 1}, {1, 2}, {0, 2}}
}

// Interval returns a path of two edges.
func Interval() Complex {
	return Complex{{0, 1}, {1, 2}}
}

// Torus7 returns the seven-vertex torus: triangles {i, i+1, i+3} and
// {i, i+2, i+3} modulo 7.
func Torus7() Complex {
	var c Complex
	for i := 0; i < 7; i++ {
		c = append(c,
			[]int{i, (i + 1) % 7, (i + 3) % 7},
			[]int{i, (i + 2) % 7, (i + 3) % 7},
		)
	}

	return c
}

// PuncturedTorus returns Torus7 with the open star of vertex 0 removed: a
// torus with one boundary circle on the vertices 1..6.
func PuncturedTorus() Complex {
	var c Complex
	for _, s := range Torus7() {
		if s[0] != 0 && s[1] != 0 && s[2] != 0 {
			c = append(c, s)
		}
	}

	return c
}

// TorusTwist returns x ↦ 3x mod 7 on the vertices 1..6 of PuncturedTorus.
// It is an automorphism of Torus7 of order six fixing vertex 0, and the
// mapping torus it defines on PuncturedTorus is the trefoil complement.
func TorusTwist() map[int]int {
	sigma := make(map[int]int, 6)
	for x := 1; x < 7; x++ {
		sigma[x] = 3 * x % 7
	}

	return sigma
}

func sortedCopy(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)

	return out
}

// facetRef names facet f of simplex s.
type facetRef struct{ s, f int }

// facetKey renders the labels of s without corner f.
func facetKey(labels []int, f int) string {
	var sb strings.Builder
	for i, l := range labels {
		if i == f {
			continue
		}
		fmt.Fprintf(&sb, "%d,", l)
	}

	return sb.String()
}

// glueByLabels creates one simplex per label list (sorted ascending; corner
// i carries labels[s][i]) and glues every pair of facets with equal label
// sets, matching corners by label. It returns the unmatched facets keyed by
// their label sets.
func glueByLabels(dim int, labels [][]int) (*tri.Triangulation, map[string]facetRef, error) {
	t, err := tri.New(dim)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadDimension, err)
	}
	t.NewSimplices(len(labels))
	open := make(map[string]facetRef)
	closed := make(map[string]bool)
	for s := range labels {
		for f := 0; f <= dim; f++ {
			key := facetKey(labels[s], f)
			if closed[key] {
				return nil, nil, fmt.Errorf("%w: facet {%s} shared by more than two simplices", ErrBadComplex, key)
			}
			other, ok := open[key]
			if !ok {
				open[key] = facetRef{s, f}
				continue
			}
			delete(open, key)
			closed[key] = true
			g := matchCorners(labels[s], f, labels[other.s], other.f, sameLabel)
			if err := t.Join(s, f, other.s, g); err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrConstructFailed, err)
			}
		}
	}

	return t, open, nil
}

func sameLabel(l int) int { return l }

// matchCorners sends corner i of a (i != fa) to the corner of b carrying
// label relabel(a[i]), and fa to fb.
func matchCorners(a []int, fa int, b []int, fb int, relabel func(int) int) perm.Perm {
	g := perm.Identity()
	for i, l := range a {
		if i == fa {
			g[i] = uint8(fb)
			continue
		}
		want := relabel(l)
		for j, m := range b {
			if m == want {
				g[i] = uint8(j)
				break
			}
		}
	}

	return g
}
