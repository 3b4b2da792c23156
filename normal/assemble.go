// SPDX-License-Identifier: MIT
// Package: s1fibre/normal
//
// assemble.go — gluing normal pieces into a triangulation.
//
// Every output simplex is described by its corners. A corner is the bitmask
// of the two ambient vertices whose edge it lies on; the cone point of a
// prism is corner 0. A facet of an output simplex either
//   • lies inside its piece (it contains the cone point, or its corners span
//     every ambient vertex): it is glued to the other piece simplex with the
//     same corner set, or
//   • lies on the ambient facet opposite the one ambient vertex its corners
//     miss: it is keyed by that facet's global index, its corners in the
//     facet's own vertex labels and its stacking position, and glued to the
//     piece with the same key on the other side of the facet.
//
// Stacking positions count outward from a fixed side of the normal piece
// inside the ambient facet, so both sides of a gluing agree on them.

package normal

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/katalvlaran/s1fibre/perm"
	"github.com/katalvlaran/s1fibre/tri"
)

// apex is the corner code of a prism's cone point.
const apex = 0

func edgeMask(a, b int) int { return 1<<a | 1<<b }

// lowBit returns the index of the lowest set bit of m.
func lowBit(m int) int { return bits.TrailingZeros(uint(m)) }

// faceKey identifies a piece face by its corners, padded with -1.
type faceKey [3]int

func makeFaceKey(codes []int) faceKey {
	k := faceKey{-1, -1, -1}
	sorted := append([]int(nil), codes...)
	sort.Ints(sorted)
	copy(k[len(k)-len(sorted):], sorted)

	return k
}

// facetKey identifies a piece face lying on an ambient facet.
type facetKey struct {
	facet, pos int
	corners    faceKey
}

// side is one output facet waiting for its partner; codes[i] is the corner
// code of output vertex i, in whatever labels the key uses.
type side struct {
	simplex, facet int
	codes          [tri.MaxDim + 1]int
}

// positionFunc returns the stacking position of a piece face lying on the
// ambient facet opposite x.
type positionFunc func(x int, face []int) int

type assembler struct {
	amb  *tri.Triangulation
	d    int // ambient dimension
	out  *tri.Triangulation
	open map[facetKey]side
}

// newAssembler starts an empty output one dimension below amb.
func newAssembler(amb *tri.Triangulation) (*assembler, error) {
	out, err := tri.New(amb.Dim() - 1)
	if err != nil {
		return nil, err
	}

	return &assembler{amb: amb, d: amb.Dim(), out: out, open: make(map[facetKey]side)}, nil
}

// localCode rewrites an ambient corner in the labels of facet x of s.
func localCode(inv perm.Perm, code int) int {
	var m int
	for v := 0; code != 0; v++ {
		if code&1 != 0 {
			m |= 1 << inv[v]
		}
		code >>= 1
	}

	return m
}

// join glues facet a.facet of a.simplex to b, matching vertices by code.
func (as *assembler) join(a, b side) error {
	m := as.d - 1
	g := perm.Identity()
	g[a.facet] = uint8(b.facet)
	for i := 0; i <= m; i++ {
		if i == a.facet {
			continue
		}
		found := false
		for j := 0; j <= m; j++ {
			if j != b.facet && b.codes[j] == a.codes[i] {
				g[i] = uint8(j)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: unmatched corner %b", ErrMatchingEquations, a.codes[i])
		}
	}
	if err := as.out.Join(a.simplex, a.facet, b.simplex, g); err != nil {
		return fmt.Errorf("%w: %v", ErrMatchingEquations, err)
	}

	return nil
}

// addPiece creates the output simplices of one normal piece in ambient
// simplex s. Each entry of corners lists the m+1 corner codes of one output
// simplex.
//
// Complexity: O(len(corners)) simplices and a hash lookup per facet.
func (as *assembler) addPiece(s int, corners [][]int, pos positionFunc) error {
	m := as.d - 1
	full := 1<<(as.d+1) - 1
	first := as.out.NewSimplices(len(corners))
	inner := make(map[faceKey]side)

	for i, cs := range corners {
		for f := 0; f <= m; f++ {
			face := make([]int, 0, m)
			union := 0
			hasApex := false
			for v, c := range cs {
				if v == f {
					continue
				}
				face = append(face, c)
				union |= c
				hasApex = hasApex || c == apex
			}
			me := side{simplex: first + i, facet: f}

			if hasApex || union == full {
				for v, c := range cs {
					me.codes[v] = c
				}
				key := makeFaceKey(face)
				if other, ok := inner[key]; ok {
					delete(inner, key)
					if err := as.join(me, other); err != nil {
						return err
					}
				} else {
					inner[key] = me
				}
				continue
			}

			x := lowBit(full &^ union)
			inv := as.amb.SimplexFaceMapping(s, as.d-1, x).Inverse()
			local := make([]int, len(face))
			for v, c := range cs {
				me.codes[v] = localCode(inv, c)
			}
			for v, c := range face {
				local[v] = localCode(inv, c)
			}
			key := facetKey{
				facet:   as.amb.SimplexFace(s, as.d-1, x),
				pos:     pos(x, face),
				corners: makeFaceKey(local),
			}
			if other, ok := as.open[key]; ok {
				delete(as.open, key)
				if err := as.join(me, other); err != nil {
					return err
				}
			} else {
				as.open[key] = me
			}
		}
	}
	if len(inner) != 0 {
		return fmt.Errorf("%w: piece in simplex %d is not closed", ErrMatchingEquations, s)
	}

	return nil
}

// finish checks that only boundary facets carry unmatched piece faces.
func (as *assembler) finish() (*tri.Triangulation, error) {
	for key := range as.open {
		if !as.amb.Face(as.d-1, key.facet).IsBoundary() {
			return nil, fmt.Errorf("%w: facet %d position %d", ErrMatchingEquations, key.facet, key.pos)
		}
	}

	return as.out, nil
}

// others returns the ambient vertices 0..n-1 outside skip, ascending.
func others(n int, skip ...int) []int {
	out := make([]int, 0, n)
	for v := 0; v < n; v++ {
		keep := true
		for _, s := range skip {
			if v == s {
				keep = false
			}
		}
		if keep {
			out = append(out, v)
		}
	}

	return out
}
