// SPDX-License-Identifier: MIT

package normal

import (
	"fmt"

	"github.com/katalvlaran/s1fibre/tri"
)

// HypersurfaceCoords is the number of standard coordinates per
// pentachoron: five tetrahedron types then ten prism types.
const HypersurfaceCoords = 15

// TetrahedronCoord returns the index of the tetrahedron type cutting off
// vertex v of pentachoron pent.
func TetrahedronCoord(pent, v int) int { return HypersurfaceCoords*pent + v }

// PrismCoord returns the index of the prism type separating edge e (in
// tri.EdgeNumber order) of pentachoron pent from the opposite triangle.
func PrismCoord(pent, e int) int { return HypersurfaceCoords*pent + 5 + e }

// Hypersurface is a normal hypersurface in a 4-triangulation, in standard
// coordinates.
type Hypersurface struct {
	t      *tri.Triangulation
	coords []int
}

// NewHypersurface returns the zero hypersurface in t, which must have
// dimension 4.
func NewHypersurface(t *tri.Triangulation) (*Hypersurface, error) {
	if t == nil || t.Dim() != 4 {
		return nil, ErrWrongDimension
	}

	return &Hypersurface{t: t, coords: make([]int, HypersurfaceCoords*t.Size())}, nil
}

// Len returns the number of coordinates.
func (h *Hypersurface) Len() int { return len(h.coords) }

// Triangulation returns the ambient triangulation.
func (h *Hypersurface) Triangulation() *tri.Triangulation { return h.t }

// Set assigns coordinate i.
func (h *Hypersurface) Set(i, n int) error {
	if i < 0 || i >= len(h.coords) {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(h.coords))
	}
	if n < 0 {
		return fmt.Errorf("%w: coordinate %d = %d", ErrNegative, i, n)
	}
	h.coords[i] = n

	return nil
}

// At returns coordinate i, or 0 when i is out of range.
func (h *Hypersurface) At(i int) int {
	if i < 0 || i >= len(h.coords) {
		return 0
	}

	return h.coords[i]
}

// Validate checks that the prism types used in each pentachoron belong to
// pairwise disjoint edges.
func (h *Hypersurface) Validate() error {
	for p := 0; p < h.t.Size(); p++ {
		var used []int
		for e := 0; e < 10; e++ {
			if h.coords[PrismCoord(p, e)] == 0 {
				continue
			}
			ve := tri.FaceVertices(4, 1, e)
			for _, u := range used {
				vu := tri.FaceVertices(4, 1, u)
				if ve[0] == vu[0] || ve[0] == vu[1] || ve[1] == vu[0] || ve[1] == vu[1] {
					return fmt.Errorf("%w: pentachoron %d has prisms %d and %d", ErrIncompatible, p, u, e)
				}
			}
			used = append(used, e)
		}
	}

	return nil
}

// Triangulate builds the hypersurface as a 3-triangulation. Tetrahedron
// pieces become one tetrahedron; each prism is coned from an interior point
// over its boundary, 8 tetrahedra in all.
//
// Complexity: O(8 · Σ coordinates) tetrahedra, each face matched through
// a hash.
func (h *Hypersurface) Triangulate() (*tri.Triangulation, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	as, err := newAssembler(h.t)
	if err != nil {
		return nil, err
	}
	for p := 0; p < h.t.Size(); p++ {
		if err := h.addPentachoron(as, p); err != nil {
			return nil, err
		}
	}

	return as.finish()
}

// addPentachoron adds every tetrahedron and prism piece of pentachoron p.
func (h *Hypersurface) addPentachoron(as *assembler, p int) error {
	tets := h.coords[TetrahedronCoord(p, 0) : TetrahedronCoord(p, 0)+5]

	for v := 0; v < 5; v++ {
		o := others(5, v)
		piece := [][]int{{edgeMask(v, o[0]), edgeMask(v, o[1]), edgeMask(v, o[2]), edgeMask(v, o[3])}}
		for c := 0; c < tets[v]; c++ {
			copyIdx := c
			pos := func(int, []int) int { return copyIdx }
			if err := as.addPiece(p, piece, pos); err != nil {
				return err
			}
		}
	}

	for e := 0; e < 10; e++ {
		n := h.coords[PrismCoord(p, e)]
		if n == 0 {
			continue
		}
		piece := h.prismPiece(p, e)
		ve := tri.FaceVertices(4, 1, e)
		for k := 0; k < n; k++ {
			copyIdx := k
			pos := func(x int, face []int) int {
				if shared := face[0] & face[1] & face[2]; shared != 0 {
					// triangle around one end of the prism's edge
					return tets[lowBit(shared)] + copyIdx
				}
				// quadrilateral in the facet opposite x; stack from the side
				// holding the facet's vertex 0
				inv := h.t.SimplexFaceMapping(p, 3, x).Inverse()
				if inv[ve[0]] == 0 || inv[ve[1]] == 0 {
					return copyIdx
				}
				far := others(5, ve[0], ve[1], x)
				total := n + h.coords[PrismCoord(p, tri.EdgeNumber(4, far[0], far[1]))]

				return total - 1 - copyIdx
			}
			if err := as.addPiece(p, piece, pos); err != nil {
				return err
			}
		}
	}

	return nil
}

// prismPiece lists the eight tetrahedra of the prism around edge e of
// pentachoron p: each is the cone point joined to one boundary triangle.
// Quadrilateral faces are split along the diagonal joining the corner
// (r0,o0) to (r1,o1), where r0 < r1 and o0 < o1 are the facet's own
// labels on the two sides and the r side holds the facet's vertex 0.
func (h *Hypersurface) prismPiece(p, e int) [][]int {
	ve := tri.FaceVertices(4, 1, e)
	a, b := ve[0], ve[1]
	rest := others(5, a, b)

	var base [][]int
	for _, end := range []int{a, b} {
		base = append(base, []int{edgeMask(end, rest[0]), edgeMask(end, rest[1]), edgeMask(end, rest[2])})
	}
	for _, y := range rest {
		zw := others(5, a, b, y)
		inv := h.t.SimplexFaceMapping(p, 3, y).Inverse()
		r, o := [2]int{a, b}, [2]int{zw[0], zw[1]}
		if inv[a] != 0 && inv[b] != 0 {
			r, o = o, r
		}
		if inv[r[0]] > inv[r[1]] {
			r[0], r[1] = r[1], r[0]
		}
		if inv[o[0]] > inv[o[1]] {
			o[0], o[1] = o[1], o[0]
		}
		diag0, diag1 := edgeMask(r[0], o[0]), edgeMask(r[1], o[1])
		base = append(base,
			[]int{diag0, diag1, edgeMask(r[0], o[1])},
			[]int{diag0, diag1, edgeMask(r[1], o[0])},
		)
	}

	piece := make([][]int, len(base))
	for i, tr := range base {
		piece[i] = append(tr, apex)
	}

	return piece
}
