// SPDX-License-Identifier: MIT

package normal

import (
	"fmt"

	"github.com/katalvlaran/s1fibre/tri"
)

// SurfaceCoords is the number of standard coordinates per tetrahedron:
// four triangle types then three quadrilateral types.
const SurfaceCoords = 7

// quadSides[q] lists the vertex pair on one side of quadrilateral type q;
// the other side is the complementary pair.
var quadSides = [3][2]int{{0, 1}, {0, 2}, {0, 3}}

// VertexSplit[i][j] is the quadrilateral type that puts vertices i and j on
// the same side (01|23 = 0, 02|13 = 1, 03|12 = 2); -1 on the diagonal.
var VertexSplit = [4][4]int{
	{-1, 0, 1, 2},
	{0, -1, 2, 1},
	{1, 2, -1, 0},
	{2, 1, 0, -1},
}

// TriangleCoord returns the index of the triangle type cutting off vertex v
// of tetrahedron tet.
func TriangleCoord(tet, v int) int { return SurfaceCoords*tet + v }

// QuadCoord returns the index of quadrilateral type q in tetrahedron tet.
func QuadCoord(tet, q int) int { return SurfaceCoords*tet + 4 + q }

// Surface is a normal surface in a 3-triangulation, in standard
// coordinates.
type Surface struct {
	t      *tri.Triangulation
	coords []int
}

// NewSurface returns the zero surface in t, which must have dimension 3.
func NewSurface(t *tri.Triangulation) (*Surface, error) {
	if t == nil || t.Dim() != 3 {
		return nil, ErrWrongDimension
	}

	return &Surface{t: t, coords: make([]int, SurfaceCoords*t.Size())}, nil
}

// Len returns the number of coordinates.
func (s *Surface) Len() int { return len(s.coords) }

// Triangulation returns the ambient triangulation.
func (s *Surface) Triangulation() *tri.Triangulation { return s.t }

// Set assigns coordinate i.
func (s *Surface) Set(i, n int) error {
	if i < 0 || i >= len(s.coords) {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(s.coords))
	}
	if n < 0 {
		return fmt.Errorf("%w: coordinate %d = %d", ErrNegative, i, n)
	}
	s.coords[i] = n

	return nil
}

// At returns coordinate i, or 0 when i is out of range.
func (s *Surface) At(i int) int {
	if i < 0 || i >= len(s.coords) {
		return 0
	}

	return s.coords[i]
}

// Validate checks that every tetrahedron uses at most one quadrilateral
// type.
func (s *Surface) Validate() error {
	for tet := 0; tet < s.t.Size(); tet++ {
		used := -1
		for q := 0; q < 3; q++ {
			if s.coords[QuadCoord(tet, q)] == 0 {
				continue
			}
			if used >= 0 {
				return fmt.Errorf("%w: tetrahedron %d has quads %d and %d", ErrIncompatible, tet, used, q)
			}
			used = q
		}
	}

	return nil
}

// Triangulate builds the surface as a 2-triangulation. Triangle pieces
// become one triangle, quadrilaterals two.
//
// Complexity: O(Σ coordinates) pieces, each face matched through a hash.
func (s *Surface) Triangulate() (*tri.Triangulation, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	as, err := newAssembler(s.t)
	if err != nil {
		return nil, err
	}
	for tet := 0; tet < s.t.Size(); tet++ {
		if err := s.addTetrahedron(as, tet); err != nil {
			return nil, err
		}
	}

	return as.finish()
}

// addTetrahedron adds every triangle and quadrilateral piece of tet.
func (s *Surface) addTetrahedron(as *assembler, tet int) error {
	tris := s.coords[TriangleCoord(tet, 0) : TriangleCoord(tet, 0)+4]

	for v := 0; v < 4; v++ {
		o := others(4, v)
		piece := [][]int{{edgeMask(v, o[0]), edgeMask(v, o[1]), edgeMask(v, o[2])}}
		for c := 0; c < tris[v]; c++ {
			copyIdx := c
			pos := func(int, []int) int { return copyIdx }
			if err := as.addPiece(tet, piece, pos); err != nil {
				return err
			}
		}
	}

	for q := 0; q < 3; q++ {
		n := s.coords[QuadCoord(tet, q)]
		if n == 0 {
			continue
		}
		a, b := quadSides[q][0], quadSides[q][1]
		cd := others(4, a, b)
		c, d := cd[0], cd[1]
		// corners in cyclic order around the quad, split along A–C
		A, B, C, D := edgeMask(a, c), edgeMask(a, d), edgeMask(b, d), edgeMask(b, c)
		piece := [][]int{{A, B, C}, {A, C, D}}
		for k := 0; k < n; k++ {
			copyIdx := k
			pos := func(_ int, face []int) int {
				// the arc goes around the vertex its two corners share
				return tris[lowBit(face[0]&face[1])] + copyIdx
			}
			if err := as.addPiece(tet, piece, pos); err != nil {
				return err
			}
		}
	}

	return nil
}
