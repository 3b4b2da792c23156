// SPDX-License-Identifier: MIT

package fibre

import (
	"fmt"

	"github.com/katalvlaran/s1fibre/dim1"
	"github.com/katalvlaran/s1fibre/normal"
	"github.com/katalvlaran/s1fibre/tri"
)

// Fibre is the pre-image of the fibre level. Exactly one of Curve (for a
// 2-dimensional ambient triangulation) and Triangulation is set.
type Fibre struct {
	Dim           int
	Curve         *dim1.Complex
	Triangulation *tri.Triangulation
}

// TriangulateFibre triangulates the fibre of c over the configured level.
// c is expected to pass VerifyPrimitive and VerifySimpleBundle; the result
// is then a manifold of dimension Dim()-1 with boundary exactly when the
// working triangulation has boundary.
//
// Complexity: O(n) pieces after one Lift, plus the gluing of their faces.
func (m *MapToS1) TriangulateFibre(c Cochain) (*Fibre, error) {
	l, err := m.Lift(c)
	if err != nil {
		return nil, err
	}
	switch m.t.Dim() {
	case 2:
		curve, err := m.fibreCurve(l)
		if err != nil {
			return nil, err
		}
		return &Fibre{Dim: 1, Curve: curve}, nil
	case 3:
		s, err := m.fibreSurface(l)
		if err != nil {
			return nil, err
		}
		return &Fibre{Dim: 2, Triangulation: s}, nil
	default:
		h, err := m.fibreHypersurface(l)
		if err != nil {
			return nil, err
		}
		return &Fibre{Dim: 3, Triangulation: h}, nil
	}
}

// fibreSurface: the three intervals of a tetrahedron carry triangles around
// its lowest corner, quadrilaterals splitting the lower pair from the upper
// pair, and triangles around its highest corner.
//
// Complexity: O(Σ counts), the number of normal pieces.
func (m *MapToS1) fibreSurface(l *Lift) (*tri.Triangulation, error) {
	s, err := normal.NewSurface(m.t)
	if err != nil {
		return nil, err
	}
	for tet, o := range l.Order {
		n := l.Counts[tet]
		set := [][2]int{
			{normal.TriangleCoord(tet, o[0]), n[0]},
			{normal.QuadCoord(tet, normal.VertexSplit[o[0]][o[1]]), n[1]},
			{normal.TriangleCoord(tet, o[3]), n[2]},
		}
		for _, kv := range set {
			if err := s.Set(kv[0], kv[1]); err != nil {
				return nil, err
			}
		}
	}

	return s.Triangulate()
}

// fibreHypersurface: the four intervals of a pentachoron carry tetrahedra
// around the lowest corner, prisms around the lowest edge, prisms around
// the highest edge and tetrahedra around the highest corner.
func (m *MapToS1) fibreHypersurface(l *Lift) (*tri.Triangulation, error) {
	h, err := normal.NewHypersurface(m.t)
	if err != nil {
		return nil, err
	}
	for p, o := range l.Order {
		n := l.Counts[p]
		set := [][2]int{
			{normal.TetrahedronCoord(p, o[0]), n[0]},
			{normal.PrismCoord(p, tri.EdgeNumber(4, o[0], o[1])), n[1]},
			{normal.PrismCoord(p, tri.EdgeNumber(4, o[3], o[4])), n[2]},
			{normal.TetrahedronCoord(p, o[4]), n[3]},
		}
		for _, kv := range set {
			if err := h.Set(kv[0], kv[1]); err != nil {
				return nil, err
			}
		}
	}

	return h.Triangulate()
}

// fibreCurve builds the 1-dimensional fibre of a surface. Inside triangle s
// with corners o0 < o1 < o2 by height, Counts[s][0] arcs cut off o0 and
// Counts[s][1] arcs cut off o2. Every arc has slot 0 on the long edge o0–o2
// and slot 1 on the short edge. Along any edge the arcs are met in order of
// increasing height from both sides, which fixes the gluing.
//
// Complexity: O(Σ counts) arcs, each glued once per end.
func (m *MapToS1) fibreCurve(l *Lift) (*dim1.Complex, error) {
	total := 0
	for _, n := range l.Counts {
		total += n[0] + n[1]
	}
	curve := dim1.New(total)

	// arcs[s][0] cut off the lowest corner, arcs[s][1] the highest
	arcs := make([][2][]int, m.t.Size())
	for s, n := range l.Counts {
		for j := 0; j < 2; j++ {
			for k := 0; k < n[j]; k++ {
				e, err := curve.NewEdge(dim1.Free, dim1.Free)
				if err != nil {
					return nil, err
				}
				arcs[s][j] = append(arcs[s][j], e)
			}
		}
	}

	// crossing lists the arc ends on the edge opposite corner x of s.
	crossing := func(s, x int) []dim1.End {
		o := l.Order[s]
		var out []dim1.End
		switch x {
		case o[1]:
			for _, e := range arcs[s][0] {
				out = append(out, dim1.End{Edge: e, Slot: 0})
			}
			for _, e := range arcs[s][1] {
				out = append(out, dim1.End{Edge: e, Slot: 0})
			}
		case o[0]:
			for _, e := range arcs[s][1] {
				out = append(out, dim1.End{Edge: e, Slot: 1})
			}
		default:
			for _, e := range arcs[s][0] {
				out = append(out, dim1.End{Edge: e, Slot: 1})
			}
		}

		return out
	}

	for _, edge := range m.t.Faces(1) {
		if edge.IsBoundary() || edge.Degree() != 2 {
			continue
		}
		a, b := edge.Embedding(0), edge.Embedding(1)
		ea, eb := crossing(a.Simplex, a.Face), crossing(b.Simplex, b.Face)
		if len(ea) != len(eb) {
			return nil, fmt.Errorf("%w: edge %d meets %d and %d arcs",
				ErrMatchingEquations, edge.Index(), len(ea), len(eb))
		}
		for k := range ea {
			if err := curve.JoinEdges(ea[k].Edge, ea[k].Slot, eb[k].Edge, eb[k].Slot); err != nil {
				return nil, fmt.Errorf("%w: edge %d: %v", ErrMatchingEquations, edge.Index(), err)
			}
		}
	}

	return curve, nil
}
