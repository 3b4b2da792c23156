// SPDX-License-Identifier: MIT

package tri

import (
	"github.com/katalvlaran/s1fibre/dsu"
	"github.com/katalvlaran/s1fibre/matrix"
)

// EulerChar returns the alternating count of faces of every dimension.
func (t *Triangulation) EulerChar() int {
	chi := 0
	sign := 1
	for k := 0; k <= t.dim; k++ {
		chi += sign * t.CountFaces(k)
		sign = -sign
	}

	return chi
}

// boundaryEuler returns the Euler characteristic of the boundary, counting
// the boundary faces of every dimension below d.
func (t *Triangulation) boundaryEuler() int {
	chi := 0
	sign := 1
	for k := 0; k < t.dim; k++ {
		for _, f := range t.Faces(k) {
			if f.boundary {
				chi += sign
			}
		}
		sign = -sign
	}

	return chi
}

// CountComponents returns the number of connected components.
func (t *Triangulation) CountComponents() int {
	u := dsu.New(len(t.simplices))
	for s, sim := range t.simplices {
		for f := 0; f <= t.dim; f++ {
			if sim.adj[f] >= 0 {
				u.Union(s, sim.adj[f])
			}
		}
	}

	return u.Sets()
}

// IsConnected reports whether the triangulation is non-empty with one component.
func (t *Triangulation) IsConnected() bool {
	return len(t.simplices) > 0 && t.CountComponents() == 1
}

// IsClosed reports whether every facet is glued.
func (t *Triangulation) IsClosed() bool {
	return t.CountBoundaryFacets() == 0
}

// HasBoundaryFacets reports whether some facet is unglued.
func (t *Triangulation) HasBoundaryFacets() bool {
	return !t.IsClosed()
}

// CountBoundaryComponents returns the number of connected pieces of the
// boundary, where two boundary facets touch when they meet along a
// (d-2)-face with only internal facets between them around that face.
func (t *Triangulation) CountBoundaryComponents() int {
	_, n := t.BoundaryComponents()

	return n
}

// BoundaryComponents labels every boundary facet with its boundary
// component. comp is indexed by (d-1)-face and holds -1 for internal
// facets; n is the number of components.
//
// Boundary facets are joined by walking around each of their ridges
// through the simplices that contain it, so two boundary pieces that only
// share a vertex or a ridge pinched from both sides stay apart.
//
// Complexity: O(n · d² · deg) where deg bounds the ridge degrees.
func (t *Triangulation) BoundaryComponents() (comp []int, n int) {
	comp, sizes := t.boundaryComponents()

	return comp, len(sizes)
}

// boundaryComponents is BoundaryComponents with the facet count of each
// component.
func (t *Triangulation) boundaryComponents() (comp []int, sizes []int) {
	sk := t.skel()
	d := t.dim
	facets := sk.faces[d-1]
	u := dsu.New(len(facets))
	for _, f := range facets {
		if !f.boundary {
			continue
		}
		e := f.emb[0]
		for x := 0; x <= d; x++ {
			if x == e.Face {
				continue
			}
			if s, b, ok := t.walkRidge(e.Simplex, e.Face, x); ok {
				u.Union(f.index, sk.of[d-1][s][b])
			}
		}
	}

	comp = make([]int, len(facets))
	label := make(map[int]int)
	for _, f := range facets {
		if !f.boundary {
			comp[f.index] = -1
			continue
		}
		root := u.Find(f.index)
		c, ok := label[root]
		if !ok {
			c = len(sizes)
			label[root] = c
			sizes = append(sizes, 0)
		}
		comp[f.index] = c
		sizes[c]++
	}

	return comp, sizes
}

// walkRidge starts at boundary facet a of simplex s and turns around the
// ridge opposite corners a and b until it meets the next boundary facet,
// which it returns as (simplex, facet).
func (t *Triangulation) walkRidge(s, a, b int) (int, int, bool) {
	for steps := 0; steps <= len(t.simplices)*(t.dim+1); steps++ {
		sim := t.simplices[s]
		u := sim.adj[b]
		if u < 0 {
			return s, b, true
		}
		g := sim.gluing[b]
		s, a, b = u, g.At(b), g.At(a)
	}

	return 0, 0, false
}

// IsValid reports whether every face is valid.
func (t *Triangulation) IsValid() bool {
	for k := 0; k < t.dim; k++ {
		for _, f := range t.Faces(k) {
			if !f.IsValid() {
				return false
			}
		}
	}

	return true
}

// IsIdeal reports whether some vertex is ideal.
func (t *Triangulation) IsIdeal() bool {
	if t.dim < 3 {
		return false
	}
	for _, v := range t.Faces(0) {
		if v.IsIdeal() {
			return true
		}
	}

	return false
}

// BoundaryMatrix returns the integer boundary map of the cellular chain
// complex: k = 1 gives the vertices-by-edges matrix (vertex 1 of an edge
// counts +1, vertex 0 counts -1); k = 2 gives the edges-by-triangles matrix
// with the incidence signs of TriangleEdge.
func (t *Triangulation) BoundaryMatrix(k int) (*matrix.IntDense, error) {
	switch k {
	case 1:
		m, err := matrix.NewIntDense(t.CountVertices(), t.CountEdges())
		if err != nil {
			return nil, err
		}
		for _, e := range t.Faces(1) {
			if err := m.AddInt64(e.Vertex(1), e.index, 1); err != nil {
				return nil, err
			}
			if err := m.AddInt64(e.Vertex(0), e.index, -1); err != nil {
				return nil, err
			}
		}
		return m, nil
	case 2:
		nt := t.CountTriangles()
		m, err := matrix.NewIntDense(t.CountEdges(), nt)
		if err != nil {
			return nil, err
		}
		for i := 0; i < nt; i++ {
			for j := 0; j < 3; j++ {
				e, q := t.TriangleEdge(i, j)
				if err := m.AddInt64(e, i, int64(q.Sign())); err != nil {
					return nil, err
				}
			}
		}
		return m, nil
	default:
		return nil, ErrOutOfRange
	}
}

// hasTrivialH1 reports whether H1 with integer coefficients vanishes:
// rank ∂1 + rank ∂2 must equal the number of edges and every invariant
// factor of ∂2 must be a unit.
func (t *Triangulation) hasTrivialH1() bool {
	ne := t.CountEdges()
	if ne == 0 {
		return true
	}
	d1, err := t.BoundaryMatrix(1)
	if err != nil {
		return false
	}
	d2, err := t.BoundaryMatrix(2)
	if err != nil {
		return false
	}
	_, _, _, r1, err := matrix.ColumnEchelon(d1)
	if err != nil {
		return false
	}
	snf, _, r2, err := matrix.SmithNormalForm(d2)
	if err != nil {
		return false
	}
	if r1+r2 != ne {
		return false
	}
	for i := 0; i < r2; i++ {
		v, err := snf.At(i, i)
		if err != nil || !v.IsInt64() || v.Int64() != 1 {
			return false
		}
	}

	return true
}
