// SPDX-License-Identifier: MIT

package tri

import (
	"fmt"

	"github.com/katalvlaran/s1fibre/perm"
)

// simplex stores the gluings of one top-dimensional simplex.
// adj[f] is -1 when facet f lies on the boundary.
type simplex struct {
	adj    [MaxDim + 1]int
	gluing [MaxDim + 1]perm.Perm
}

// Triangulation is a semi-simplicial triangulation of dimension 2, 3 or 4:
// a list of top simplices with some facets glued in pairs by affine maps.
//
// Simplices are addressed by index; removing a simplex renumbers every
// simplex that followed it. The skeleton (faces of lower dimension) is
// computed on demand and discarded by every mutation, so Face values and
// indices obtained before a change must not be used after it.
type Triangulation struct {
	dim       int
	simplices []simplex
	sk        *skeleton
}

// New returns an empty triangulation of the given dimension.
func New(dim int) (*Triangulation, error) {
	if dim < MinDim || dim > MaxDim {
		return nil, fmt.Errorf("%w: %d", ErrBadDimension, dim)
	}

	return &Triangulation{dim: dim}, nil
}

// Dim returns the dimension of the top simplices.
func (t *Triangulation) Dim() int { return t.dim }

// Size returns the number of top simplices.
func (t *Triangulation) Size() int { return len(t.simplices) }

// IsEmpty reports whether the triangulation has no simplices.
func (t *Triangulation) IsEmpty() bool { return len(t.simplices) == 0 }

// NewSimplex appends an isolated simplex and returns its index.
func (t *Triangulation) NewSimplex() int {
	return t.NewSimplices(1)
}

// NewSimplices appends n isolated simplices and returns the index of the first.
func (t *Triangulation) NewSimplices(n int) int {
	first := len(t.simplices)
	for i := 0; i < n; i++ {
		var s simplex
		for f := range s.adj {
			s.adj[f] = -1
			s.gluing[f] = perm.Identity()
		}
		t.simplices = append(t.simplices, s)
	}
	t.changed()

	return first
}

func (t *Triangulation) changed() { t.sk = nil }

func (t *Triangulation) checkFacet(s, f int) error {
	if s < 0 || s >= len(t.simplices) {
		return fmt.Errorf("%w: simplex %d of %d", ErrOutOfRange, s, len(t.simplices))
	}
	if f < 0 || f > t.dim {
		return fmt.Errorf("%w: facet %d of a %d-simplex", ErrOutOfRange, f, t.dim)
	}

	return nil
}

// Adjacent returns the simplex glued to facet f of s, or -1 on the boundary.
func (t *Triangulation) Adjacent(s, f int) int {
	return t.simplices[s].adj[f]
}

// Gluing returns the gluing permutation across facet f of s. It is only
// meaningful when Adjacent(s, f) >= 0.
func (t *Triangulation) Gluing(s, f int) perm.Perm {
	return t.simplices[s].gluing[f]
}

// Join glues facet f of simplex s to facet g[f] of simplex u, so that vertex
// i of s is identified with vertex g[i] of u. The reverse gluing is recorded
// on u automatically.
func (t *Triangulation) Join(s, f, u int, g perm.Perm) error {
	if err := t.checkFacet(s, f); err != nil {
		return err
	}
	if err := t.checkFacet(u, 0); err != nil {
		return err
	}
	if !g.IsValid() || !g.Restrict(t.dim+1) {
		return fmt.Errorf("%w: %s", ErrBadGluing, g.String(MaxDim+1))
	}
	uf := g.At(f)
	if s == u && uf == f {
		return fmt.Errorf("%w: facet %d of simplex %d glued to itself", ErrBadGluing, f, s)
	}
	if t.simplices[s].adj[f] >= 0 {
		return fmt.Errorf("%w: simplex %d facet %d", ErrFacetGlued, s, f)
	}
	if t.simplices[u].adj[uf] >= 0 {
		return fmt.Errorf("%w: simplex %d facet %d", ErrFacetGlued, u, uf)
	}
	t.simplices[s].adj[f] = u
	t.simplices[s].gluing[f] = g
	t.simplices[u].adj[uf] = s
	t.simplices[u].gluing[uf] = g.Inverse()
	t.changed()

	return nil
}

// Unjoin detaches facet f of s from its partner. Boundary facets are left alone.
func (t *Triangulation) Unjoin(s, f int) error {
	if err := t.checkFacet(s, f); err != nil {
		return err
	}
	u := t.simplices[s].adj[f]
	if u < 0 {
		return nil
	}
	uf := t.simplices[s].gluing[f].At(f)
	t.simplices[u].adj[uf] = -1
	t.simplices[u].gluing[uf] = perm.Identity()
	t.simplices[s].adj[f] = -1
	t.simplices[s].gluing[f] = perm.Identity()
	t.changed()

	return nil
}

// Isolate unglues every facet of s.
func (t *Triangulation) Isolate(s int) error {
	for f := 0; f <= t.dim; f++ {
		if err := t.Unjoin(s, f); err != nil {
			return err
		}
	}

	return nil
}

// RemoveSimplex isolates s and deletes it; simplices after s shift down by one.
func (t *Triangulation) RemoveSimplex(s int) error {
	if err := t.checkFacet(s, 0); err != nil {
		return err
	}
	drop := make([]bool, len(t.simplices))
	drop[s] = true
	t.removeSimplices(drop)

	return nil
}

// removeSimplices deletes every simplex s with drop[s], unglueing them first
// and renumbering the survivors in order.
func (t *Triangulation) removeSimplices(drop []bool) {
	newIndex := make([]int, len(t.simplices))
	kept := 0
	for s := range t.simplices {
		if drop[s] {
			newIndex[s] = -1
			continue
		}
		newIndex[s] = kept
		kept++
	}
	out := make([]simplex, 0, kept)
	for s, sim := range t.simplices {
		if drop[s] {
			continue
		}
		for f := 0; f <= t.dim; f++ {
			if sim.adj[f] < 0 {
				continue
			}
			if n := newIndex[sim.adj[f]]; n >= 0 {
				sim.adj[f] = n
			} else {
				sim.adj[f] = -1
				sim.gluing[f] = perm.Identity()
			}
		}
		out = append(out, sim)
	}
	t.simplices = out
	t.changed()
}

// Clone returns a deep copy without the cached skeleton.
func (t *Triangulation) Clone() *Triangulation {
	c := &Triangulation{dim: t.dim, simplices: make([]simplex, len(t.simplices))}
	copy(c.simplices, t.simplices)

	return c
}

// InsertTriangulation appends a copy of every simplex of o, keeping its
// gluings, and returns the index of the first copy. The result is the
// disjoint union of t and o.
//
// Complexity: O(|o|).
func (t *Triangulation) InsertTriangulation(o *Triangulation) (int, error) {
	if o == nil || o.dim != t.dim {
		return 0, fmt.Errorf("%w: cannot insert into dimension %d", ErrBadDimension, t.dim)
	}
	first, n := len(t.simplices), len(o.simplices)
	for _, sim := range o.simplices[:n:n] {
		for f := range sim.adj {
			if sim.adj[f] >= 0 {
				sim.adj[f] += first
			}
		}
		t.simplices = append(t.simplices, sim)
	}
	t.changed()

	return first, nil
}

// IsIdenticalTo reports whether both triangulations have the same simplices
// glued in the same way, without allowing any relabelling.
func (t *Triangulation) IsIdenticalTo(o *Triangulation) bool {
	if t.dim != o.dim || len(t.simplices) != len(o.simplices) {
		return false
	}
	for s := range t.simplices {
		for f := 0; f <= t.dim; f++ {
			a, b := t.simplices[s], o.simplices[s]
			if a.adj[f] != b.adj[f] {
				return false
			}
			if a.adj[f] >= 0 && a.gluing[f] != b.gluing[f] {
				return false
			}
		}
	}

	return true
}

// CountBoundaryFacets returns the number of unglued facets.
func (t *Triangulation) CountBoundaryFacets() int {
	n := 0
	for _, sim := range t.simplices {
		for f := 0; f <= t.dim; f++ {
			if sim.adj[f] < 0 {
				n++
			}
		}
	}

	return n
}
