// SPDX-License-Identifier: MIT
// Package: s1fibre/fibre
//
// map.go — MapToS1 construction and the primitivity test.
//
// A MapToS1 owns a private copy of its triangulation. Ideal inputs of
// dimension 3 and 4 are truncated and simplified on construction, so edge
// numbers of cochains always refer to the working copy returned by
// Triangulation.

package fibre

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/s1fibre/homology"
	"github.com/katalvlaran/s1fibre/tri"
)

// MapToS1 decides whether a triangulated manifold fibres over the circle
// and triangulates the fibre. It is not safe for concurrent use.
type MapToS1 struct {
	t   *tri.Triangulation
	cfg config

	// h1 caches first homology of t; nil after any move.
	h1 *homology.MarkedGroup
}

// New copies t and prepares it for the search.
func New(t *tri.Triangulation, opts ...Option) (*MapToS1, error) {
	if t == nil {
		return nil, ErrNilTriangulation
	}
	if t.IsEmpty() {
		return nil, ErrEmptyTriangulation
	}
	if d := t.Dim(); d < 2 || d > 4 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDimension, d)
	}
	m := &MapToS1{t: t.Clone(), cfg: newConfig(opts...)}
	if m.t.Dim() >= 3 && m.t.IsIdeal() {
		m.t.IdealToFinite()
		m.t.SimplifyLogged(m.cfg.log)
		m.cfg.log.Debug("truncated ideal vertices",
			zap.Int("simplices", m.t.Size()),
			zap.Int("vertices", m.t.CountVertices()))
		if m.t.IsEmpty() {
			return nil, fmt.Errorf("%w: nothing left after truncating ideal vertices", ErrEmptyTriangulation)
		}
	}

	return m, nil
}

// Triangulation returns a copy of the working triangulation. Cochains are
// indexed by its edges.
func (m *MapToS1) Triangulation() *tri.Triangulation { return m.t.Clone() }

// Dim returns the dimension of the working triangulation.
func (m *MapToS1) Dim() int { return m.t.Dim() }

// changed drops everything derived from the working triangulation.
func (m *MapToS1) changed() { m.h1 = nil }

func (m *MapToS1) homology() (*homology.MarkedGroup, error) {
	if m.h1 == nil {
		g, err := homology.H1(m.t)
		if err != nil {
			return nil, err
		}
		m.h1 = g
	}

	return m.h1, nil
}

// rise returns the value of c along the edge from corner a to corner b of
// simplex s.
func (m *MapToS1) rise(c Cochain, s, a, b int) *big.Rat {
	e, p := m.t.SimplexEdge(s, a, b)
	if p.At(0) == a {
		return c[e]
	}

	return new(big.Rat).Neg(c[e])
}

// VerifyPrimitive reports whether c is a nowhere-zero cocycle whose class
// is a primitive element of integral cohomology: its values on a basis of
// the free part of H₁ are integers with greatest common divisor one.
//
// Complexity: O(T + r·E) after H₁ is cached, for T triangles, E edges and
// rank r.
func (m *MapToS1) VerifyPrimitive(c Cochain) bool {
	return !c.HasZero() && m.primitiveClass(c)
}

// primitiveClass is VerifyPrimitive without the nowhere-zero requirement.
func (m *MapToS1) primitiveClass(c Cochain) bool {
	if len(c) != m.t.CountEdges() {
		return false
	}
	if !m.isCocycle(c) {
		return false
	}
	h1, err := m.homology()
	if err != nil || h1.Rank() == 0 {
		return false
	}

	gcd := new(big.Int)
	sum := new(big.Rat)
	term := new(big.Rat)
	for i := 0; i < h1.Rank(); i++ {
		rep, err := h1.FreeRep(i)
		if err != nil {
			return false
		}
		sum.SetInt64(0)
		for j, r := range rep {
			if r.Sign() == 0 {
				continue
			}
			term.SetInt(r)
			term.Mul(term, c[j])
			sum.Add(sum, term)
		}
		if !sum.IsInt() {
			return false
		}
		v := new(big.Int).Abs(sum.Num())
		gcd.GCD(nil, nil, gcd, v)
	}

	return gcd.Cmp(big.NewInt(1)) == 0
}

// isCocycle checks that c sums to zero around the boundary of every
// triangle.
func (m *MapToS1) isCocycle(c Cochain) bool {
	sum := new(big.Rat)
	for i := 0; i < m.t.CountTriangles(); i++ {
		sum.SetInt64(0)
		for j := 0; j < 3; j++ {
			e, q := m.t.TriangleEdge(i, j)
			if q.Sign() > 0 {
				sum.Add(sum, c[e])
			} else {
				sum.Sub(sum, c[e])
			}
		}
		if sum.Sign() != 0 {
			return false
		}
	}

	return true
}
