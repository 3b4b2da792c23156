// SPDX-License-Identifier: MIT
// Package: s1fibre/homology
//
// marked.go — homology of Z^l --N--> Z^n --M--> Z^m at the middle term,
// with explicit representatives.
//
// Algorithm:
//   1. ColumnEchelon(M): M·R = E with rank rM; the trailing n-rM columns of
//      R are a Z-basis K of ker M.
//   2. Rewrite N in the basis R: Rinv·N. Its first rM rows vanish because
//      M·N = 0; the remaining rows form A, the image of N in K-coordinates.
//   3. SmithNormalForm(A) = P·D·Q. In the basis K·P the image of N is
//      spanned by d_i·(K·P)_i, so the quotient is ⊕ Z/d_i ⊕ Z^(k-rA).
//   4. Free representatives are the columns rA..k-1 of K·P.

package homology

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/s1fibre/matrix"
)

// MarkedGroup is the homology ker M / img N of a chain complex fragment,
// together with integer representatives of its free generators.
type MarkedGroup struct {
	m, n    *matrix.IntDense
	torsion []*big.Int
	free    [][]*big.Int
}

// NewMarkedGroup computes ker M / img N. M must have as many columns as N
// has rows and M·N must vanish.
func NewMarkedGroup(m, n *matrix.IntDense) (*MarkedGroup, error) {
	if m == nil || n == nil {
		return nil, matrix.ErrNilMatrix
	}
	if m.Cols() != n.Rows() {
		return nil, fmt.Errorf("%w: M is %d×%d, N is %d×%d", ErrShape, m.Rows(), m.Cols(), n.Rows(), n.Cols())
	}
	g := &MarkedGroup{m: m.Clone(), n: n.Clone()}
	if !g.IsChainComplex() {
		return nil, ErrNotChainComplex
	}

	_, r, rinv, rankM, err := matrix.ColumnEchelon(m)
	if err != nil {
		return nil, err
	}
	coords, err := matrix.Mul(rinv, n)
	if err != nil {
		return nil, err
	}
	k := m.Cols() - rankM
	a, err := matrix.NewIntDense(k, n.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < k; i++ {
		for j := 0; j < n.Cols(); j++ {
			v, err := coords.At(rankM+i, j)
			if err != nil {
				return nil, err
			}
			if err := a.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	d, p, rankA, err := matrix.SmithNormalForm(a)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rankA; i++ {
		di, err := d.At(i, i)
		if err != nil {
			return nil, err
		}
		if di.CmpAbs(big.NewInt(1)) > 0 {
			g.torsion = append(g.torsion, di.Abs(di))
		}
	}

	// basis = R · diag(I_rM, P); its columns rM+rA.. are the free generators
	ext := matrix.Identity(m.Cols())
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v, err := p.At(i, j)
			if err != nil {
				return nil, err
			}
			if err := ext.Set(rankM+i, rankM+j, v); err != nil {
				return nil, err
			}
		}
	}
	basis, err := matrix.Mul(r, ext)
	if err != nil {
		return nil, err
	}
	for j := rankM + rankA; j < m.Cols(); j++ {
		col, err := basis.Column(j)
		if err != nil {
			return nil, err
		}
		g.free = append(g.free, col)
	}

	return g, nil
}

// IsChainComplex reports whether M·N is the zero matrix.
func (g *MarkedGroup) IsChainComplex() bool {
	prod, err := matrix.Mul(g.m, g.n)

	return err == nil && prod.IsZero()
}

// Rank returns the rank of the free part.
func (g *MarkedGroup) Rank() int { return len(g.free) }

// Torsion returns the invariant factors greater than one, each dividing the
// next.
func (g *MarkedGroup) Torsion() []*big.Int {
	out := make([]*big.Int, len(g.torsion))
	for i, t := range g.torsion {
		out[i] = new(big.Int).Set(t)
	}

	return out
}

// FreeRep returns a cycle of the middle chain group representing the i-th
// free generator.
func (g *MarkedGroup) FreeRep(i int) ([]*big.Int, error) {
	if i < 0 || i >= len(g.free) {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoGenerator, i, len(g.free))
	}
	out := make([]*big.Int, len(g.free[i]))
	for j, v := range g.free[i] {
		out[j] = new(big.Int).Set(v)
	}

	return out, nil
}

// M returns a copy of the outgoing map.
func (g *MarkedGroup) M() *matrix.IntDense { return g.m.Clone() }

// N returns a copy of the incoming map, whose image is divided out.
func (g *MarkedGroup) N() *matrix.IntDense { return g.n.Clone() }

// IsTrivial reports whether the group is zero.
func (g *MarkedGroup) IsTrivial() bool { return len(g.free) == 0 && len(g.torsion) == 0 }

// String renders the group as in "2 Z + Z_3", or "0" when trivial.
func (g *MarkedGroup) String() string {
	var parts []string
	switch r := len(g.free); {
	case r == 1:
		parts = append(parts, "Z")
	case r > 1:
		parts = append(parts, fmt.Sprintf("%d Z", r))
	}
	for _, t := range g.torsion {
		parts = append(parts, "Z_"+t.String())
	}
	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, " + ")
}
