// SPDX-License-Identifier: MIT

package homology

import (
	"math/big"

	"github.com/katalvlaran/s1fibre/matrix"
	"github.com/katalvlaran/s1fibre/tri"
)

// Boundary1 returns ∂₁ as a vertices-by-edges matrix: an edge maps to
// vertex(1) - vertex(0).
func Boundary1(t *tri.Triangulation) (*matrix.IntDense, error) {
	return t.BoundaryMatrix(1)
}

// Boundary2 returns ∂₂ as an edges-by-triangles matrix, with the incidence
// signs of tri.(*Triangulation).TriangleEdge.
func Boundary2(t *tri.Triangulation) (*matrix.IntDense, error) {
	return t.BoundaryMatrix(2)
}

// H1 returns H₁(t; Z) marked by edge cycles.
func H1(t *tri.Triangulation) (*MarkedGroup, error) {
	d1, err := Boundary1(t)
	if err != nil {
		return nil, err
	}
	d2, err := Boundary2(t)
	if err != nil {
		return nil, err
	}

	return NewMarkedGroup(d1, d2)
}

// H1Cohomology returns H¹(t; Z) marked by edge cocycles. Its N() is the
// coboundary C⁰ → C¹ (edges by vertices).
func H1Cohomology(t *tri.Triangulation) (*MarkedGroup, error) {
	d1, err := Boundary1(t)
	if err != nil {
		return nil, err
	}
	d2, err := Boundary2(t)
	if err != nil {
		return nil, err
	}

	return NewMarkedGroup(d2.Transpose(), d1.Transpose())
}

// Evaluate pairs an integer cochain with an integer chain of the same
// length. A length mismatch pairs over the common prefix.
func Evaluate(cochain, chain []*big.Int) *big.Int {
	sum := new(big.Int)
	var term big.Int
	for i := 0; i < len(cochain) && i < len(chain); i++ {
		term.Mul(cochain[i], chain[i])
		sum.Add(sum, &term)
	}

	return sum
}
