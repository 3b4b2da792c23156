// SPDX-License-Identifier: MIT

package homology_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/s1fibre/builder"
	"github.com/katalvlaran/s1fibre/homology"
	"github.com/katalvlaran/s1fibre/matrix"
	"github.com/katalvlaran/s1fibre/tri"
)

func fromRows(t *testing.T, r, c int, vals ...int64) *matrix.IntDense {
	t.Helper()
	m, err := matrix.NewIntDense(r, c)
	require.NoError(t, err)
	for i, v := range vals {
		require.NoError(t, m.SetInt64(i/c, i%c, v))
	}

	return m
}

// column turns a vector into an n×1 matrix.
func column(t *testing.T, v []*big.Int) *matrix.IntDense {
	t.Helper()
	m, err := matrix.NewIntDense(len(v), 1)
	require.NoError(t, err)
	for i, x := range v {
		require.NoError(t, m.Set(i, 0, x))
	}

	return m
}

func TestNewMarkedGroup_Errors(t *testing.T) {
	_, err := homology.NewMarkedGroup(fromRows(t, 2, 3), fromRows(t, 2, 2))
	assert.ErrorIs(t, err, homology.ErrShape)

	_, err = homology.NewMarkedGroup(fromRows(t, 1, 1, 1), fromRows(t, 1, 1, 1))
	assert.ErrorIs(t, err, homology.ErrNotChainComplex)

	_, err = homology.NewMarkedGroup(nil, fromRows(t, 1, 1))
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNewMarkedGroup_Small(t *testing.T) {
	// Z² / <(2, 0)> = Z + Z_2
	g, err := homology.NewMarkedGroup(fromRows(t, 1, 2, 0, 0), fromRows(t, 2, 1, 2, 0))
	require.NoError(t, err)
	assert.True(t, g.IsChainComplex())
	assert.Equal(t, 1, g.Rank())
	require.Len(t, g.Torsion(), 1)
	assert.Equal(t, int64(2), g.Torsion()[0].Int64())
	assert.Equal(t, "Z + Z_2", g.String())

	rep, err := g.FreeRep(0)
	require.NoError(t, err)
	require.Len(t, rep, 2)
	// the generator must have a unit second coordinate
	assert.Equal(t, 0, new(big.Int).Abs(rep[1]).Cmp(big.NewInt(1)))

	_, err = g.FreeRep(1)
	assert.ErrorIs(t, err, homology.ErrNoGenerator)

	// Z³ --M--> Z with M = (1 1 1): kernel of rank 2, nothing divided out
	g, err = homology.NewMarkedGroup(fromRows(t, 1, 3, 1, 1, 1), fromRows(t, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rank())
	assert.Empty(t, g.Torsion())
	assert.Equal(t, "2 Z", g.String())
}

func TestH1_NamedManifolds(t *testing.T) {
	lens, err := builder.LensL31()
	require.NoError(t, err)
	lst, err := builder.LayeredSolidTorus()
	require.NoError(t, err)
	s3, err := builder.SphereBoundary(3)
	require.NoError(t, err)
	torus, err := builder.FromComplex(builder.Torus7())
	require.NoError(t, err)
	s2s1, _, err := builder.ProductWithCircle(builder.SphereComplex(2))
	require.NoError(t, err)
	t3, _, err := builder.ProductWithCircle(builder.Torus7())
	require.NoError(t, err)

	tests := []struct {
		name   string
		tr     *tri.Triangulation
		h1     string
		h1Rank int
	}{
		{"L(3,1)", lens, "Z_3", 0},
		{"solid torus", lst, "Z", 1},
		{"S3", s3, "0", 0},
		{"torus", torus, "2 Z", 2},
		{"S2xS1", s2s1, "Z", 1},
		{"T3", t3, "3 Z", 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, err := homology.H1(tc.tr)
			require.NoError(t, err)
			assert.Equal(t, tc.h1, h.String())

			c, err := homology.H1Cohomology(tc.tr)
			require.NoError(t, err)
			assert.Equal(t, tc.h1Rank, c.Rank())
			assert.Empty(t, c.Torsion())
			assert.Equal(t, tc.tr.CountEdges(), c.N().Rows())
			assert.Equal(t, tc.tr.CountVertices(), c.N().Cols())
		})
	}
}

func TestRepresentatives_CyclesAndCocycles(t *testing.T) {
	p, c0, err := builder.ProductWithCircle(builder.SphereComplex(2))
	require.NoError(t, err)
	d1, err := homology.Boundary1(p)
	require.NoError(t, err)
	d2, err := homology.Boundary2(p)
	require.NoError(t, err)

	h, err := homology.H1(p)
	require.NoError(t, err)
	z, err := h.FreeRep(0)
	require.NoError(t, err)
	img, err := matrix.Mul(d1, column(t, z))
	require.NoError(t, err)
	assert.True(t, img.IsZero(), "homology representative must be a cycle")

	co, err := homology.H1Cohomology(p)
	require.NoError(t, err)
	phi, err := co.FreeRep(0)
	require.NoError(t, err)
	img, err = matrix.Mul(d2.Transpose(), column(t, phi))
	require.NoError(t, err)
	assert.True(t, img.IsZero(), "cohomology representative must be a cocycle")

	// both generators pair to ±1, and so does the product cocycle
	assert.Equal(t, 0, new(big.Int).Abs(homology.Evaluate(phi, z)).Cmp(big.NewInt(1)))
	prod := make([]*big.Int, len(c0))
	for i, v := range c0 {
		prod[i] = big.NewInt(v)
	}
	assert.Equal(t, 0, new(big.Int).Abs(homology.Evaluate(prod, z)).Cmp(big.NewInt(1)))
}
