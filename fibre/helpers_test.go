// SPDX-License-Identifier: MIT

package fibre

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/s1fibre/builder"
)

func TestFloorAndFrac(t *testing.T) {
	cases := []struct {
		x     *big.Rat
		floor int64
		frac  *big.Rat
	}{
		{big.NewRat(7, 2), 3, big.NewRat(1, 2)},
		{big.NewRat(-1, 3), -1, big.NewRat(2, 3)},
		{big.NewRat(-4, 1), -4, new(big.Rat)},
		{big.NewRat(0, 1), 0, new(big.Rat)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.floor, floorRat(tc.x).Int64(), tc.x.String())
		assert.Zero(t, tc.frac.Cmp(fracRat(tc.x)), tc.x.String())
	}
}

func TestCrossedSides(t *testing.T) {
	assert.Equal(t, [2]int{2, 3}, crossedSides(1))
	assert.Equal(t, [2]int{1, 3}, crossedSides(2))
	assert.Equal(t, [2]int{1, 2}, crossedSides(3))
}

func TestSurfaceShapes(t *testing.T) {
	sphere, err := builder.SphereBoundary(2)
	require.NoError(t, err)
	shapes, err := surfaceShapes(sphere)
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Equal(t, shape{euler: 2}, shapes[0])
	assert.Zero(t, shapes[0].genus())

	// a disc and a torus side by side
	disc, err := builder.Ball(2)
	require.NoError(t, err)
	torus, err := builder.FromComplex(builder.Torus7())
	require.NoError(t, err)
	both := disc.Clone()
	_, err = both.InsertTriangulation(torus)
	require.NoError(t, err)
	shapes, err = surfaceShapes(both)
	require.NoError(t, err)
	require.Len(t, shapes, 2)
	assert.Equal(t, shape{euler: 1, boundary: 1}, shapes[0])
	assert.Equal(t, shape{euler: 0}, shapes[1])
	assert.Equal(t, 1, shapes[1].genus())

	annulus, err := builder.FromComplex(builder.Complex{{0, 1, 3}, {1, 3, 4}, {1, 2, 4}, {2, 4, 5}, {0, 2, 5}, {0, 3, 5}})
	require.NoError(t, err)
	shapes, err = surfaceShapes(annulus)
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Equal(t, shape{euler: 0, boundary: 2}, shapes[0])
	assert.Zero(t, shapes[0].genus())
}

func TestLevelPicksMidpoints(t *testing.T) {
	tr, _, err := builder.ProductWithCircle(builder.Circle3())
	require.NoError(t, err)
	heights := []*big.Rat{big.NewRat(0, 1), big.NewRat(5, 4), big.NewRat(-1, 2)}

	m, err := New(tr)
	require.NoError(t, err)
	// reduced heights 0, 1/4, 1/2 give midpoints 1/8, 3/8, 3/4
	lvl, err := m.level(heights)
	require.NoError(t, err)
	assert.Zero(t, big.NewRat(1, 8).Cmp(lvl))

	m, err = New(tr, WithLevel(2))
	require.NoError(t, err)
	lvl, err = m.level(heights)
	require.NoError(t, err)
	assert.Zero(t, big.NewRat(3, 4).Cmp(lvl))

	m, err = New(tr, WithLevel(4))
	require.NoError(t, err)
	lvl, err = m.level(heights)
	require.NoError(t, err)
	assert.Zero(t, big.NewRat(3, 8).Cmp(lvl))

	_, err = m.level(nil)
	assert.ErrorIs(t, err, ErrNoVertices)
}

func TestDiagnosticString(t *testing.T) {
	assert.Equal(t, "vtx 0 z2 vtx 1 z1", Diagnostic{Dim: 2, Vertices: [][]int{{2}, {1}}}.String())
	assert.Equal(t, "vtx 0 c1i0", Diagnostic{Dim: 3, Vertices: [][]int{{1, 0}}}.String())
	d := Diagnostic{Dim: 4, Vertices: [][]int{{2, 0, 1, 1, 0}, {0}}}
	assert.Equal(t, "vtx 0 C2:g0b1:g1b0 vtx 1 C0", d.String())
	assert.Equal(t, []int{2, 0, 1, 1, 0, 0}, d.Flat())
}
