// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/s1fibre/matrix"
)

// mustInt builds a matrix from int64 rows or fails the test.
func mustInt(t *testing.T, rows [][]int64) *matrix.IntDense {
	t.Helper()
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := matrix.NewIntDense(r, c)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.SetInt64(i, j, v))
		}
	}

	return m
}

// intAt reads an entry as int64.
func intAt(t *testing.T, m *matrix.IntDense, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v.Int64()
}

func TestIntDense_ShapeAndBounds(t *testing.T) {
	_, err := matrix.NewIntDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	empty, err := matrix.NewIntDense(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
	assert.True(t, empty.IsZero())

	m := mustInt(t, [][]int64{{1, 2}, {3, 4}})
	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, nil), matrix.ErrNilValue)

	// At returns a copy
	v, _ := m.At(0, 0)
	v.SetInt64(99)
	assert.Equal(t, int64(1), intAt(t, m, 0, 0))

	require.NoError(t, m.AddInt64(1, 1, -4))
	assert.Equal(t, int64(0), intAt(t, m, 1, 1))
}

func TestIntDense_MulTranspose(t *testing.T) {
	a := mustInt(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	b := a.Transpose()
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, int64(6), intAt(t, b, 2, 1))

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.True(t, p.Equal(mustInt(t, [][]int64{{14, 32}, {32, 77}})))

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// zero inner dimension gives a zero product
	z1, _ := matrix.NewIntDense(2, 0)
	z2, _ := matrix.NewIntDense(0, 3)
	zp, err := matrix.Mul(z1, z2)
	require.NoError(t, err)
	assert.True(t, zp.IsZero())
	assert.Equal(t, 3, zp.Cols())
}

func TestIntDense_Column(t *testing.T) {
	a := mustInt(t, [][]int64{{1, 2}, {3, 4}})
	col, err := a.Column(1)
	require.NoError(t, err)
	assert.Equal(t, 0, col[1].Cmp(big.NewInt(4)))
	_, err = a.Column(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}
