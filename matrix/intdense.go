// SPDX-License-Identifier: MIT
// Package: s1fibre/matrix
//
// intdense.go — row-major dense matrix of arbitrary-precision integers.
//
// Contract:
//   • Shapes with zero rows or zero columns are legal (empty chain groups).
//   • At returns a copy; callers never alias internal storage.
//   • Row/column operations are unexported and used by the reductions.
//
// Complexity:
//   • Storage O(r·c) big.Int values; elementwise ops O(r·c) big-int ops.

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with IntDense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("IntDense.%s(%d,%d): %w", method, row, col, err)
}

// IntDense is a row-major matrix of big.Int values.
type IntDense struct {
	r, c int       // number of rows and columns
	data []big.Int // flat backing storage, length == r*c
}

// NewIntDense creates an r×c zero matrix.
// Stage 1 (Validate): rows, cols ≥ 0.
// Stage 2 (Prepare): allocate flat storage (zero values of big.Int are 0).
// Complexity: O(r*c).
func NewIntDense(rows, cols int) (*IntDense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadShape, rows, cols)
	}

	return &IntDense{r: rows, c: cols, data: make([]big.Int, rows*cols)}, nil
}

// Identity returns the n×n identity matrix (n < 0 is treated as 0).
func Identity(n int) *IntDense {
	if n < 0 {
		n = 0
	}
	m := &IntDense{r: n, c: n, data: make([]big.Int, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m
}

// Rows returns the number of rows.
func (m *IntDense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *IntDense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *IntDense) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// entry returns a pointer into the storage; callers must have checked bounds.
func (m *IntDense) entry(row, col int) *big.Int {
	return &m.data[row*m.c+col]
}

// At returns a copy of the element at (row, col).
// Complexity: O(size of the entry).
func (m *IntDense) At(row, col int) (*big.Int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(&m.data[idx]), nil
}

// Set assigns a copy of v at (row, col).
func (m *IntDense) Set(row, col int, v *big.Int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilValue)
	}
	m.data[idx].Set(v)

	return nil
}

// SetInt64 assigns v at (row, col).
func (m *IntDense) SetInt64(row, col int, v int64) error {
	idx, err := m.indexOf("SetInt64", row, col)
	if err != nil {
		return err
	}
	m.data[idx].SetInt64(v)

	return nil
}

// AddInt64 adds v to the element at (row, col). Boundary matrices are
// accumulated this way because a cell may meet the same face twice.
func (m *IntDense) AddInt64(row, col int, v int64) error {
	idx, err := m.indexOf("AddInt64", row, col)
	if err != nil {
		return err
	}
	m.data[idx].Add(&m.data[idx], big.NewInt(v))

	return nil
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *IntDense) Clone() *IntDense {
	out := &IntDense{r: m.r, c: m.c, data: make([]big.Int, len(m.data))}
	for i := range m.data {
		out.data[i].Set(&m.data[i])
	}

	return out
}

// Transpose returns mᵀ as a new matrix.
func (m *IntDense) Transpose() *IntDense {
	out := &IntDense{r: m.c, c: m.r, data: make([]big.Int, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i].Set(&m.data[i*m.c+j])
		}
	}

	return out
}

// Mul returns a·b.
// Stage 1 (Validate): non-nil operands, a.Cols == b.Rows.
// Stage 2 (Execute): triple loop skipping zero entries of a.
// Complexity: O(r·k·c) big-int multiplications in the worst case.
func Mul(a, b *IntDense) (*IntDense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.c != b.r {
		return nil, fmt.Errorf("%w: %d×%d · %d×%d", ErrDimensionMismatch, a.r, a.c, b.r, b.c)
	}
	out := &IntDense{r: a.r, c: b.c, data: make([]big.Int, a.r*b.c)}
	var prod big.Int
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.entry(i, k)
			if aik.Sign() == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				bkj := b.entry(k, j)
				if bkj.Sign() == 0 {
					continue
				}
				prod.Mul(aik, bkj)
				out.data[i*b.c+j].Add(&out.data[i*b.c+j], &prod)
			}
		}
	}

	return out, nil
}

// IsZero reports whether every entry is zero.
func (m *IntDense) IsZero() bool {
	for i := range m.data {
		if m.data[i].Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether m and o have the same shape and entries.
func (m *IntDense) Equal(o *IntDense) bool {
	if m == nil || o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(&o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// Column returns copies of the entries of column j.
func (m *IntDense) Column(j int) ([]*big.Int, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Column", 0, j, ErrOutOfRange)
	}
	col := make([]*big.Int, m.r)
	for i := 0; i < m.r; i++ {
		col[i] = new(big.Int).Set(m.entry(i, j))
	}

	return col, nil
}

// String implements fmt.Stringer for debugging.
func (m *IntDense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.entry(i, j).String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// --- elementary operations (unchecked) -------------------------------------

func (m *IntDense) swapRows(a, b int) {
	if a == b {
		return
	}
	var t big.Int
	for j := 0; j < m.c; j++ {
		x, y := m.entry(a, j), m.entry(b, j)
		t.Set(x)
		x.Set(y)
		y.Set(&t)
	}
}

func (m *IntDense) swapCols(a, b int) {
	if a == b {
		return
	}
	var t big.Int
	for i := 0; i < m.r; i++ {
		x, y := m.entry(i, a), m.entry(i, b)
		t.Set(x)
		x.Set(y)
		y.Set(&t)
	}
}

// addRowMultiple performs row[dst] += q·row[src].
func (m *IntDense) addRowMultiple(dst, src int, q *big.Int) {
	var t big.Int
	for j := 0; j < m.c; j++ {
		s := m.entry(src, j)
		if s.Sign() == 0 {
			continue
		}
		t.Mul(q, s)
		d := m.entry(dst, j)
		d.Add(d, &t)
	}
}

// addColMultiple performs col[dst] += q·col[src].
func (m *IntDense) addColMultiple(dst, src int, q *big.Int) {
	var t big.Int
	for i := 0; i < m.r; i++ {
		s := m.entry(i, src)
		if s.Sign() == 0 {
			continue
		}
		t.Mul(q, s)
		d := m.entry(i, dst)
		d.Add(d, &t)
	}
}

func (m *IntDense) negateRow(a int) {
	for j := 0; j < m.c; j++ {
		e := m.entry(a, j)
		e.Neg(e)
	}
}

func (m *IntDense) negateCol(a int) {
	for i := 0; i < m.r; i++ {
		e := m.entry(i, a)
		e.Neg(e)
	}
}
