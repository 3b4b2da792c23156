// SPDX-License-Identifier: MIT
// Package: s1fibre/matrix
//
// reduce.go — integer reductions used by the homology package.
//
// ColumnEchelon:
//   • Column operations only, tracked in R and in its inverse Rinv.
//   • M·R = E; the first `rank` columns of E are in echelon form and the
//     remaining columns are zero, so R's trailing columns span ker M over Z.
//
// SmithNormalForm:
//   • Row and column operations; only the row side is tracked, as the left
//     factor P with A = P·D·Q (Q unimodular, not returned).
//   • Diagonal entries are non-negative and each divides the next.
//
// Complexity: polynomial in the matrix size; coefficient growth is bounded in
// practice by the Euclidean pivot choice (smallest absolute value first).

package matrix

import "math/big"

// minAbsInRow returns the column in [from, c) holding the nonzero entry of
// smallest absolute value in the given row, or -1.
func (m *IntDense) minAbsInRow(row, from int) int {
	piv := -1
	for j := from; j < m.c; j++ {
		e := m.entry(row, j)
		if e.Sign() == 0 {
			continue
		}
		if piv < 0 || e.CmpAbs(m.entry(row, piv)) < 0 {
			piv = j
		}
	}

	return piv
}

// ColumnEchelon reduces a copy of M by integer column operations.
// Stage 1 (Prepare): E = clone(M), R = Rinv = I_n.
// Stage 2 (Execute): for each row, run a Euclidean reduction across the
// columns not yet used as pivots until one nonzero remains; move it to
// position `rank`.
// Stage 3 (Finalize): return E, R, Rinv, rank.
func ColumnEchelon(m *IntDense) (e, r, rinv *IntDense, rank int, err error) {
	if m == nil {
		return nil, nil, nil, 0, ErrNilMatrix
	}
	e = m.Clone()
	r = Identity(m.c)
	rinv = Identity(m.c)
	var q, negQ big.Int
	for row := 0; row < e.r && rank < e.c; row++ {
		for {
			piv := e.minAbsInRow(row, rank)
			if piv < 0 {
				break
			}
			clean := true
			for j := rank; j < e.c; j++ {
				if j == piv || e.entry(row, j).Sign() == 0 {
					continue
				}
				// col_j -= q·col_piv, tracked as Rinv row_piv += q·row_j
				q.Quo(e.entry(row, j), e.entry(row, piv))
				negQ.Neg(&q)
				e.addColMultiple(j, piv, &negQ)
				r.addColMultiple(j, piv, &negQ)
				rinv.addRowMultiple(piv, j, &q)
				if e.entry(row, j).Sign() != 0 {
					clean = false
				}
			}
			if clean {
				e.swapCols(piv, rank)
				r.swapCols(piv, rank)
				rinv.swapRows(piv, rank)
				rank++
				break
			}
		}
	}

	return e, r, rinv, rank, nil
}

// SmithNormalForm diagonalises a copy of A.
// Returns D (same shape as A), the left factor P (rows×rows, unimodular)
// and the number of nonzero diagonal entries.
func SmithNormalForm(a *IntDense) (d, p *IntDense, rank int, err error) {
	if a == nil {
		return nil, nil, 0, ErrNilMatrix
	}
	d = a.Clone()
	p = Identity(a.r)
	limit := d.r
	if d.c < limit {
		limit = d.c
	}
	for t := 0; t < limit; t++ {
		pi, pj := d.minAbsFrom(t)
		if pi < 0 {
			break
		}
		d.rowSwapTracked(p, t, pi)
		d.swapCols(t, pj)
		for settled := false; !settled; {
			settled = d.pivotSettled(p, t)
		}
		if d.entry(t, t).Sign() < 0 {
			d.negateRow(t)
			p.negateCol(t)
		}
		rank++
	}

	return d, p, rank, nil
}

// minAbsFrom finds the smallest nonzero |entry| in the block [t:, t:].
func (m *IntDense) minAbsFrom(t int) (int, int) {
	bi, bj := -1, -1
	for i := t; i < m.r; i++ {
		for j := t; j < m.c; j++ {
			e := m.entry(i, j)
			if e.Sign() == 0 {
				continue
			}
			if bi < 0 || e.CmpAbs(m.entry(bi, bj)) < 0 {
				bi, bj = i, j
			}
		}
	}

	return bi, bj
}

// rowSwapTracked swaps rows a and b of m and the matching columns of p.
func (m *IntDense) rowSwapTracked(p *IntDense, a, b int) {
	m.swapRows(a, b)
	p.swapCols(a, b)
}

// pivotSettled runs one round of elimination around the pivot (t,t).
// It returns true once row t and column t are clear beyond the pivot and the
// pivot divides every entry of the trailing block.
func (m *IntDense) pivotSettled(p *IntDense, t int) bool {
	var q, negQ big.Int
	piv := m.entry(t, t)
	dirty := false
	// clear column t with row operations (tracked in p)
	for i := t + 1; i < m.r; i++ {
		if m.entry(i, t).Sign() == 0 {
			continue
		}
		q.Quo(m.entry(i, t), piv)
		negQ.Neg(&q)
		m.addRowMultiple(i, t, &negQ)
		// row_i -= q·row_t  ⇒  P col_t += q·col_i
		p.addColMultiple(t, i, &q)
		if m.entry(i, t).Sign() != 0 {
			dirty = true
		}
	}
	// clear row t with column operations (untracked)
	for j := t + 1; j < m.c; j++ {
		if m.entry(t, j).Sign() == 0 {
			continue
		}
		q.Quo(m.entry(t, j), piv)
		negQ.Neg(&q)
		m.addColMultiple(j, t, &negQ)
		if m.entry(t, j).Sign() != 0 {
			dirty = true
		}
	}
	if dirty {
		// a nonzero remainder is smaller than the pivot: bring the smallest
		// entry of row/column t to the pivot position and go again
		m.movePivot(p, t)
		return false
	}
	// divisibility: fold an offending row into row t
	var rem big.Int
	for i := t + 1; i < m.r; i++ {
		for j := t + 1; j < m.c; j++ {
			rem.Rem(m.entry(i, j), piv)
			if rem.Sign() != 0 {
				m.addRowMultiple(t, i, big.NewInt(1))
				// row_t += row_i  ⇒  P col_i -= col_t
				p.addColMultiple(i, t, big.NewInt(-1))
				return false
			}
		}
	}

	return true
}

// movePivot brings the smallest nonzero entry of column t or row t
// (beyond the pivot, or the pivot itself) to (t,t).
func (m *IntDense) movePivot(p *IntDense, t int) {
	bi, bj := t, t
	best := m.entry(t, t)
	for i := t + 1; i < m.r; i++ {
		e := m.entry(i, t)
		if e.Sign() != 0 && (best.Sign() == 0 || e.CmpAbs(best) < 0) {
			bi, bj, best = i, t, e
		}
	}
	for j := t + 1; j < m.c; j++ {
		e := m.entry(t, j)
		if e.Sign() != 0 && (best.Sign() == 0 || e.CmpAbs(best) < 0) {
			bi, bj, best = t, j, e
		}
	}
	if bi != t {
		m.rowSwapTracked(p, t, bi)
	}
	if bj != t {
		m.swapCols(t, bj)
	}
}
