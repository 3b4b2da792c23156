// SPDX-License-Identifier: MIT
// Package: s1fibre/fibre
//
// lift.go — real-valued heights for a circle-valued cochain.
//
// Vertex heights come from a breadth-first walk of the 1-skeleton: the
// start of each component sits at 0 and crossing an edge from its vertex 0
// to its vertex 1 adds the cochain value (the reverse subtracts it).
// Heights reduced modulo 1 cut the circle into arcs; the fibre level is
// the midpoint of one of those arcs, so no vertex lies on it.
//
// Inside a simplex the heights are recomputed from its lowest corner along
// the simplex's own edges, which keeps them consistent even where the walk
// wrapped around the circle. The d+1 corner heights then split [min, max]
// into d intervals; the number of integer translates of the level in each
// interval is the number of normal pieces of that type.

package fibre

import (
	"fmt"
	"math/big"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/s1fibre/bfs"
)

// Lift is the data the fibre triangulator works from.
type Lift struct {
	// Heights holds the walk height of every vertex.
	Heights []*big.Rat
	// Level is the chosen fibre level in [0, 1).
	Level *big.Rat
	// Order lists the corners of every simplex by increasing height.
	Order [][]int
	// Values holds the corner heights in Order.
	Values [][]*big.Rat
	// Counts[s][j] is the number of level translates between Values[s][j]
	// and Values[s][j+1].
	Counts [][]int
}

// ratComparator orders *big.Rat keys for gods trees.
func ratComparator(a, b interface{}) int {
	return a.(*big.Rat).Cmp(b.(*big.Rat))
}

// floorRat returns ⌊x⌋.
func floorRat(x *big.Rat) *big.Int {
	// Div is Euclidean and denominators are positive.
	return new(big.Int).Div(x.Num(), x.Denom())
}

// fracRat returns x - ⌊x⌋.
func fracRat(x *big.Rat) *big.Rat {
	return new(big.Rat).Sub(x, new(big.Rat).SetInt(floorRat(x)))
}

// Lift computes heights, the level and the piece counts of every simplex.
//
// Complexity: O(V log V + n·(d+1)²).
func (m *MapToS1) Lift(c Cochain) (*Lift, error) {
	if len(c) != m.t.CountEdges() {
		return nil, fmt.Errorf("%w: %d != %d", ErrCochainLength, len(c), m.t.CountEdges())
	}
	heights, err := m.vertexHeights(c)
	if err != nil {
		return nil, err
	}
	lvl, err := m.level(heights)
	if err != nil {
		return nil, err
	}
	l := &Lift{Heights: heights, Level: lvl}

	d := m.t.Dim()
	for s := 0; s < m.t.Size(); s++ {
		order, vals, err := m.simplexHeights(c, heights, s)
		if err != nil {
			return nil, err
		}
		counts := make([]int, d)
		prev := floorRat(new(big.Rat).Sub(vals[0], l.Level))
		for j := 1; j <= d; j++ {
			cur := floorRat(new(big.Rat).Sub(vals[j], l.Level))
			counts[j-1] = int(new(big.Int).Sub(cur, prev).Int64())
			prev = cur
		}
		l.Order = append(l.Order, order)
		l.Values = append(l.Values, vals)
		l.Counts = append(l.Counts, counts)
	}

	return l, nil
}

// vertexHeights integrates c along a breadth-first spanning forest of the
// 1-skeleton. Each component starts at height 0. Edges off the forest are
// never read.
//
// Complexity: O(V + E) rational additions.
func (m *MapToS1) vertexHeights(c Cochain) ([]*big.Rat, error) {
	n := m.t.CountVertices()
	heights := make([]*big.Rat, n)
	for start := 0; start < n; start++ {
		if heights[start] != nil {
			continue
		}
		heights[start] = new(big.Rat)
		_, err := bfs.BFS(m.t, start, bfs.WithOnTreeArc(func(v int, a bfs.Arc) {
			h := new(big.Rat).Set(heights[v])
			if a.Forward {
				h.Add(h, c[a.Edge])
			} else {
				h.Sub(h, c[a.Edge])
			}
			heights[a.To] = h
		}))
		if err != nil {
			return nil, err
		}
	}

	return heights, nil
}

// level returns the configured midpoint between consecutive heights on the
// circle. The smallest reduced height is always 0, so the arc that wraps
// past 1 ends at 1. Without heights there is no arc to pick from.
//
// Complexity: O(V log V).
func (m *MapToS1) level(heights []*big.Rat) (*big.Rat, error) {
	if len(heights) == 0 {
		return nil, ErrNoVertices
	}
	reduced := redblacktree.NewWith(ratComparator)
	for _, h := range heights {
		reduced.Put(fracRat(h), struct{}{})
	}
	keys := reduced.Keys()

	mids := redblacktree.NewWith(ratComparator)
	half := big.NewRat(1, 2)
	for i, k := range keys {
		next := big.NewRat(1, 1)
		if i+1 < len(keys) {
			next = keys[i+1].(*big.Rat)
		}
		mid := new(big.Rat).Add(k.(*big.Rat), next)
		mids.Put(mid.Mul(mid, half), struct{}{})
	}
	sorted := mids.Keys()

	return sorted[m.cfg.level%len(sorted)].(*big.Rat), nil
}

// simplexHeights lifts the corners of s from its lowest corner, the one
// from which every edge of s rises.
func (m *MapToS1) simplexHeights(c Cochain, heights []*big.Rat, s int) ([]int, []*big.Rat, error) {
	d := m.t.Dim()
	low := -1
	for a := 0; a <= d && low < 0; a++ {
		rises := true
		for b := 0; b <= d; b++ {
			if b != a && m.rise(c, s, a, b).Sign() <= 0 {
				rises = false
				break
			}
		}
		if rises {
			low = a
		}
	}
	if low < 0 {
		return nil, nil, fmt.Errorf("%w: simplex %d", ErrNotMonotone, s)
	}

	base := heights[m.t.SimplexVertex(s, low)]
	byHeight := redblacktree.NewWith(ratComparator)
	byHeight.Put(new(big.Rat).Set(base), low)
	for b := 0; b <= d; b++ {
		if b != low {
			byHeight.Put(new(big.Rat).Add(base, m.rise(c, s, low, b)), b)
		}
	}
	if byHeight.Size() != d+1 {
		return nil, nil, fmt.Errorf("%w: simplex %d has corners at equal height", ErrNotMonotone, s)
	}
	order := make([]int, 0, d+1)
	vals := make([]*big.Rat, 0, d+1)
	for it := byHeight.Iterator(); it.Next(); {
		vals = append(vals, it.Key().(*big.Rat))
		order = append(order, it.Value().(int))
	}

	return order, vals, nil
}
