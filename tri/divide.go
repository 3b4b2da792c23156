// SPDX-License-Identifier: MIT

package tri

import (
	"fmt"

	"github.com/katalvlaran/s1fibre/perm"
)

// splitInfo describes how one simplex is cut by the midpoint of an edge
// with corners a < b: piece A keeps a (the midpoint sits at slot b) and
// piece B keeps b (the midpoint sits at slot a).
type splitInfo struct {
	split bool
	a, b  int
	pa    int // piece A, or the whole simplex when not split
	pb    int
}

// DivideEdges inserts a new vertex in the interior of each listed edge.
//
// When no simplex meets the listed edges more than once, every edge is
// subdivided stellarly: each simplex around it is cut in two along the
// hyperplane through the midpoint and the opposite face. Otherwise the
// whole triangulation is barycentrically subdivided, which also divides
// every listed edge.
//
// Complexity: O(n·k) for k listed edges when stellar, otherwise that of
// Subdivide.
func (t *Triangulation) DivideEdges(edges []int) error {
	if len(edges) == 0 {
		return nil
	}
	ne := t.CountEdges()
	chosen := make([]bool, ne)
	for _, e := range edges {
		if e < 0 || e >= ne {
			return fmt.Errorf("%w: edge %d of %d", ErrOutOfRange, e, ne)
		}
		chosen[e] = true
	}

	d := t.dim
	info := make([]splitInfo, len(t.simplices))
	next := 0
	for s := range t.simplices {
		hits := 0
		for j := 0; j < NumFaces(d, 1); j++ {
			if !chosen[t.SimplexFace(s, 1, j)] {
				continue
			}
			hits++
			v := FaceVertices(d, 1, j)
			info[s] = splitInfo{split: true, a: v[0], b: v[1]}
		}
		if hits > 1 {
			t.Subdivide()
			return nil
		}
		info[s].pa = next
		next++
		if info[s].split {
			info[s].pb = next
			next++
		}
	}

	out, ok := t.stellar(info, next)
	if !ok {
		t.Subdivide()
		return nil
	}
	t.simplices = out
	t.changed()

	return nil
}

// stellar builds the cut simplices. It reports false if some gluing cannot
// be matched with a piece on the other side.
func (t *Triangulation) stellar(info []splitInfo, total int) ([]simplex, bool) {
	d := t.dim
	out := make([]simplex, total)
	for i := range out {
		for x := range out[i].adj {
			out[i].adj[x] = -1
			out[i].gluing[x] = perm.Identity()
		}
	}

	// wholePiece is the piece of u holding all of its facet x.
	wholePiece := func(u, x int) (int, bool) {
		in := info[u]
		switch {
		case !in.split:
			return in.pa, true
		case x == in.a:
			return in.pb, true
		case x == in.b:
			return in.pa, true
		default:
			return 0, false
		}
	}
	// keeping is the piece of u that keeps corner y of its divided edge.
	keeping := func(u, y int) (int, bool) {
		in := info[u]
		switch {
		case in.split && y == in.a:
			return in.pa, true
		case in.split && y == in.b:
			return in.pb, true
		default:
			return 0, false
		}
	}

	for s, sim := range t.simplices {
		in := info[s]
		for x := 0; x <= d; x++ {
			u := sim.adj[x]
			g := sim.gluing[x]
			if !in.split {
				if u < 0 {
					continue
				}
				to, ok := wholePiece(u, g.At(x))
				if !ok {
					return nil, false
				}
				out[in.pa].adj[x], out[in.pa].gluing[x] = to, g
				continue
			}
			if x == in.a || x == in.b {
				// facet a goes whole to B, facet b whole to A
				piece := in.pa
				if x == in.a {
					piece = in.pb
				}
				if u < 0 {
					continue
				}
				to, ok := wholePiece(u, g.At(x))
				if !ok {
					return nil, false
				}
				out[piece].adj[x], out[piece].gluing[x] = to, g
				continue
			}
			if u < 0 {
				continue
			}
			for _, keep := range [2]int{in.a, in.b} {
				from, _ := keeping(s, keep)
				to, ok := keeping(u, g.At(keep))
				if !ok {
					return nil, false
				}
				out[from].adj[x], out[from].gluing[x] = to, g
			}
		}
		if in.split {
			// the internal facet between the two halves
			tau := perm.Transposition(in.a, in.b)
			out[in.pa].adj[in.a], out[in.pa].gluing[in.a] = in.pb, tau
			out[in.pb].adj[in.b], out[in.pb].gluing[in.b] = in.pa, tau
		}
	}

	return out, true
}
