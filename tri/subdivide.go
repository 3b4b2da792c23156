// SPDX-License-Identifier: MIT

package tri

import "github.com/katalvlaran/s1fibre/perm"

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}

// Subdivide replaces the triangulation by its barycentric subdivision.
//
// Simplex s is cut into (d+1)! pieces, one for each permutation π of its
// vertices. Vertex i of piece (s, π) is the barycentre of the face spanned by
// π[0..i]; the piece is stored at index s·(d+1)! + π.Index(d+1). Facet j < d
// of (s, π) meets (s, π∘(j j+1)); facet d lies in facet π[d] of s and meets
// (u, g∘π) when that facet is glued to u by g. All new gluings are identities.
func (t *Triangulation) Subdivide() {
	d := t.dim
	f := factorial(d + 1)
	perms := perm.All(d + 1)
	out := make([]simplex, len(t.simplices)*f)
	for i := range out {
		for x := range out[i].adj {
			out[i].adj[x] = -1
			out[i].gluing[x] = perm.Identity()
		}
	}
	for s, sim := range t.simplices {
		for idx, pi := range perms {
			cur := &out[s*f+idx]
			for j := 0; j < d; j++ {
				cur.adj[j] = s*f + pi.Compose(perm.Transposition(j, j+1)).Index(d+1)
			}
			x := pi.At(d)
			if u := sim.adj[x]; u >= 0 {
				cur.adj[d] = u*f + sim.gluing[x].Compose(pi).Index(d+1)
			}
		}
	}
	t.simplices = out
	t.changed()
}

// IdealToFinite truncates every ideal vertex. The triangulation is
// subdivided twice and every second-level piece whose corner 0 is an
// original ideal vertex is removed, so the link of that vertex inside the
// second derived neighbourhood becomes real boundary. A single subdivision
// is not enough: when every vertex is ideal each first-level piece has an
// ideal corner 0 and nothing would survive. It reports whether anything
// changed.
//
// Complexity: O(n · ((d+1)!)²) plus one skeleton build.
func (t *Triangulation) IdealToFinite() bool {
	if !t.IsIdeal() {
		return false
	}
	d := t.dim
	ideal := make([][]bool, len(t.simplices))
	for s := range t.simplices {
		ideal[s] = make([]bool, d+1)
		for c := 0; c <= d; c++ {
			ideal[s][c] = t.Vertex(t.SimplexVertex(s, c)).IsIdeal()
		}
	}
	f := factorial(d + 1)
	perms := perm.All(d + 1)

	// first level: corner 0 of piece (s, π) is original corner π[0]
	first := make([]bool, len(t.simplices)*f)
	for s := range ideal {
		for idx, pi := range perms {
			first[s*f+idx] = ideal[s][pi.At(0)]
		}
	}
	t.Subdivide()
	t.Subdivide()

	// second level: corner 0 of (s', π') is corner π'[0] of s', and only
	// corner 0 of s' can be an original vertex
	drop := make([]bool, len(t.simplices))
	for sp := range first {
		if !first[sp] {
			continue
		}
		for idx, pi := range perms {
			if pi.At(0) == 0 {
				drop[sp*f+idx] = true
			}
		}
	}
	t.removeSimplices(drop)

	return true
}
