// SPDX-License-Identifier: MIT
// Package tri — local moves on 3-manifold triangulations.
//
// Every move here reduces either the number of tetrahedra or the number of
// boundary triangles, so any sequence of them terminates:
//
//   - ThreeTwo replaces the three tetrahedra around an internal edge of
//     degree three by two tetrahedra sharing a triangle.
//   - TwoZero flattens the two tetrahedra around an internal edge of
//     degree two onto a single triangle.
//   - ShellBoundary removes a tetrahedron with one to three boundary faces.
//   - CloseBook glues the two boundary triangles on either side of a
//     boundary edge, folding the boundary shut along that edge.
//
// Each move checks its own preconditions and reports false, leaving the
// triangulation untouched, whenever they fail. With perform unset only the
// check runs. All of them require Dim() == 3.

package tri

import "github.com/katalvlaran/s1fibre/perm"

// ThreeTwo performs a 3-2 Pachner move about edge e.
//
// The edge must be internal and valid with three distinct tetrahedra
// around it. Their equatorial corners are labelled 0, 1, 2 by walking once
// around the edge; the new tetrahedra carry those labels on corners 0..2
// and an endpoint of e on corner 3, and are glued to each other along
// facet 3 by the identity.
//
// Complexity: O(n) for the renumbering, plus one skeleton build.
func (t *Triangulation) ThreeTwo(e int, perform bool) bool {
	if t.dim != 3 || e < 0 || e >= t.CountEdges() {
		return false
	}
	edge := t.Edge(e)
	if edge.boundary || len(edge.emb) != 3 || !edge.IsValid() {
		return false
	}

	var tets [3]int
	var p [3]perm.Perm
	slot := make(map[int]int, 3)
	for i, em := range edge.emb {
		if _, dup := slot[em.Simplex]; dup {
			return false
		}
		tets[i], p[i] = em.Simplex, em.Vertices
		slot[em.Simplex] = i
	}

	// lab[i][c] is the equatorial label of corner c of tetrahedron i
	var lab [3][4]int
	for i := range lab {
		for c := range lab[i] {
			lab[i][c] = -1
		}
	}
	lab[0][p[0].At(2)], lab[0][p[0].At(3)] = 0, 1
	reached := [3]bool{true}
	for x := 2; x <= 3; x++ {
		cx, cy := p[0].At(x), p[0].At(5-x)
		u := t.simplices[tets[0]].adj[cx]
		j, ok := slot[u]
		if !ok || reached[j] {
			return false
		}
		reached[j] = true
		gy := t.simplices[tets[0]].gluing[cx].At(cy)
		if gy != p[j].At(2) && gy != p[j].At(3) {
			return false
		}
		lab[j][gy] = lab[0][cy]
		lab[j][p[j].At(2)+p[j].At(3)-gy] = 2
	}
	if !perform {
		return true
	}

	// frame returns the map from corners of the new tetrahedron on the
	// given side (0 keeps endpoint 0 of e) to corners of old tetrahedron i.
	frame := func(i, side int) perm.Perm {
		q := perm.Identity()
		a, b := p[i].At(2), p[i].At(3)
		q[lab[i][a]], q[lab[i][b]] = uint8(a), uint8(b)
		q[3-lab[i][a]-lab[i][b]] = p[i][1-side]
		q[3] = p[i][side]

		return q
	}

	type outer struct {
		from, facet, to int
		g               perm.Perm
	}
	base := len(t.simplices)
	var glue []outer
	for i := 0; i < 3; i++ {
		for side := 0; side < 2; side++ {
			oldFacet := p[i].At(1 - side)
			u := t.simplices[tets[i]].adj[oldFacet]
			if u < 0 {
				continue
			}
			g := t.simplices[tets[i]].gluing[oldFacet]
			phi := frame(i, side)
			to, psi := u, perm.Identity()
			if j, ok := slot[u]; ok {
				switch g.At(oldFacet) {
				case p[j].At(1):
					to, psi = base, frame(j, 0)
				case p[j].At(0):
					to, psi = base+1, frame(j, 1)
				default:
					return false
				}
			}
			glue = append(glue, outer{
				from:  base + side,
				facet: phi.PreImageOf(oldFacet),
				to:    to,
				g:     psi.Inverse().Compose(g).Compose(phi),
			})
		}
	}

	for _, s := range tets {
		_ = t.Isolate(s)
	}
	t.NewSimplices(2)
	for _, o := range glue {
		if t.simplices[o.from].adj[o.facet] >= 0 {
			// already made from the other side
			continue
		}
		_ = t.Join(o.from, o.facet, o.to, o.g)
	}
	_ = t.Join(base, 3, base+1, perm.Identity())

	drop := make([]bool, len(t.simplices))
	for _, s := range tets {
		drop[s] = true
	}
	t.removeSimplices(drop)

	return true
}

// TwoZero flattens the two tetrahedra around internal edge e onto one
// triangle. The two tetrahedra must be distinct, the edges opposite e in
// each must differ and not both lie on the boundary, and every facet
// opposite an endpoint of e must lead away from the pair. At least one of
// those four facets must be glued, otherwise the pair is a whole
// component.
//
// Complexity: O(n) for the renumbering, plus one skeleton build.
func (t *Triangulation) TwoZero(e int, perform bool) bool {
	if t.dim != 3 || e < 0 || e >= t.CountEdges() {
		return false
	}
	edge := t.Edge(e)
	if edge.boundary || len(edge.emb) != 2 || !edge.IsValid() {
		return false
	}
	t0, t1 := edge.emb[0].Simplex, edge.emb[1].Simplex
	p0, p1 := edge.emb[0].Vertices, edge.emb[1].Vertices
	if t0 == t1 {
		return false
	}
	e0 := t.Edge(t.SimplexFace(t0, 1, EdgeNumber(3, p0.At(2), p0.At(3))))
	e1 := t.Edge(t.SimplexFace(t1, 1, EdgeNumber(3, p1.At(2), p1.At(3))))
	if e0 == e1 || (e0.boundary && e1.boundary) {
		return false
	}
	glued := 0
	for i := 0; i < 2; i++ {
		for _, u := range [2]int{t.simplices[t0].adj[p0.At(i)], t.simplices[t1].adj[p1.At(i)]} {
			if u == t0 || u == t1 {
				return false
			}
			if u >= 0 {
				glued++
			}
		}
	}
	if glued == 0 {
		return false
	}
	if !perform {
		return true
	}

	crossover := t.simplices[t0].gluing[p0.At(2)]
	type pair struct {
		top, topFacet, bottom int
		g                     perm.Perm
	}
	var joins []pair
	for i := 0; i < 2; i++ {
		top, bottom := t.simplices[t0].adj[p0.At(i)], t.simplices[t1].adj[p1.At(i)]
		if top < 0 || bottom < 0 {
			continue
		}
		gt := t.simplices[t0].gluing[p0.At(i)]
		gb := t.simplices[t1].gluing[p1.At(i)]
		joins = append(joins, pair{
			top:      top,
			topFacet: gt.At(p0.At(i)),
			bottom:   bottom,
			g:        gb.Compose(crossover).Compose(gt.Inverse()),
		})
	}
	_ = t.Isolate(t0)
	_ = t.Isolate(t1)
	for _, j := range joins {
		_ = t.Join(j.top, j.topFacet, j.bottom, j.g)
	}
	drop := make([]bool, len(t.simplices))
	drop[t0], drop[t1] = true, true
	t.removeSimplices(drop)

	return true
}

// ShellBoundary removes tetrahedron s when that only peels off part of a
// boundary collar. With one boundary facet the opposite vertex must be
// internal and the three edges from it must be valid and distinct. With
// two, the edge joining the corners opposite them must be internal and
// valid, and the remaining facets must not be glued to each other. Three
// boundary facets are always fine.
//
// Complexity: O(n) for the renumbering.
func (t *Triangulation) ShellBoundary(s int, perform bool) bool {
	if t.dim != 3 || s < 0 || s >= len(t.simplices) {
		return false
	}
	var bdry []int
	for f := 0; f <= 3; f++ {
		if t.simplices[s].adj[f] < 0 {
			bdry = append(bdry, f)
		}
	}
	switch len(bdry) {
	case 1:
		b := bdry[0]
		if onBoundary(t.Vertex(t.SimplexVertex(s, b))) {
			return false
		}
		seen := make(map[int]bool, 3)
		for c := 0; c <= 3; c++ {
			if c == b {
				continue
			}
			idx := t.SimplexFace(s, 1, EdgeNumber(3, b, c))
			if seen[idx] || !t.Edge(idx).IsValid() {
				return false
			}
			seen[idx] = true
		}
	case 2:
		edge := t.Edge(t.SimplexFace(s, 1, EdgeNumber(3, bdry[0], bdry[1])))
		if edge.boundary || !edge.IsValid() {
			return false
		}
		for c := 0; c <= 3; c++ {
			if c != bdry[0] && c != bdry[1] {
				if t.simplices[s].adj[c] == s {
					return false
				}
				break
			}
		}
	case 3:
	default:
		return false
	}
	if !perform {
		return true
	}
	_ = t.RemoveSimplex(s)

	return true
}

// CloseBook glues together the two boundary triangles that meet along
// boundary edge e. Their apexes must be distinct vertices whose links are
// discs, and the boundary component must keep at least two triangles.
//
// Complexity: O(n) for the boundary component sizes.
func (t *Triangulation) CloseBook(e int, perform bool) bool {
	if t.dim != 3 || e < 0 || e >= t.CountEdges() {
		return false
	}
	edge := t.Edge(e)
	if !edge.boundary || !edge.IsValid() {
		return false
	}

	// front has its boundary facet at image 3, back at image 2
	type page struct {
		s int
		p perm.Perm
	}
	var pages []page
	swap := perm.Transposition(2, 3)
	for _, em := range edge.emb {
		for x := 2; x <= 3; x++ {
			if t.simplices[em.Simplex].adj[em.Vertices.At(x)] >= 0 {
				continue
			}
			p := em.Vertices
			if (len(pages) == 0) != (x == 3) {
				p = p.Compose(swap)
			}
			pages = append(pages, page{em.Simplex, p})
		}
	}
	if len(pages) != 2 {
		return false
	}
	front, back := pages[0], pages[1]

	comp, sizes := t.boundaryComponents()
	facet := t.SimplexFace(front.s, 2, front.p.At(3))
	if sizes[comp[facet]] <= 2 {
		return false
	}
	a := t.Vertex(t.SimplexVertex(front.s, front.p.At(2)))
	b := t.Vertex(t.SimplexVertex(back.s, back.p.At(3)))
	if a == b || !isDisc(a) || !isDisc(b) {
		return false
	}
	if !perform {
		return true
	}
	g := back.p.Compose(swap).Compose(front.p.Inverse())
	_ = t.Join(front.s, front.p.At(3), back.s, g)

	return true
}

// isDisc reports whether v is a boundary vertex with a disc link.
func isDisc(v *Face) bool {
	return v.boundary && v.IsValid() && !v.IsIdeal()
}
