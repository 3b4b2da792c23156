// SPDX-License-Identifier: MIT
// Package tri — edge collapse and greedy simplification.
//
// Collapsing an edge e with distinct endpoints flattens every simplex
// around e: each such simplex disappears and the two facets opposite the
// endpoints of e are glued directly. Triangles through e become bigons that
// are flattened to edges, tetrahedra become pillows flattened to triangles,
// and so on up the dimensions.
//
// The check mirrors this: for every dimension k from 1 to d-2 the flattened
// (k+1)-faces join pairs of k-faces into a graph, which must be a forest so
// that no chain of pillows crushes a sphere. All boundary or invalid k-faces
// act as a single node. When e lies in the boundary, the boundary pillows
// are checked separately first. The final stage does the same for the
// facets opposite the endpoints in each top simplex around e.

package tri

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/s1fibre/dsu"
	"github.com/katalvlaran/s1fibre/perm"
)

// CollapseEdge collapses edge e. With check set it first verifies that the
// move preserves the topology and returns false without changing anything
// if it might not. With perform unset it only reports the outcome of the
// check. Edge indices are invalidated by a performed collapse.
//
// Complexity: O(n) for the checks and the renumbering, plus one skeleton
// build when performed.
func (t *Triangulation) CollapseEdge(e int, check, perform bool) bool {
	if e < 0 || e >= t.CountEdges() {
		return false
	}
	edge := t.Edge(e)
	if check && !t.collapsible(edge) {
		return false
	}
	if !perform {
		return true
	}

	embs := append([]FaceEmbedding(nil), edge.emb...)
	done := make([]bool, len(t.simplices))
	for _, em := range embs {
		s := em.Simplex
		if done[s] {
			continue
		}
		done[s] = true
		p0, p1 := em.Vertices.At(0), em.Vertices.At(1)
		sim := t.simplices[s]
		top, topPerm := sim.adj[p0], sim.gluing[p0]
		bot, botPerm := sim.adj[p1], sim.gluing[p1]
		_ = t.Isolate(s)
		if top >= 0 && bot >= 0 {
			g := botPerm.Compose(perm.Transposition(p0, p1)).Compose(topPerm.Inverse())
			// both facets were freed by the isolation above
			_ = t.Join(top, topPerm.At(p0), bot, g)
		}
	}
	t.removeSimplices(done)

	return true
}

// onBoundary treats ideal vertices as boundary, as their links are closed
// but not spheres.
func onBoundary(v *Face) bool {
	return v.IsBoundary() || v.IsIdeal()
}

// collapsible checks the endpoints of edge, then the pillow forests of
// every face dimension below the facets, and last that the facets
// flattened onto each other form a forest.
func (t *Triangulation) collapsible(edge *Face) bool {
	if !edge.IsValid() {
		return false
	}
	v0, v1 := t.Vertex(edge.Vertex(0)), t.Vertex(edge.Vertex(1))
	if v0 == v1 {
		return false
	}
	if onBoundary(v0) && onBoundary(v1) {
		if !edge.IsBoundary() || !v0.IsValid() || !v1.IsValid() {
			return false
		}
	}
	for k := 1; k <= t.dim-2; k++ {
		if edge.boundary && !t.pillowForest(edge, k, true) {
			return false
		}
		if !t.pillowForest(edge, k, false) {
			return false
		}
	}

	nf := t.CountFaces(t.dim - 1)
	pairs := make([][2]int, 0, len(edge.emb))
	for _, em := range edge.emb {
		upper := t.Face(t.dim-1, t.SimplexFace(em.Simplex, t.dim-1, em.Vertices.At(0)))
		lower := t.Face(t.dim-1, t.SimplexFace(em.Simplex, t.dim-1, em.Vertices.At(1)))
		pairs = append(pairs, [2]int{nodeOf(upper, nf, false), nodeOf(lower, nf, false)})
	}

	return isForest(pairs)
}

// isForest reports whether the graph with the given edges has no cycle.
// Node ids are compacted first, so the cost depends only on len(pairs)
// and not on the size of the triangulation.
func isForest(pairs [][2]int) bool {
	ids := make(map[int]int, 2*len(pairs))
	compact := make([][2]int, len(pairs))
	for i, pr := range pairs {
		for j, v := range pr {
			id, ok := ids[v]
			if !ok {
				id = len(ids)
				ids[v] = id
			}
			compact[i][j] = id
		}
	}
	u := dsu.New(len(ids))
	for _, pr := range compact {
		if !u.Insert(pr[0], pr[1]) {
			return false
		}
	}

	return true
}

// nodeOf maps boundary faces (and invalid ones when withInvalid is set) to
// the shared node n.
func nodeOf(f *Face, n int, withInvalid bool) int {
	if f.boundary || (withInvalid && !f.IsValid()) {
		return n
	}

	return f.index
}

// pillowForest checks that the (k+1)-faces through edge, flattened onto
// their k-faces opposite the endpoints of edge, form no cycle. With
// boundary set only boundary (k+1)-faces are considered and k-faces keep
// their own identity.
func (t *Triangulation) pillowForest(edge *Face, k int, boundary bool) bool {
	nk := t.CountFaces(k)
	var pairs [][2]int
	for _, idx := range t.facesThrough(edge, k+1) {
		outer := t.Face(k+1, idx)
		if outer.boundary != boundary {
			continue
		}
		a, b, ok := localEdge(outer, edge.index)
		if !ok {
			continue
		}
		upper := t.Face(k, outer.SubFace(k, a))
		lower := t.Face(k, outer.SubFace(k, b))
		if k == 1 && (upper == edge || lower == edge) {
			// the triangle contains edge more than once
			return false
		}
		if boundary {
			pairs = append(pairs, [2]int{upper.index, lower.index})
		} else {
			pairs = append(pairs, [2]int{nodeOf(upper, nk, true), nodeOf(lower, nk, true)})
		}
	}

	return isForest(pairs)
}

// facesThrough lists, in increasing order, the l-faces containing edge.
func (t *Triangulation) facesThrough(edge *Face, l int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, em := range edge.emb {
		ends := 1<<em.Vertices.At(0) | 1<<em.Vertices.At(1)
		for j := 0; j < NumFaces(t.dim, l); j++ {
			if mask(FaceVertices(t.dim, l, j))&ends != ends {
				continue
			}
			idx := t.SimplexFace(em.Simplex, l, j)
			if !seen[idx] {
				seen[idx] = true
				out = append(out, idx)
			}
		}
	}
	sort.Ints(out)

	return out
}

// localEdge finds the first edge of face f equal to edge e and returns its
// endpoints in f's labels.
func localEdge(f *Face, e int) (int, int, bool) {
	for i := 0; i < NumFaces(f.dim, 1); i++ {
		if f.Edge(i) == e {
			v := FaceVertices(f.dim, 1, i)
			return v[0], v[1], true
		}
	}

	return 0, 0, false
}

// Simplify reduces the triangulation with moves that never change its
// topology and reports whether anything changed. Edges are collapsed in
// every dimension; 3-manifolds also get 3-2 and 2-0 moves, boundary
// shelling, and book closing whenever the moves that remove tetrahedra
// are stuck. Each round removes a simplex or two boundary facets, so the
// loop ends.
//
// Complexity: O(n²) checks in the worst case, each followed by a skeleton
// rebuild when it succeeds.
func (t *Triangulation) Simplify() bool {
	return t.SimplifyLogged(zap.NewNop())
}

// SimplifyLogged is Simplify with a Debug trace of every move.
func (t *Triangulation) SimplifyLogged(log *zap.Logger) bool {
	changed := false
	for {
		if t.localMinimum(log) {
			changed = true
		}
		if t.dim != 3 || !t.closeAnyBook(log) {
			return changed
		}
		changed = true
	}
}

// localMinimum repeats the simplex-removing moves until none applies.
func (t *Triangulation) localMinimum(log *zap.Logger) bool {
	changed := false
	for {
		progress := t.sweep(log, "collapsed edge", t.CountEdges, func(e int) bool {
			return t.oneBoundaryEnd(e) && t.CollapseEdge(e, true, true)
		})
		progress = t.sweep(log, "collapsed edge", t.CountEdges, func(e int) bool {
			return t.CollapseEdge(e, true, true)
		}) || progress
		if t.dim == 3 {
			progress = t.sweep(log, "3-2 move", t.CountEdges, func(e int) bool {
				return t.ThreeTwo(e, true)
			}) || progress
			progress = t.sweep(log, "2-0 move", t.CountEdges, func(e int) bool {
				return t.TwoZero(e, true)
			}) || progress
			progress = t.sweep(log, "shelled boundary", t.Size, func(s int) bool {
				return t.ShellBoundary(s, true)
			}) || progress
		}
		if !progress {
			return changed
		}
		changed = true
	}
}

// sweep tries move on every index in turn. After a successful move the
// same index is tried again, since the numbering has shifted under it.
func (t *Triangulation) sweep(log *zap.Logger, msg string, count func() int, move func(int) bool) bool {
	moved := false
	for i := 0; i < count(); {
		if !move(i) {
			i++
			continue
		}
		moved = true
		log.Debug(msg,
			zap.Int("index", i),
			zap.Int("simplices", t.Size()),
			zap.Int("vertices", t.CountVertices()))
	}

	return moved
}

// oneBoundaryEnd reports whether exactly one endpoint of edge e lies on the
// boundary. Collapsing those edges first pulls interior vertices onto the
// boundary before the boundary itself is simplified.
func (t *Triangulation) oneBoundaryEnd(e int) bool {
	edge := t.Edge(e)
	a := onBoundary(t.Vertex(edge.Vertex(0)))
	b := onBoundary(t.Vertex(edge.Vertex(1)))

	return a != b
}

// closeAnyBook closes the first closable book and reports whether it found one.
func (t *Triangulation) closeAnyBook(log *zap.Logger) bool {
	for e := 0; e < t.CountEdges(); e++ {
		if !t.Edge(e).boundary || !t.CloseBook(e, true) {
			continue
		}
		log.Debug("closed book",
			zap.Int("edge", e),
			zap.Int("boundaryFacets", t.CountBoundaryFacets()))

		return true
	}

	return false
}
