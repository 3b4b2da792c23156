// SPDX-License-Identifier: MIT
// Package: s1fibre/fibre
//
// verify.go — the level-set test in vertex links.
//
// Near a vertex v the map to the circle is approximated by c read along the
// edges leaving v. Its zero set inside the link of v must be a sphere of
// dimension d-2 (a point pair, a circle, a 2-sphere) at an interior vertex
// and a ball at a boundary vertex; the map is then a bundle projection near
// v. Corners whose edge from v has positive value lie above the level, all
// others below it.
//
//   • d = 2: count the link edges whose ends lie on opposite sides.
//   • d = 3: build the level set as a dim1.Complex, one arc per link
//     triangle that separates one corner from the other two, glued across
//     the tetrahedron faces through v.
//   • d = 4: build the level set as a normal surface in the link of v and
//     read off its components, Euler characteristics and boundary circles.

package fibre

import (
	"github.com/katalvlaran/s1fibre/bfs"
	"github.com/katalvlaran/s1fibre/dim1"
	"github.com/katalvlaran/s1fibre/normal"
	"github.com/katalvlaran/s1fibre/tri"
)

// VerifySimpleBundle reports whether the level set of c is a sphere or a
// ball in every vertex link, stopping at the first vertex that fails. c is
// expected to pass VerifyPrimitive.
//
// Complexity: O(Σ deg v) in dimensions 2 and 3; dimension 4 adds a link
// surface per vertex.
func (m *MapToS1) VerifySimpleBundle(c Cochain) bool {
	if len(c) != m.t.CountEdges() {
		return false
	}
	for v := 0; v < m.t.CountVertices(); v++ {
		if _, ok := m.levelSet(c, v); !ok {
			return false
		}
	}

	return true
}

// Diagnose runs the level-set test at every vertex and returns the
// per-vertex records together with the overall verdict.
func (m *MapToS1) Diagnose(c Cochain) (Diagnostic, bool) {
	d := Diagnostic{Dim: m.t.Dim()}
	if len(c) != m.t.CountEdges() {
		return d, false
	}
	ok := true
	for v := 0; v < m.t.CountVertices(); v++ {
		rec, good := m.levelSet(c, v)
		d.Vertices = append(d.Vertices, rec)
		ok = ok && good
	}

	return d, ok
}

// levelSet dispatches the link test on the dimension.
func (m *MapToS1) levelSet(c Cochain, v int) ([]int, bool) {
	switch m.t.Dim() {
	case 2:
		return m.levelSetSurface(c, v)
	case 3:
		return m.levelSetThree(c, v)
	default:
		return m.levelSetFour(c, v)
	}
}

// levelSetSurface counts the link edges of v that the level crosses. An
// interior vertex needs two, a boundary vertex one.
func (m *MapToS1) levelSetSurface(c Cochain, v int) ([]int, bool) {
	vert := m.t.Vertex(v)
	z := 0
	for _, emb := range vert.Embeddings() {
		p := emb.Vertices
		a := m.rise(c, emb.Simplex, p.At(0), p.At(1))
		b := m.rise(c, emb.Simplex, p.At(0), p.At(2))
		if a.Sign()*b.Sign() < 0 {
			z++
		}
	}
	want := 2
	if vert.IsBoundary() {
		want = 1
	}

	return []int{z}, z == want
}

// loneCorner returns the local index k in 1..3 of the corner that the level
// set cuts off from the other two in a vertex embedding, or 0 when all
// three lie on one side.
func (m *MapToS1) loneCorner(c Cochain, emb tri.FaceEmbedding) int {
	var up, down []int
	p := emb.Vertices
	for k := 1; k <= 3; k++ {
		if m.rise(c, emb.Simplex, p.At(0), p.At(k)).Sign() > 0 {
			up = append(up, k)
		} else {
			down = append(down, k)
		}
	}
	switch {
	case len(up) == 1:
		return up[0]
	case len(down) == 1:
		return down[0]
	default:
		return 0
	}
}

// crossedSides lists, ascending, the two local corners other than 0 and
// lone. Slot i of an arc lies on the face opposite corner crossedSides[i].
func crossedSides(lone int) [2]int {
	var out [2]int
	i := 0
	for k := 1; k <= 3; k++ {
		if k != lone {
			out[i] = k
			i++
		}
	}

	return out
}

// levelSetThree assembles the level set in the link of v as arcs, one per
// link triangle that the level cuts, and joins them across the tetrahedron
// faces through v. The record is (circles, intervals); an interior vertex
// needs exactly one circle and a boundary vertex exactly one interval. An
// arc whose neighbour across a face carries no arc makes the test fail.
//
// Complexity: O(deg v).
func (m *MapToS1) levelSetThree(c Cochain, v int) ([]int, bool) {
	vert := m.t.Vertex(v)
	embs := vert.Embeddings()
	at := make(map[[2]int]int, len(embs))
	for z, emb := range embs {
		at[[2]int{emb.Simplex, emb.Face}] = z
	}

	level := dim1.New(len(embs))
	arc := make([]int, len(embs))
	lone := make([]int, len(embs))
	for z, emb := range embs {
		arc[z] = -1
		if lone[z] = m.loneCorner(c, emb); lone[z] > 0 {
			arc[z], _ = level.NewEdge(dim1.Free, dim1.Free)
		}
	}

	ok := true
	for z, emb := range embs {
		if arc[z] < 0 {
			continue
		}
		for slot, k := range crossedSides(lone[z]) {
			f := emb.Vertices.At(k)
			adj := m.t.Adjacent(emb.Simplex, f)
			if adj < 0 {
				continue
			}
			g := m.t.Gluing(emb.Simplex, f)
			w, found := at[[2]int{adj, g.At(emb.Vertices.At(0))}]
			if !found || arc[w] < 0 {
				ok = false
				continue
			}
			theirs := crossedSides(lone[w])
			var wslot int
			switch g.At(f) {
			case embs[w].Vertices.At(theirs[0]):
				wslot = 0
			case embs[w].Vertices.At(theirs[1]):
				wslot = 1
			default:
				ok = false
				continue
			}
			if err := level.JoinEdges(arc[z], slot, arc[w], wslot); err != nil {
				ok = false
			}
		}
	}

	circles, intervals := level.ComponentTypes()
	rec := []int{circles, intervals}
	if !ok {
		return rec, false
	}
	if vert.IsBoundary() {
		return rec, circles == 0 && intervals == 1
	}

	return rec, circles == 1 && intervals == 0
}

// levelSetFour marks in the link of v the normal triangle or quad that the
// level cuts from each link tetrahedron, triangulates the resulting normal
// surface and measures its components. The record is the component count
// followed by (genus, boundary circles) per component. An interior vertex
// needs a single sphere, a boundary vertex a single disc.
//
// Complexity: O(deg v) plus the surface triangulation.
func (m *MapToS1) levelSetFour(c Cochain, v int) ([]int, bool) {
	vert := m.t.Vertex(v)
	link, incl, err := vert.BuildLink()
	if err != nil {
		return []int{0}, false
	}
	surf, err := normal.NewSurface(link)
	if err != nil {
		return []int{0}, false
	}
	for j, inc := range incl {
		p := inc.Vertices
		var up, down []int
		for k := 0; k < 4; k++ {
			if m.rise(c, inc.Simplex, p.At(4), p.At(k)).Sign() > 0 {
				up = append(up, k)
			} else {
				down = append(down, k)
			}
		}
		var i int
		switch {
		case len(up) == 1:
			i = normal.TriangleCoord(j, up[0])
		case len(down) == 1:
			i = normal.TriangleCoord(j, down[0])
		case len(up) == 2:
			i = normal.QuadCoord(j, normal.VertexSplit[up[0]][up[1]])
		default:
			continue
		}
		if err := surf.Set(i, 1); err != nil {
			return []int{0}, false
		}
	}

	level, err := surf.Triangulate()
	if err != nil {
		return []int{0}, false
	}
	shapes, err := surfaceShapes(level)
	if err != nil {
		return []int{0}, false
	}
	rec := []int{len(shapes)}
	for _, sh := range shapes {
		rec = append(rec, sh.genus(), sh.boundary)
	}
	if len(shapes) != 1 {
		return rec, false
	}
	if vert.IsBoundary() {
		return rec, shapes[0].euler == 1 && shapes[0].boundary == 1
	}

	return rec, shapes[0].euler == 2 && shapes[0].boundary == 0
}

// shape is the Euler characteristic and boundary circle count of one
// connected surface.
type shape struct {
	euler, boundary int
}

func (sh shape) genus() int { return (2 - (sh.euler + sh.boundary)) / 2 }

// surfaceShapes splits a 2-triangulation into components through its
// 1-skeleton and measures each of them. Boundary circles are the boundary
// components of the triangulation, which follow edge adjacency around
// each vertex, so two circles through one vertex count twice.
//
// Complexity: O(n) plus the component labelling.
func surfaceShapes(s *tri.Triangulation) ([]shape, error) {
	label, n, err := bfs.Components(s)
	if err != nil {
		return nil, err
	}
	shapes := make([]shape, n)
	nV := s.CountVertices()
	for v := 0; v < nV; v++ {
		shapes[label[v]].euler++
	}
	for _, e := range s.Faces(1) {
		shapes[label[e.Vertex(0)]].euler--
	}
	for i := 0; i < s.Size(); i++ {
		shapes[label[s.SimplexVertex(i, 0)]].euler++
	}

	comp, _ := s.BoundaryComponents()
	counted := make(map[int]bool)
	for _, e := range s.Faces(1) {
		c := comp[e.Index()]
		if c < 0 || counted[c] {
			continue
		}
		counted[c] = true
		shapes[label[e.Vertex(0)]].boundary++
	}

	return shapes, nil
}
