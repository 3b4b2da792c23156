// SPDX-License-Identifier: MIT
// Package tri — lazily computed skeleton.
//
// For every face dimension k < d the skeleton groups the k-faces of all top
// simplices into classes under the gluings. Each class is a Face; each
// occurrence inside a top simplex is a FaceEmbedding whose Vertices mapping
// sends the face's own vertex i to a simplex vertex, consistently across
// all embeddings of a valid face.
//
// Algorithm: one breadth-first sweep per k over (simplex, face number)
// pairs. An embedding with mapping p is propagated through every facet f of
// the simplex that contains the face (f ranges over p[k+1..d]); across the
// gluing g the mapping becomes g∘p. A facet with no partner marks the face as
// boundary. Reaching an already labelled pair with a different head mapping
// means the face is identified with itself under a non-trivial symmetry.
//
// Complexity: O(n · C(d+1,k+1) · d) per k.

package tri

import (
	"github.com/katalvlaran/s1fibre/bfs"
	"github.com/katalvlaran/s1fibre/perm"
)

// FaceEmbedding is one occurrence of a face inside a top simplex.
type FaceEmbedding struct {
	Simplex  int
	Face     int
	Vertices perm.Perm
}

// linkState caches the outcome of the link-based classification of a face.
type linkState uint8

const (
	linkUnknown linkState = iota
	linkRegular
	linkIdeal
	linkInvalid
)

// Face is a k-dimensional face (k < d) of a triangulation.
type Face struct {
	sk             *skeleton
	dim            int
	index          int
	emb            []FaceEmbedding
	boundary       bool
	selfIdentified bool
	link           linkState
}

type skeleton struct {
	t       *Triangulation
	faces   [MaxDim][]*Face
	of      [MaxDim][][]int
	mapping [MaxDim][][]perm.Perm
	embIdx  [MaxDim][][]int
	arcs    [][]bfs.Arc
}

// skel returns the current skeleton, computing it if needed.
func (t *Triangulation) skel() *skeleton {
	if t.sk == nil {
		t.sk = buildSkeleton(t)
	}

	return t.sk
}

func buildSkeleton(t *Triangulation) *skeleton {
	sk := &skeleton{t: t}
	for k := 0; k < t.dim; k++ {
		sk.label(k)
	}
	sk.buildArcs()

	return sk
}

type embRef struct{ s, j int }

// label runs the breadth-first classification for k-faces.
func (sk *skeleton) label(k int) {
	t := sk.t
	d := t.dim
	nf := NumFaces(d, k)
	sk.of[k] = make([][]int, len(t.simplices))
	sk.mapping[k] = make([][]perm.Perm, len(t.simplices))
	sk.embIdx[k] = make([][]int, len(t.simplices))
	for s := range t.simplices {
		sk.of[k][s] = make([]int, nf)
		sk.mapping[k][s] = make([]perm.Perm, nf)
		sk.embIdx[k][s] = make([]int, nf)
		for j := range sk.of[k][s] {
			sk.of[k][s][j] = -1
		}
	}

	for s := range t.simplices {
		for j := 0; j < nf; j++ {
			if sk.of[k][s][j] >= 0 {
				continue
			}
			face := &Face{sk: sk, dim: k, index: len(sk.faces[k])}
			sk.faces[k] = append(sk.faces[k], face)
			sk.attach(face, s, j, CanonicalMapping(d, k, j))

			queue := []embRef{{s, j}}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				p := sk.mapping[k][cur.s][cur.j]
				for pos := k + 1; pos <= d; pos++ {
					f := p.At(pos)
					u := t.simplices[cur.s].adj[f]
					if u < 0 {
						face.boundary = true
						continue
					}
					q := t.simplices[cur.s].gluing[f].Compose(p)
					uj := faceOfMapping(d, k, q)
					if sk.of[k][u][uj] < 0 {
						sk.attach(face, u, uj, q)
						queue = append(queue, embRef{u, uj})
						continue
					}
					if !sameHead(sk.mapping[k][u][uj], q, k) {
						face.selfIdentified = true
					}
				}
			}
		}
	}
}

func (sk *skeleton) attach(face *Face, s, j int, p perm.Perm) {
	sk.of[face.dim][s][j] = face.index
	sk.mapping[face.dim][s][j] = p
	sk.embIdx[face.dim][s][j] = len(face.emb)
	face.emb = append(face.emb, FaceEmbedding{Simplex: s, Face: j, Vertices: p})
}

func sameHead(a, b perm.Perm, k int) bool {
	for i := 0; i <= k; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// buildArcs records, for every vertex, the edges leaving it.
func (sk *skeleton) buildArcs() {
	sk.arcs = make([][]bfs.Arc, len(sk.faces[0]))
	for _, e := range sk.faces[1] {
		v0, v1 := e.Vertex(0), e.Vertex(1)
		sk.arcs[v0] = append(sk.arcs[v0], bfs.Arc{Edge: e.index, To: v1, Forward: true})
		sk.arcs[v1] = append(sk.arcs[v1], bfs.Arc{Edge: e.index, To: v0, Forward: false})
	}
}

// CountFaces returns the number of k-faces; k == Dim() counts top simplices.
func (t *Triangulation) CountFaces(k int) int {
	if k == t.dim {
		return len(t.simplices)
	}
	if k < 0 || k > t.dim {
		return 0
	}

	return len(t.skel().faces[k])
}

// CountVertices returns the number of vertices.
func (t *Triangulation) CountVertices() int { return t.CountFaces(0) }

// CountEdges returns the number of edges.
func (t *Triangulation) CountEdges() int { return t.CountFaces(1) }

// CountTriangles returns the number of 2-faces, top simplices included when d == 2.
func (t *Triangulation) CountTriangles() int { return t.CountFaces(2) }

// Face returns k-face i (k < Dim()).
func (t *Triangulation) Face(k, i int) *Face {
	return t.skel().faces[k][i]
}

// Faces returns all k-faces (k < Dim()). The slice must not be modified.
func (t *Triangulation) Faces(k int) []*Face {
	return t.skel().faces[k]
}

// Vertex returns vertex i.
func (t *Triangulation) Vertex(i int) *Face { return t.Face(0, i) }

// Edge returns edge i.
func (t *Triangulation) Edge(i int) *Face { return t.Face(1, i) }

// SimplexFace returns the index of the k-face numbered j inside simplex s.
func (t *Triangulation) SimplexFace(s, k, j int) int {
	return t.skel().of[k][s][j]
}

// SimplexFaceMapping returns the mapping of the k-face numbered j inside s:
// image i is the simplex vertex playing the role of the face's vertex i.
func (t *Triangulation) SimplexFaceMapping(s, k, j int) perm.Perm {
	return t.skel().mapping[k][s][j]
}

// SimplexVertex returns the vertex at corner j of simplex s.
func (t *Triangulation) SimplexVertex(s, j int) int {
	return t.skel().of[0][s][j]
}

// SimplexEdge returns the edge joining corners a and b of simplex s,
// together with that edge's mapping inside s.
func (t *Triangulation) SimplexEdge(s, a, b int) (int, perm.Perm) {
	j := EdgeNumber(t.dim, a, b)
	sk := t.skel()

	return sk.of[1][s][j], sk.mapping[1][s][j]
}

// TriangleEdge returns edge j (opposite vertex j) of triangle i, and the
// edge's mapping expressed in the triangle's own labels with image 2 equal
// to j. The sign of that mapping is the incidence number of the edge in the
// triangle's boundary. When Dim() == 2 triangles are the top simplices.
func (t *Triangulation) TriangleEdge(i, j int) (int, perm.Perm) {
	if t.dim == 2 {
		sk := t.skel()
		return sk.of[1][i][j], subMapping(perm.Identity(), 2, sk.mapping[1][i][j], 1)
	}
	f := t.Face(2, i)

	return f.SubFace(1, j), f.SubFaceMapping(1, j)
}

// subMapping rewrites the simplex mapping qs of an l-subface in the labels of
// a k-face with simplex mapping p; unused face labels follow in ascending order.
func subMapping(p perm.Perm, k int, qs perm.Perm, l int) perm.Perm {
	inv := p.Inverse()
	q := perm.Identity()
	used := 0
	for a := 0; a <= l; a++ {
		q[a] = inv[qs[a]]
		used |= 1 << q[a]
	}
	pos := l + 1
	for v := 0; v <= k; v++ {
		if used&(1<<v) == 0 {
			q[pos] = uint8(v)
			pos++
		}
	}

	return q
}

// Index returns the face's position among faces of its dimension.
func (f *Face) Index() int { return f.index }

// Dim returns the face dimension k.
func (f *Face) Dim() int { return f.dim }

// Degree returns the number of embeddings.
func (f *Face) Degree() int { return len(f.emb) }

// Embeddings returns the embeddings in discovery order. Must not be modified.
func (f *Face) Embeddings() []FaceEmbedding { return f.emb }

// Embedding returns embedding i.
func (f *Face) Embedding(i int) FaceEmbedding { return f.emb[i] }

// IsBoundary reports whether the face lies in an unglued facet.
func (f *Face) IsBoundary() bool { return f.boundary }

// Vertex returns the global index of the face's vertex i.
func (f *Face) Vertex(i int) int {
	e := f.emb[0]

	return f.sk.of[0][e.Simplex][e.Vertices.At(i)]
}

// SubFace returns the global index of the l-dimensional subface i of this
// face, numbered inside the face as inside a k-simplex.
func (f *Face) SubFace(l, i int) int {
	if l == 0 {
		return f.Vertex(i)
	}
	e := f.emb[0]
	j := f.simplexSubFace(l, i)

	return f.sk.of[l][e.Simplex][j]
}

// SubFaceMapping returns the mapping of subface (l, i) in the face's labels.
func (f *Face) SubFaceMapping(l, i int) perm.Perm {
	e := f.emb[0]
	j := f.simplexSubFace(l, i)

	return subMapping(e.Vertices, f.dim, f.sk.mapping[l][e.Simplex][j], l)
}

// simplexSubFace maps subface (l, i) of the face to a face number inside the
// simplex of the first embedding.
func (f *Face) simplexSubFace(l, i int) int {
	e := f.emb[0]
	local := FaceVertices(f.dim, l, i)
	verts := make([]int, len(local))
	for a, v := range local {
		verts[a] = e.Vertices.At(v)
	}

	return FaceNumber(f.sk.t.dim, verts...)
}

// Edge returns edge i of a face of dimension >= 2.
func (f *Face) Edge(i int) int { return f.SubFace(1, i) }

// EdgeMapping returns the mapping of edge i in the face's labels.
func (f *Face) EdgeMapping(i int) perm.Perm { return f.SubFaceMapping(1, i) }
