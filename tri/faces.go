// SPDX-License-Identifier: MIT
// Package tri — numbering of the sub-faces of a d-simplex.
//
// Conventions:
//   • vertex j is the face {j};
//   • the facets (dimension d-1) are numbered by their opposite vertex;
//   • every other face dimension is numbered lexicographically by its sorted
//     vertex set, so the edges of a tetrahedron are 01,02,03,12,13,23 and those
//     of a pentachoron 01,02,03,04,12,13,14,23,24,34.
//
// All tables are built once in init and must be treated as read-only.

package tri

import (
	"github.com/katalvlaran/s1fibre/perm"
)

const (
	// MinDim and MaxDim bound the supported triangulation dimensions.
	MinDim = 2
	MaxDim = 4
)

// faceVerts[d][k][j] lists the sorted vertices of face j of dimension k in a d-simplex.
var faceVerts [MaxDim + 1][MaxDim + 1][][]int

// faceIndex[d][k][mask] is the face number of the face with vertex bitmask mask.
var faceIndex [MaxDim + 1][MaxDim + 1]map[int]int

// canonical[d][k][j] is the mapping whose first k+1 images are the face
// vertices in ascending order, followed by the remaining vertices ascending.
var canonical [MaxDim + 1][MaxDim + 1][]perm.Perm

func init() {
	for d := MinDim; d <= MaxDim; d++ {
		for k := 0; k <= d; k++ {
			subsets := combinations(d+1, k+1)
			if k == d-1 {
				// facet j is opposite vertex j
				facets := make([][]int, d+1)
				for _, s := range subsets {
					facets[missing(s, d+1)] = s
				}
				subsets = facets
			}
			faceVerts[d][k] = subsets
			faceIndex[d][k] = make(map[int]int, len(subsets))
			canonical[d][k] = make([]perm.Perm, len(subsets))
			for j, s := range subsets {
				faceIndex[d][k][mask(s)] = j
				canonical[d][k][j] = completeMapping(s, d)
			}
		}
	}
}

// combinations lists all sorted (size)-subsets of {0..n-1} lexicographically.
func combinations(n, size int) [][]int {
	var out [][]int
	cur := make([]int, 0, size)
	var rec func(start int)
	rec = func(start int) {
		if len(cur) == size {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for v := start; v < n; v++ {
			cur = append(cur, v)
			rec(v + 1)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)

	return out
}

// missing returns the unique element of {0..n-1} absent from s (len(s) == n-1).
func missing(s []int, n int) int {
	m := mask(s)
	for v := 0; v < n; v++ {
		if m&(1<<v) == 0 {
			return v
		}
	}

	return -1
}

func mask(s []int) int {
	m := 0
	for _, v := range s {
		m |= 1 << v
	}

	return m
}

// completeMapping places verts first and the other vertices of {0..d} after them, ascending.
func completeMapping(verts []int, d int) perm.Perm {
	p := perm.Identity()
	used := mask(verts)
	for i, v := range verts {
		p[i] = uint8(v)
	}
	pos := len(verts)
	for v := 0; v <= d; v++ {
		if used&(1<<v) == 0 {
			p[pos] = uint8(v)
			pos++
		}
	}

	return p
}

// NumFaces returns the number of k-faces of a d-simplex, C(d+1, k+1).
func NumFaces(d, k int) int {
	if d < MinDim || d > MaxDim || k < 0 || k > d {
		return 0
	}

	return len(faceVerts[d][k])
}

// FaceVertices returns the vertices of face j of dimension k in a d-simplex.
// The returned slice must not be modified.
func FaceVertices(d, k, j int) []int {
	return faceVerts[d][k][j]
}

// FaceNumber returns the number of the k-face spanned by verts inside a
// d-simplex (k = len(verts)-1), or -1 if verts does not name a face.
func FaceNumber(d int, verts ...int) int {
	k := len(verts) - 1
	if d < MinDim || d > MaxDim || k < 0 || k > d {
		return -1
	}
	j, ok := faceIndex[d][k][mask(verts)]
	if !ok {
		return -1
	}

	return j
}

// EdgeNumber returns the number of edge {a, b} in a d-simplex.
func EdgeNumber(d, a, b int) int {
	return FaceNumber(d, a, b)
}

// CanonicalMapping returns the mapping of face j of dimension k of a
// d-simplex: its first k+1 images are the face vertices in ascending order.
func CanonicalMapping(d, k, j int) perm.Perm {
	return canonical[d][k][j]
}

// faceOfMapping returns the face number spanned by images 0..k of p.
func faceOfMapping(d, k int, p perm.Perm) int {
	m := 0
	for i := 0; i <= k; i++ {
		m |= 1 << p[i]
	}

	return faceIndex[d][k][m]
}
