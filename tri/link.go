// SPDX-License-Identifier: MIT

package tri

import (
	"fmt"

	"github.com/katalvlaran/s1fibre/perm"
)

// LinkInclusion places one top simplex of a face link inside the ambient
// triangulation. Vertex a of the link simplex (a <= d-k-1) is ambient vertex
// Vertices[a] of Simplex; the remaining images are the face's own vertices.
type LinkInclusion struct {
	Simplex  int
	Vertices perm.Perm
}

// BuildLink triangulates the link of the face: one (d-k-1)-simplex per
// embedding, glued whenever the ambient simplices are glued along a facet
// containing the face. Link simplex b corresponds to Embedding(b).
//
// Only links of dimension 2 or more can be represented; smaller links
// return ErrBadDimension.
//
// Complexity: O(degree · (d+1)!) for the pieces and their gluings.
func (f *Face) BuildLink() (*Triangulation, []LinkInclusion, error) {
	sk := f.sk
	t := sk.t
	d, k := t.dim, f.dim
	m := d - k - 1
	link, err := New(m)
	if err != nil {
		return nil, nil, fmt.Errorf("link of a %d-face in dimension %d: %w", k, d, err)
	}
	link.NewSimplices(len(f.emb))

	incl := make([]LinkInclusion, len(f.emb))
	for b, e := range f.emb {
		v := perm.Identity()
		for a := 0; a <= d; a++ {
			v[a] = e.Vertices[(k+1+a)%(d+1)]
		}
		incl[b] = LinkInclusion{Simplex: e.Simplex, Vertices: v}
	}

	for b, e := range f.emb {
		p := e.Vertices
		for a := 0; a <= m; a++ {
			if link.simplices[b].adj[a] >= 0 {
				continue
			}
			x := p.At(k + 1 + a)
			u := t.simplices[e.Simplex].adj[x]
			if u < 0 {
				continue
			}
			g := t.simplices[e.Simplex].gluing[x]
			uj := faceOfMapping(d, k, g.Compose(p))
			if sk.of[k][u][uj] != f.index {
				return nil, nil, fmt.Errorf("%w: face %d/%d leaves its class", ErrInconsistentLink, k, f.index)
			}
			other := sk.embIdx[k][u][uj]
			inv := sk.mapping[k][u][uj].Inverse()
			h := perm.Identity()
			for c := 0; c <= m; c++ {
				h[c] = inv[g[p[k+1+c]]] - uint8(k+1)
			}
			if err := link.Join(b, a, other, h); err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrInconsistentLink, err)
			}
		}
	}

	return link, incl, nil
}

// classify computes (once) whether the face is regular, ideal or invalid.
func (f *Face) classify() linkState {
	if f.link == linkUnknown {
		f.link = f.computeLinkState()
	}

	return f.link
}

// computeLinkState builds the link and classifies it by dimension.
func (f *Face) computeLinkState() linkState {
	if f.selfIdentified {
		return linkInvalid
	}
	m := f.sk.t.dim - f.dim - 1
	if m < MinDim {
		// links of points and arcs are always circles or intervals
		return linkRegular
	}
	link, _, err := f.BuildLink()
	if err != nil {
		return linkInvalid
	}
	if m == 2 {
		return classifySurface(link, f.dim == 0)
	}

	return classifyThreeManifold(link)
}

// classifySurface accepts spheres and discs; other closed surfaces are
// ideal when allowIdeal is set.
func classifySurface(link *Triangulation, allowIdeal bool) linkState {
	chi := link.EulerChar()
	if link.IsClosed() {
		switch {
		case chi == 2:
			return linkRegular
		case allowIdeal:
			return linkIdeal
		default:
			return linkInvalid
		}
	}
	if chi == 1 && link.CountBoundaryComponents() == 1 {
		return linkRegular
	}

	return linkInvalid
}

// classifyThreeManifold recognises spheres and balls up to homology: the
// link must be a genuine 3-manifold with trivial first homology, and a
// bounded link must have a single 2-sphere boundary. Closed links with
// non-trivial homology make the vertex ideal.
func classifyThreeManifold(link *Triangulation) linkState {
	if !link.IsValid() || link.IsIdeal() {
		return linkInvalid
	}
	trivial := link.hasTrivialH1()
	if link.IsClosed() {
		if trivial {
			return linkRegular
		}
		return linkIdeal
	}
	if trivial && link.CountBoundaryComponents() == 1 && link.boundaryEuler() == 2 {
		return linkRegular
	}

	return linkInvalid
}

// IsValid reports whether the face is not identified with itself under a
// non-trivial symmetry and its link is a sphere, a ball, or (for vertices
// of 3- and 4-manifolds) a closed ideal cusp.
func (f *Face) IsValid() bool { return f.classify() != linkInvalid }

// IsIdeal reports whether the face is a vertex whose link is closed but not a sphere.
func (f *Face) IsIdeal() bool { return f.classify() == linkIdeal }
