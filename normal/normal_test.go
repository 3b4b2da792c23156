// SPDX-License-Identifier: MIT

package normal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/s1fibre/builder"
	"github.com/katalvlaran/s1fibre/normal"
	"github.com/katalvlaran/s1fibre/tri"
)

// vertexLinkSurface sets one triangle per corner occupied by vertex v.
func vertexLinkSurface(t *testing.T, tr *tri.Triangulation, v int) *normal.Surface {
	t.Helper()
	s, err := normal.NewSurface(tr)
	require.NoError(t, err)
	for _, emb := range tr.Vertex(v).Embeddings() {
		i := normal.TriangleCoord(emb.Simplex, emb.Face)
		require.NoError(t, s.Set(i, s.At(i)+1))
	}

	return s
}

func TestSurface_VertexLinks(t *testing.T) {
	s3, err := builder.SphereBoundary(3)
	require.NoError(t, err)
	link, err := vertexLinkSurface(t, s3, 0).Triangulate()
	require.NoError(t, err)
	assert.Equal(t, 4, link.Size())
	assert.Equal(t, 2, link.EulerChar())
	assert.True(t, link.IsClosed())
	assert.True(t, link.IsConnected())

	lst, err := builder.LayeredSolidTorus()
	require.NoError(t, err)
	disc, err := vertexLinkSurface(t, lst, 0).Triangulate()
	require.NoError(t, err)
	assert.Equal(t, 4, disc.Size())
	assert.Equal(t, 1, disc.EulerChar())
	assert.Equal(t, 1, disc.CountBoundaryComponents())
}

func TestSurface_EdgeLinkUsesQuads(t *testing.T) {
	// in ∂Δ⁴ simplex s misses vertex s, so simplices 2, 3, 4 hold the edge
	// {0,1} at corners 0 and 1
	s3, err := builder.SphereBoundary(3)
	require.NoError(t, err)
	s, err := normal.NewSurface(s3)
	require.NoError(t, err)
	for tet := 2; tet <= 4; tet++ {
		require.NoError(t, s.Set(normal.QuadCoord(tet, normal.VertexSplit[0][1]), 1))
	}
	require.NoError(t, s.Set(normal.TriangleCoord(0, 0), 1))
	require.NoError(t, s.Set(normal.TriangleCoord(1, 0), 1))

	sphere, err := s.Triangulate()
	require.NoError(t, err)
	assert.Equal(t, 8, sphere.Size())
	assert.Equal(t, 2, sphere.EulerChar())
	assert.True(t, sphere.IsClosed())
	assert.True(t, sphere.IsConnected())
}

func TestSurface_QuadDiscs(t *testing.T) {
	ball, err := builder.Ball(3)
	require.NoError(t, err)
	s, err := normal.NewSurface(ball)
	require.NoError(t, err)
	require.NoError(t, s.Set(normal.QuadCoord(0, 0), 2))
	require.NoError(t, s.Set(normal.TriangleCoord(0, 0), 1))

	out, err := s.Triangulate()
	require.NoError(t, err)
	assert.Equal(t, 5, out.Size())
	assert.Equal(t, 3, out.CountComponents())
	assert.Equal(t, 3, out.EulerChar())
	assert.Equal(t, 3, out.CountBoundaryComponents())
}

func TestSurface_Errors(t *testing.T) {
	_, err := normal.NewSurface(nil)
	assert.ErrorIs(t, err, normal.ErrWrongDimension)
	s4, err := builder.SphereBoundary(4)
	require.NoError(t, err)
	_, err = normal.NewSurface(s4)
	assert.ErrorIs(t, err, normal.ErrWrongDimension)

	s3, err := builder.SphereBoundary(3)
	require.NoError(t, err)
	s, err := normal.NewSurface(s3)
	require.NoError(t, err)
	assert.Equal(t, 35, s.Len())
	assert.ErrorIs(t, s.Set(35, 1), normal.ErrOutOfRange)
	assert.ErrorIs(t, s.Set(0, -1), normal.ErrNegative)
	assert.Zero(t, s.At(-3))

	require.NoError(t, s.Set(normal.QuadCoord(1, 0), 1))
	require.NoError(t, s.Set(normal.QuadCoord(1, 2), 1))
	assert.ErrorIs(t, s.Validate(), normal.ErrIncompatible)
	_, err = s.Triangulate()
	assert.ErrorIs(t, err, normal.ErrIncompatible)

	s, err = normal.NewSurface(s3)
	require.NoError(t, err)
	require.NoError(t, s.Set(normal.TriangleCoord(0, 0), 1))
	_, err = s.Triangulate()
	assert.ErrorIs(t, err, normal.ErrMatchingEquations)
}

func TestHypersurface_Links(t *testing.T) {
	s4, err := builder.SphereBoundary(4)
	require.NoError(t, err)

	h, err := normal.NewHypersurface(s4)
	require.NoError(t, err)
	assert.Equal(t, 90, h.Len())
	for _, emb := range s4.Vertex(0).Embeddings() {
		require.NoError(t, h.Set(normal.TetrahedronCoord(emb.Simplex, emb.Face), 1))
	}
	link, err := h.Triangulate()
	require.NoError(t, err)
	assert.Equal(t, 5, link.Size())
	assert.True(t, link.IsClosed())
	assert.Equal(t, 0, link.EulerChar())

	// the boundary of a neighbourhood of the edge {0,1}: prisms where both
	// ends are present, tetrahedra where only one is
	h, err = normal.NewHypersurface(s4)
	require.NoError(t, err)
	for p := 2; p <= 5; p++ {
		require.NoError(t, h.Set(normal.PrismCoord(p, tri.EdgeNumber(4, 0, 1)), 1))
	}
	require.NoError(t, h.Set(normal.TetrahedronCoord(0, 0), 1))
	require.NoError(t, h.Set(normal.TetrahedronCoord(1, 0), 1))
	sphere, err := h.Triangulate()
	require.NoError(t, err)
	assert.Equal(t, 34, sphere.Size())
	assert.True(t, sphere.IsClosed())
	assert.True(t, sphere.IsConnected())
	assert.Equal(t, 0, sphere.EulerChar())
	assert.True(t, sphere.IsValid())
}

func TestHypersurface_Prisms(t *testing.T) {
	ball, err := builder.Ball(4)
	require.NoError(t, err)

	h, err := normal.NewHypersurface(ball)
	require.NoError(t, err)
	require.NoError(t, h.Set(normal.PrismCoord(0, tri.EdgeNumber(4, 0, 1)), 1))
	out, err := h.Triangulate()
	require.NoError(t, err)
	assert.Equal(t, 8, out.Size())
	assert.Equal(t, 1, out.EulerChar())
	assert.Equal(t, 1, out.CountBoundaryComponents())

	require.NoError(t, h.Set(normal.PrismCoord(0, tri.EdgeNumber(4, 2, 3)), 1))
	out, err = h.Triangulate()
	require.NoError(t, err)
	assert.Equal(t, 16, out.Size())
	assert.Equal(t, 2, out.CountComponents())

	require.NoError(t, h.Set(normal.PrismCoord(0, tri.EdgeNumber(4, 0, 2)), 1))
	assert.ErrorIs(t, h.Validate(), normal.ErrIncompatible)

	s3, err := builder.SphereBoundary(3)
	require.NoError(t, err)
	_, err = normal.NewHypersurface(s3)
	assert.ErrorIs(t, err, normal.ErrWrongDimension)
}
