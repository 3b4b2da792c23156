package tri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/s1fibre/builder"
	"github.com/katalvlaran/s1fibre/tri"
)

func TestSubdivide_PreservesTopology(t *testing.T) {
	disc, err := builder.Ball(2)
	require.NoError(t, err)
	disc.Subdivide()
	assert.Equal(t, 6, disc.Size())
	assert.Equal(t, 7, disc.CountVertices())
	assert.Equal(t, 12, disc.CountEdges())
	assert.Equal(t, 1, disc.EulerChar())
	assert.Equal(t, 1, disc.CountBoundaryComponents())

	s3, err := builder.SphereBoundary(3)
	require.NoError(t, err)
	s3.Subdivide()
	assert.Equal(t, 120, s3.Size())
	assert.Equal(t, 30, s3.CountVertices())
	assert.Equal(t, 0, s3.EulerChar())
	assert.True(t, s3.IsClosed())
	assert.True(t, s3.IsValid())
	assert.True(t, s3.IsConnected())
}

func TestIdealToFinite_TruncatesCusp(t *testing.T) {
	// the cone over a torus has one ideal vertex, the apex
	var cone builder.Complex
	for _, tr := range builder.Torus7() {
		cone = append(cone, append(append([]int(nil), tr...), 7))
	}
	tr, err := builder.FromComplex(cone)
	require.NoError(t, err)
	require.True(t, tr.IsIdeal())
	assert.True(t, tr.IsValid())

	require.True(t, tr.IdealToFinite())
	assert.False(t, tr.IsIdeal())
	assert.True(t, tr.IsValid())
	assert.Equal(t, 0, tr.EulerChar())
	assert.Equal(t, 2, tr.CountBoundaryComponents(), "torus × interval")

	assert.False(t, tr.IdealToFinite())
}

func TestCollapseEdge_Sphere(t *testing.T) {
	tr, err := builder.SphereBoundary(2)
	require.NoError(t, err)
	require.True(t, tr.CollapseEdge(0, true, false))
	assert.Equal(t, 4, tr.Size(), "check-only must not change anything")

	require.True(t, tr.CollapseEdge(0, true, true))
	assert.Equal(t, 2, tr.Size())
	assert.Equal(t, 2, tr.EulerChar())
	assert.True(t, tr.IsClosed())

	// two triangles glued along their boundary: every collapse crushes the sphere
	for e := 0; e < tr.CountEdges(); e++ {
		assert.False(t, tr.CollapseEdge(e, true, false))
	}
	assert.False(t, tr.CollapseEdge(99, true, true))
}

func TestCollapseEdge_RefusesBallAndLoops(t *testing.T) {
	ball, err := builder.Ball(3)
	require.NoError(t, err)
	for e := 0; e < ball.CountEdges(); e++ {
		assert.False(t, ball.CollapseEdge(e, true, false))
	}

	lst, err := builder.LayeredSolidTorus()
	require.NoError(t, err)
	for e := 0; e < lst.CountEdges(); e++ {
		assert.False(t, lst.CollapseEdge(e, true, false), "loops cannot be collapsed")
	}
}

func TestSimplify_SphereAndProduct(t *testing.T) {
	s3, err := builder.SphereBoundary(3)
	require.NoError(t, err)
	s3.Subdivide()
	require.True(t, s3.Simplify())
	assert.Less(t, s3.Size(), 120)
	assert.Equal(t, 0, s3.EulerChar())
	assert.True(t, s3.IsClosed())
	assert.True(t, s3.IsValid())

	prod, _, err := builder.ProductWithCircle(builder.SphereComplex(2))
	require.NoError(t, err)
	before := prod.Size()
	prod.Simplify()
	assert.LessOrEqual(t, prod.Size(), before)
	assert.Equal(t, 0, prod.EulerChar())
	assert.True(t, prod.IsValid())
}

func TestDivideEdges_Stellar(t *testing.T) {
	tr, err := builder.SphereBoundary(2)
	require.NoError(t, err)
	require.NoError(t, tr.DivideEdges([]int{0}))
	assert.Equal(t, 6, tr.Size())
	assert.Equal(t, 5, tr.CountVertices())
	assert.Equal(t, 9, tr.CountEdges())
	assert.Equal(t, 2, tr.EulerChar())
	assert.True(t, tr.IsClosed())
	assert.True(t, tr.IsValid())

	assert.ErrorIs(t, tr.DivideEdges([]int{42}), tri.ErrOutOfRange)
	require.NoError(t, tr.DivideEdges(nil))
	assert.Equal(t, 6, tr.Size())
}

func TestDivideEdges_LayeredSolidTorus(t *testing.T) {
	lst, err := builder.LayeredSolidTorus()
	require.NoError(t, err)
	single, triple := -1, -1
	for _, e := range lst.Faces(1) {
		switch e.Degree() {
		case 1:
			single = e.Index()
		case 3:
			triple = e.Index()
		}
	}
	require.GreaterOrEqual(t, single, 0)
	require.GreaterOrEqual(t, triple, 0)

	split := lst.Clone()
	require.NoError(t, split.DivideEdges([]int{single}))
	assert.Equal(t, 2, split.Size())
	assert.Equal(t, 2, split.CountVertices())
	assert.Equal(t, 0, split.EulerChar())
	assert.True(t, split.IsValid())

	// the degree-3 edge meets the tetrahedron three times: barycentric fallback
	bary := lst.Clone()
	require.NoError(t, bary.DivideEdges([]int{triple}))
	assert.Equal(t, 24, bary.Size())
	assert.Equal(t, 0, bary.EulerChar())
	assert.True(t, bary.IsValid())
}

// threeTets returns three tetrahedra around the edge {3, 4}.
func threeTets(t *testing.T) *tri.Triangulation {
	t.Helper()
	tr, err := builder.FromComplex(builder.Complex{{0, 1, 3, 4}, {1, 2, 3, 4}, {0, 2, 3, 4}})
	require.NoError(t, err)

	return tr
}

func edgeOfDegree(tr *tri.Triangulation, deg int, boundary bool) int {
	for _, e := range tr.Faces(1) {
		if e.Degree() == deg && e.IsBoundary() == boundary {
			return e.Index()
		}
	}

	return -1
}

func TestThreeTwo(t *testing.T) {
	tr := threeTets(t)
	e := edgeOfDegree(tr, 3, false)
	require.GreaterOrEqual(t, e, 0)

	require.True(t, tr.ThreeTwo(e, false))
	assert.Equal(t, 3, tr.Size(), "check-only must not change anything")

	require.True(t, tr.ThreeTwo(e, true))
	assert.Equal(t, 2, tr.Size())
	assert.Equal(t, 5, tr.CountVertices())
	assert.Equal(t, 9, tr.CountEdges())
	assert.Equal(t, 6, tr.CountBoundaryFacets())
	assert.Equal(t, 1, tr.EulerChar())
	assert.Equal(t, 1, tr.CountBoundaryComponents())
	assert.True(t, tr.IsValid())

	for e := 0; e < tr.CountEdges(); e++ {
		assert.False(t, tr.ThreeTwo(e, false), "no internal edge is left")
	}
}

func TestTwoZero_Refusals(t *testing.T) {
	// two tetrahedra folded around edge 01 form a whole component
	pillow, err := tri.Parse("dim 3 size 2\nglue 0 2 1 (0 1 2 3)\nglue 0 3 1 (0 1 2 3)\n")
	require.NoError(t, err)
	e := edgeOfDegree(pillow, 2, false)
	require.GreaterOrEqual(t, e, 0)
	assert.False(t, pillow.TwoZero(e, true))
	assert.Equal(t, 2, pillow.Size())

	tr := threeTets(t)
	for e := 0; e < tr.CountEdges(); e++ {
		assert.False(t, tr.TwoZero(e, false))
	}

	disc, err := builder.Ball(2)
	require.NoError(t, err)
	assert.False(t, disc.TwoZero(0, false), "dimension 3 only")
}

func TestShellBoundary(t *testing.T) {
	ball, err := builder.Ball(3)
	require.NoError(t, err)
	assert.False(t, ball.ShellBoundary(0, false), "four boundary facets")

	tr := threeTets(t)
	require.True(t, tr.ShellBoundary(0, false))
	assert.Equal(t, 3, tr.Size())
	require.True(t, tr.ShellBoundary(0, true))
	assert.Equal(t, 2, tr.Size())
	assert.Equal(t, 1, tr.EulerChar())
	assert.Equal(t, 1, tr.CountBoundaryComponents())
	assert.True(t, tr.IsValid())
	assert.False(t, tr.ShellBoundary(5, false))
}

func TestCloseBook(t *testing.T) {
	tr := threeTets(t)
	e := edgeOfDegree(tr, 1, true)
	require.GreaterOrEqual(t, e, 0)
	require.True(t, tr.CloseBook(e, false))
	assert.Equal(t, 6, tr.CountBoundaryFacets())

	require.True(t, tr.CloseBook(e, true))
	assert.Equal(t, 3, tr.Size())
	assert.Equal(t, 4, tr.CountBoundaryFacets())

	closed, err := builder.SphereBoundary(3)
	require.NoError(t, err)
	assert.False(t, closed.CloseBook(0, false), "no boundary edge")
}

func TestIdealToFinite_TrefoilComplement(t *testing.T) {
	// the two-tetrahedron ideal triangulation of the trefoil complement
	src := `dim 3 size 2
glue 0 0 1 (1 3 0 2)
glue 0 1 1 (2 0 3 1)
glue 0 2 1 (0 3 2 1)
glue 0 3 1 (2 1 0 3)
`
	tr, err := tri.Parse(src)
	require.NoError(t, err)
	require.True(t, tr.IsClosed())
	require.Equal(t, 1, tr.CountVertices())
	require.True(t, tr.IsIdeal())

	require.True(t, tr.IdealToFinite())
	assert.False(t, tr.IsEmpty())
	assert.False(t, tr.IsIdeal())
	// every first-level piece has its corner 0 at the cusp; a quarter of
	// its second-level pieces touch that corner
	assert.Equal(t, 2*24*18, tr.Size())
	assert.True(t, tr.IsValid())
	assert.True(t, tr.IsConnected())
	assert.Equal(t, 0, tr.EulerChar())
	assert.Equal(t, 1, tr.CountBoundaryComponents())

	require.True(t, tr.Simplify())
	assert.False(t, tr.IsIdeal())
	assert.True(t, tr.IsValid())
	assert.Equal(t, 0, tr.EulerChar())
	assert.Equal(t, 1, tr.CountBoundaryComponents())
}
