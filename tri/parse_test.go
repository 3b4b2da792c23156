package tri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/s1fibre/builder"
	"github.com/katalvlaran/s1fibre/tri"
)

func TestParse_LayeredSolidTorus(t *testing.T) {
	src := `
# one tetrahedron, facet 0 glued to facet 1
dim 3 size 1
glue 0 0 0 (1 2 3 0)
`
	tr, err := tri.Parse(src)
	require.NoError(t, err)
	lst, err := builder.LayeredSolidTorus()
	require.NoError(t, err)
	assert.True(t, tr.IsIdenticalTo(lst))
	assert.Equal(t, "dim 3 size 1\nglue 0 0 0 (1 2 3 0)\n", tr.String())
}

func TestParse_RoundTrip(t *testing.T) {
	lens, err := builder.LensL31()
	require.NoError(t, err)
	back, err := tri.Parse(lens.String())
	require.NoError(t, err)
	assert.True(t, back.IsIdenticalTo(lens))

	prod, _, err := builder.ProductWithCircle(builder.Torus7())
	require.NoError(t, err)
	back, err = tri.Parse(prod.String())
	require.NoError(t, err)
	assert.True(t, back.IsIdenticalTo(prod))
}

func TestParse_BothSidesListed(t *testing.T) {
	tr, err := tri.Parse("dim 2 size 2\nglue 0 0 1 (0 1 2)\nglue 1 0 0 (0 1 2)\n")
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Adjacent(0, 0))
	assert.Equal(t, 4, tr.CountBoundaryFacets())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"syntax":      {"dim three", tri.ErrSyntax},
		"dimension":   {"dim 7 size 1", tri.ErrBadDimension},
		"arity":       {"dim 2 size 1\nglue 0 0 0 (1 0)", tri.ErrSyntax},
		"bad perm":    {"dim 2 size 2\nglue 0 0 1 (0 0 2)", tri.ErrSyntax},
		"range":       {"dim 2 size 1\nglue 0 0 3 (0 1 2)", tri.ErrOutOfRange},
		"self facet":  {"dim 2 size 1\nglue 0 0 0 (0 2 1)", tri.ErrBadGluing},
		"conflicting": {"dim 2 size 2\nglue 0 0 1 (0 1 2)\nglue 0 0 1 (0 2 1)", tri.ErrFacetGlued},
		"huge size":   {"dim 3 size 4000000000\nglue 0 0 1 (1 0 2 3)", tri.ErrTooLarge},
		"overflow":    {"dim 3 size 99999999999999999999999", tri.ErrSyntax},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tri.Parse(tc.src)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
