package dim1_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/s1fibre/dim1"
)

// chain appends n edges glued end to end and returns the first and last.
func chain(t *testing.T, c *dim1.Complex, n int) (int, int) {
	t.Helper()
	first, err := c.NewEdge(dim1.Free, dim1.Free)
	require.NoError(t, err)
	last := first
	for i := 1; i < n; i++ {
		last, err = c.NewEdge(dim1.End{Edge: last, Slot: 1}, dim1.Free)
		require.NoError(t, err)
	}

	return first, last
}

func TestComplex_CirclesAndIntervals(t *testing.T) {
	c := dim1.New(0)
	circles, intervals := c.ComponentTypes()
	assert.Zero(t, circles)
	assert.Zero(t, intervals)

	first, last := chain(t, c, 5)
	require.NoError(t, c.JoinEdges(last, 1, first, 0))
	chain(t, c, 3)
	loop, err := c.NewEdge(dim1.Free, dim1.Free)
	require.NoError(t, err)
	require.NoError(t, c.JoinEdges(loop, 0, loop, 1))

	assert.Equal(t, 9, c.Len())
	circles, intervals = c.ComponentTypes()
	assert.Equal(t, 2, circles)
	assert.Equal(t, 1, intervals)
	assert.Equal(t, 2, c.FreeEnds())

	ends, err := c.Ends(loop)
	require.NoError(t, err)
	assert.Equal(t, dim1.End{Edge: loop, Slot: 1}, ends[0])
	assert.Equal(t, dim1.End{Edge: loop, Slot: 0}, ends[1])
}

func TestComplex_GluingFailuresDoNotMutate(t *testing.T) {
	c := dim1.New(4)
	a, err := c.NewEdge(dim1.Free, dim1.Free)
	require.NoError(t, err)
	b, err := c.NewEdge(dim1.End{Edge: a, Slot: 0}, dim1.Free)
	require.NoError(t, err)

	// slot a.0 is taken by b.0
	_, err = c.NewEdge(dim1.End{Edge: a, Slot: 0}, dim1.Free)
	assert.ErrorIs(t, err, dim1.ErrSlotOccupied)
	_, err = c.NewEdge(dim1.End{Edge: a, Slot: 1}, dim1.End{Edge: a, Slot: 1})
	assert.ErrorIs(t, err, dim1.ErrSlotOccupied)
	_, err = c.NewEdge(dim1.End{Edge: 7, Slot: 0}, dim1.Free)
	assert.ErrorIs(t, err, dim1.ErrOutOfRange)
	assert.Equal(t, 2, c.Len())

	assert.ErrorIs(t, c.JoinEdges(a, 0, b, 1), dim1.ErrSlotOccupied)
	assert.ErrorIs(t, c.JoinEdges(a, 1, a, 1), dim1.ErrSlotOccupied)
	assert.ErrorIs(t, c.JoinEdges(a, 2, b, 1), dim1.ErrOutOfRange)
	assert.ErrorIs(t, c.JoinEdges(-1, 0, b, 1), dim1.ErrOutOfRange)

	// re-joining an existing gluing is a no-op
	assert.NoError(t, c.JoinEdges(b, 0, a, 0))
	assert.Equal(t, "0: 1.0 -\n1: 0.0 -\n", c.String())

	require.NoError(t, c.JoinEdges(a, 1, b, 1))
	circles, intervals := c.ComponentTypes()
	assert.Equal(t, 1, circles)
	assert.Zero(t, intervals)
}

func TestComplex_TypesInvariantUnderRelabelling(t *testing.T) {
	// two circles (4 and 2 edges) and two intervals (3 and 1 edges)
	type glue struct{ e0, s0, e1, s1 int }
	n := 10
	glues := []glue{
		{0, 1, 1, 0}, {1, 1, 2, 0}, {2, 1, 3, 0}, {3, 1, 0, 0},
		{4, 1, 5, 0}, {5, 1, 4, 0},
		{6, 1, 7, 0}, {7, 1, 8, 0},
	}
	build := func(relabel []int) *dim1.Complex {
		c := dim1.New(n)
		for i := 0; i < n; i++ {
			_, err := c.NewEdge(dim1.Free, dim1.Free)
			require.NoError(t, err)
		}
		for _, g := range glues {
			require.NoError(t, c.JoinEdges(relabel[g.e0], g.s0, relabel[g.e1], g.s1))
		}

		return c
	}

	identity := make([]int, n)
	for i := range identity {
		identity[i] = i
	}
	wantC, wantI := build(identity).ComponentTypes()
	assert.Equal(t, 2, wantC)
	assert.Equal(t, 2, wantI)

	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		gotC, gotI := build(rng.Perm(n)).ComponentTypes()
		assert.Equal(t, wantC, gotC)
		assert.Equal(t, wantI, gotI)
	}
}
