package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/s1fibre/bfs"
)

// edgeGraph is a multigraph given by an edge list; edge i runs ends[i][0] -> ends[i][1].
type edgeGraph struct {
	n    int
	ends [][2]int
}

func (g edgeGraph) NumVertices() int { return g.n }

func (g edgeGraph) Arcs(v int) []bfs.Arc {
	var out []bfs.Arc
	for i, e := range g.ends {
		if e[0] == v {
			out = append(out, bfs.Arc{Edge: i, To: e[1], Forward: true})
		}
		if e[1] == v {
			out = append(out, bfs.Arc{Edge: i, To: e[0], Forward: false})
		}
	}

	return out
}

// square is the 4-cycle 0-1-2-3-0 with a loop at 2.
var square = edgeGraph{n: 4, ends: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {2, 2}}}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.BFS(square, 7)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(square, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	_, err = bfs.BFS(edgeGraph{n: 1, ends: [][2]int{{0, 5}}}, 0)
	assert.ErrorIs(t, err, bfs.ErrBadArc)
}

func TestBFS_CycleDepthsAndArcs(t *testing.T) {
	res, err := bfs.BFS(square, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 1}, res.Depth)
	assert.Equal(t, -1, res.Parent[0])
	// vertex 3 is reached backwards along edge 3 (3 -> 0)
	assert.Equal(t, bfs.Arc{Edge: 3, To: 3, Forward: false}, res.Via[3])

	path, err := res.PathTo(2)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, 2, path[1].To)
}

func TestBFS_HooksAndLimits(t *testing.T) {
	var tree []int
	res, err := bfs.BFS(square, 0,
		bfs.WithMaxDepth(1),
		bfs.WithOnTreeArc(func(_ int, a bfs.Arc) { tree = append(tree, a.Edge) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, res.Order)
	assert.Equal(t, []int{0, 3}, tree)
	assert.False(t, res.Reached(2))
	_, err = res.PathTo(2)
	assert.Error(t, err)

	boom := errors.New("stop")
	_, err = bfs.BFS(square, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(square, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_FilterAndComponents(t *testing.T) {
	// drop edge 0 and edge 3: vertex 0 becomes isolated
	res, err := bfs.BFS(square, 0, bfs.WithFilterArc(func(_ int, a bfs.Arc) bool {
		return a.Edge != 0 && a.Edge != 3
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)

	g := edgeGraph{n: 5, ends: [][2]int{{0, 1}, {3, 4}}}
	label, count, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, []int{0, 0, 1, 2, 2}, label)
}
