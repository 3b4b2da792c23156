// SPDX-License-Identifier: MIT

package fibre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/s1fibre/builder"
)

func TestHasParallel(t *testing.T) {
	tr, c0, err := builder.ProductWithCircle(builder.SphereComplex(2))
	require.NoError(t, err)
	m, err := New(tr)
	require.NoError(t, err)
	gen := FromInts(c0)
	zero := NewCochain(len(c0))

	levels, loops := 0, 0
	for i, e := range m.t.Faces(1) {
		switch {
		case e.Vertex(0) == e.Vertex(1):
			// the circle direction: one loop per vertex
			loops++
			assert.False(t, m.hasParallel(i, gen, true), "edge %d", i)
		case c0[i] == 0:
			// a level edge shares its ends with a diagonal that rises by one
			levels++
			assert.True(t, m.hasParallel(i, gen, true), "edge %d", i)
			assert.False(t, m.hasParallel(i, gen, false), "edge %d", i)
			assert.True(t, m.hasParallel(i, zero, false), "edge %d", i)
		default:
			assert.True(t, m.hasParallel(i, gen, true), "edge %d", i)
			assert.False(t, m.hasParallel(i, gen, false), "edge %d", i)
		}
	}
	assert.Equal(t, 4, loops)
	assert.Equal(t, 6, levels)
}

func TestCondition_Errors(t *testing.T) {
	s3, err := builder.SphereBoundary(3)
	require.NoError(t, err)
	m, err := New(s3)
	require.NoError(t, err)
	_, err = m.condition(nil, zap.NewNop())
	assert.ErrorIs(t, err, ErrConditioning, "S3 has no first cohomology")

	// loop edges of L(3,1) read 0 under every cocycle of the union
	u, _, err := builder.ProductWithCircle(builder.SphereComplex(2))
	require.NoError(t, err)
	lens, err := builder.LensL31()
	require.NoError(t, err)
	_, err = u.InsertTriangulation(lens)
	require.NoError(t, err)
	m, err = New(u)
	require.NoError(t, err)
	core, logs := observer.New(zap.DebugLevel)
	_, err = m.condition(nil, zap.New(core))
	assert.ErrorIs(t, err, ErrNullLoop)
	assert.Equal(t, 1, logs.FilterMessage("relaxing parallel edge rule").Len())
}

func TestCondition_RelaxedCollapses(t *testing.T) {
	tr, _, err := builder.ProductWithCircle(builder.SphereComplex(2))
	require.NoError(t, err)
	m, err := New(tr)
	require.NoError(t, err)
	before := m.t.Size()

	core, logs := observer.New(zap.DebugLevel)
	gen, err := m.condition(nil, zap.New(core))
	if err != nil {
		// collapsing down to one vertex can leave a loop that the class misses
		assert.ErrorIs(t, err, ErrNullLoop)
		return
	}
	require.Len(t, gen, m.t.CountEdges())
	assert.True(t, m.isCocycle(gen))
	assert.Zero(t, logs.FilterMessage("collapsed edge").FilterField(zap.Bool("strict", true)).Len())
	collapsed := logs.FilterMessage("collapsed edge").Len()
	assert.Equal(t, collapsed > 0, m.t.Size() < before)
	assert.True(t, m.t.IsValid())
	assert.Equal(t, 0, m.t.EulerChar())
}

func TestAfterConditioning_SingleVertex(t *testing.T) {
	lst, err := builder.LayeredSolidTorus()
	require.NoError(t, err)
	core, logs := observer.New(zap.DebugLevel)
	m, err := New(lst, WithLogger(zap.New(core)))
	require.NoError(t, err)
	gen, rank, err := m.generator()
	require.NoError(t, err)
	require.Equal(t, 1, rank)

	twice := gen.Clone()
	for _, v := range twice {
		v.Add(v, v)
	}
	status, c, err := m.afterConditioning(twice, m.cfg.log)
	require.NoError(t, err)
	assert.Equal(t, SingleVertex, status)
	assert.Nil(t, c)
	assert.Equal(t, 1, logs.FilterMessage("bundle search").Len())

	status, c, err = m.afterConditioning(gen, m.cfg.log)
	require.NoError(t, err)
	assert.Equal(t, Success, status)
	assert.True(t, m.VerifySimpleBundle(c))
}

func TestCondition_DividesNullLoops(t *testing.T) {
	u, _, err := builder.ProductWithCircle(builder.SphereComplex(2))
	require.NoError(t, err)
	lens, err := builder.LensL31()
	require.NoError(t, err)
	_, err = u.InsertTriangulation(lens)
	require.NoError(t, err)
	m, err := New(u)
	require.NoError(t, err)

	gen, _, err := m.generator()
	require.NoError(t, err)
	bad := m.nullLoops(gen)
	require.NotEmpty(t, bad)
	size := m.t.Size()

	core, logs := observer.New(zap.DebugLevel)
	_, _ = m.condition(bad, zap.New(core))
	divided := logs.FilterMessage("divided null loops").All()
	require.Len(t, divided, 1)
	assert.Len(t, divided[0].ContextMap()["edges"], len(bad))
	assert.Greater(t, divided[0].ContextMap()["simplices"], int64(size))
}
