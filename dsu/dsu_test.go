package dsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/s1fibre/dsu"
)

func TestDSU_UnionFind(t *testing.T) {
	d := dsu.New(5)
	assert.Equal(t, 5, d.Sets())
	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(2, 3))
	assert.False(t, d.Union(1, 0))
	assert.True(t, d.Same(0, 1))
	assert.False(t, d.Same(1, 2))
	assert.Equal(t, 3, d.Sets())
}

func TestDSU_InsertDetectsCycles(t *testing.T) {
	d := dsu.New(4)
	assert.True(t, d.Insert(0, 1))
	assert.True(t, d.Insert(1, 2))
	assert.False(t, d.Insert(2, 0), "triangle closes a cycle")
	assert.False(t, d.Insert(3, 3), "a loop is a cycle")
	assert.Equal(t, 2, d.Sets())
}
