package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/s1fibre/perm"
)

func TestPerm_InverseAndCompose(t *testing.T) {
	p := perm.New(1, 2, 3, 0)
	q := p.Inverse()
	assert.Equal(t, perm.Identity(), p.Compose(q))
	assert.Equal(t, perm.Identity(), q.Compose(p))
	// p∘q means q first
	r := perm.New(1, 0)
	assert.Equal(t, 2, p.Compose(r).At(0)) // r sends 0->1, p sends 1->2
	assert.Equal(t, 3, p.PreImageOf(0))
}

func TestPerm_Sign(t *testing.T) {
	assert.Equal(t, 1, perm.Identity().Sign())
	assert.Equal(t, -1, perm.Transposition(0, 3).Sign())
	assert.Equal(t, 1, perm.New(1, 2, 0).Sign())     // 3-cycle
	assert.Equal(t, -1, perm.New(1, 2, 3, 0).Sign()) // 4-cycle
	assert.Equal(t, 1, perm.New(1, 2, 3, 4, 0).Sign())
}

func TestPerm_AllAndIndex(t *testing.T) {
	for n := 1; n <= perm.MaxSize; n++ {
		all := perm.All(n)
		want := 1
		for k := 2; k <= n; k++ {
			want *= k
		}
		require.Len(t, all, want)
		for i, p := range all {
			assert.Equal(t, i, p.Index(n), "perm %s", p.String(n))
		}
	}
	assert.Equal(t, -1, perm.Transposition(2, 4).Index(3))
}

func TestPerm_FromSlice(t *testing.T) {
	p, err := perm.FromSlice([]int{0, 2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, "0231", p.String(4))

	_, err = perm.FromSlice([]int{0, 0, 1})
	assert.ErrorIs(t, err, perm.ErrInvalid)
	_, err = perm.FromSlice([]int{7})
	assert.ErrorIs(t, err, perm.ErrInvalid)
}
