package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTestAndCount(t *testing.T) {
	b := New(130)
	assert.True(t, b.None())

	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(129)

	assert.True(t, b.Test(0))
	assert.True(t, b.Test(63))
	assert.True(t, b.Test(64))
	assert.True(t, b.Test(129))
	assert.False(t, b.Test(1))
	assert.Equal(t, 4, b.Count())
	assert.True(t, b.Any())
}

func TestSetAlgebra(t *testing.T) {
	a := New(100)
	b := New(100)
	a.Set(3)
	a.Set(70)
	b.Set(70)
	b.Set(99)

	union := a.Clone()
	union.Or(b)
	assert.Equal(t, 3, union.Count())

	inter := a.Clone()
	inter.And(b)
	assert.Equal(t, 1, inter.Count())
	assert.True(t, inter.Test(70))

	diff := a.Clone()
	diff.AndNot(b)
	assert.True(t, diff.Test(3))
	assert.False(t, diff.Test(70))
	assert.Equal(t, 1, diff.Count())
}

func TestIntersectsAndSubset(t *testing.T) {
	a := New(64)
	b := New(64)
	a.Set(10)
	a.Set(20)
	b.Set(10)
	b.Set(20)
	b.Set(30)

	assert.True(t, a.Intersects(b))
	assert.True(t, a.SubsetOf(b))
	assert.False(t, b.SubsetOf(a))

	c := New(64)
	c.Set(40)
	assert.False(t, a.Intersects(c))
	// The empty set is a subset of everything.
	assert.True(t, New(64).SubsetOf(a))
}

func TestNextSetScansInOrder(t *testing.T) {
	b := New(200)
	want := []int{5, 63, 64, 128, 199}
	for _, i := range want {
		b.Set(i)
	}

	var got []int
	for pos, ok := b.NextSet(0); ok; pos, ok = b.NextSet(pos + 1) {
		got = append(got, pos)
	}
	assert.Equal(t, want, got)

	_, ok := b.NextSet(200)
	assert.False(t, ok)
}

func TestEqualAndClearAll(t *testing.T) {
	a := New(80)
	b := New(80)
	a.Set(42)
	require.False(t, a.Equal(b))

	b.Set(42)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(New(81)))

	a.ClearAll()
	assert.True(t, a.None())
	assert.Equal(t, 80, a.Len())
}

func TestCloneIsIndependent(t *testing.T) {
	a := New(64)
	a.Set(1)
	cp := a.Clone()
	cp.Set(2)

	assert.True(t, cp.Test(1))
	assert.False(t, a.Test(2))
}
