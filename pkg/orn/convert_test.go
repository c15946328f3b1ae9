package orn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWiden_PreservesCaseAndValue(t *testing.T) {
	t.Parallel()

	w0 := Widen2To4[int, string, bool, float64](Or2Of0[int, string](7))
	assert.Equal(t, 0, w0.Index())
	v, ok := w0.Get0()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	w1 := Widen2To4[int, string, bool, float64](Or2Of1[int, string]("x"))
	assert.Equal(t, 1, w1.Index())
	s, ok := w1.Get1()
	require.True(t, ok)
	assert.Equal(t, "x", s)

	w := Widen1To8[int, int, int, int, int, int, int, int](Or1Of0[int](1))
	assert.Equal(t, 0, w.Index())
	assert.Equal(t, 8, w.Arity())
}

func TestNarrow_IsLeftInverseOfWiden(t *testing.T) {
	t.Parallel()

	for i := 0; i < 2; i++ {
		var o Or2[int, int]
		if i == 0 {
			o = Or2Of0[int, int](10)
		} else {
			o = Or2Of1[int, int](11)
		}

		wide := Widen2To5[int, int, int, int, int](o)
		back, ok := Narrow5To2(wide)
		require.True(t, ok, "indices below the target arity must narrow")
		assert.True(t, Or2Equal(o, back))
	}
}

func TestNarrow_FailsOutsideSharedRange(t *testing.T) {
	t.Parallel()

	o := Or3Of2[int, string, float64](2.5)

	_, ok := Narrow3To2(o)
	assert.False(t, ok)

	// The caller's value is untouched and fully recoverable.
	assert.Equal(t, 2, o.Index())
	f, stillThere := o.Get2()
	require.True(t, stillThere)
	assert.Equal(t, 2.5, f)
}

func TestNarrow_BoundaryIndex(t *testing.T) {
	t.Parallel()

	// Case J-1 is the last index that still narrows to arity J.
	edge := Or4Of2[int, int, int, int](3)
	got, ok := Narrow4To3(edge)
	require.True(t, ok)
	assert.Equal(t, 2, got.Index())

	_, ok = Narrow4To2(edge)
	assert.False(t, ok)
}

func TestWidenNarrow_ChainAcrossLattice(t *testing.T) {
	t.Parallel()

	start := Or2Of1[int, string]("v")
	wide := Widen3To6[int, string, bool, int, int, int](Widen2To3[int, string, bool](start))
	assert.Equal(t, 1, wide.Index())

	mid, ok := Narrow6To3(wide)
	require.True(t, ok)
	narrow, ok := Narrow3To2(mid)
	require.True(t, ok)
	assert.True(t, Or2Equal(start, narrow))
}
