package orn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOr2_FromTupleRoundTrip(t *testing.T) {
	t.Parallel()

	rows := Or2FromTuple(Tuple2[uint8, uint16]{V0: 8, V1: 16})

	require.True(t, rows[0].Is0())
	require.True(t, rows[1].Is1())

	v0, _ := rows[0].Get0()
	v1, _ := rows[1].Get1()
	assert.Equal(t, uint8(8), v0)
	assert.Equal(t, uint16(16), v1)

	back, ok := Or2IntoTuple(rows)
	require.True(t, ok)
	assert.Equal(t, Tuple2[uint8, uint16]{V0: 8, V1: 16}, back)
}

func TestOr2_ScrambledRowsNeedSorting(t *testing.T) {
	t.Parallel()

	rows := Or2FromTuple(Tuple2[uint8, uint16]{V0: 8, V1: 16})
	rows[0], rows[1] = rows[1], rows[0]

	_, ok := Or2IntoTuple(rows)
	assert.False(t, ok, "out-of-order rows must not rebuild")
	assert.True(t, rows[0].Is1(), "failure leaves the caller's rows untouched")

	sorted := rows[:]
	SortByIndex(sorted)

	back, ok := Or2IntoTuple([2]Or2[uint8, uint16](sorted))
	require.True(t, ok)
	assert.Equal(t, Tuple2[uint8, uint16]{V0: 8, V1: 16}, back)
}

func TestOr2_DuplicateCaseFailsRebuild(t *testing.T) {
	t.Parallel()

	rows := [2]Or2[int, int]{
		Or2Of1[int, int](100),
		Or2Of1[int, int](200),
	}

	_, ok := Or2IntoTuple(rows)
	assert.False(t, ok, "case 0 never appears, rebuild must fail")

	// Sorting cannot rescue a duplicated case either.
	s := rows[:]
	SortByIndex(s)
	_, ok = Or2IntoTuple([2]Or2[int, int](s))
	assert.False(t, ok)
}

func TestOr4_FromTupleEveryRowActiveAtItsPosition(t *testing.T) {
	t.Parallel()

	rows := Or4FromTuple(Tuple4[int, int, int, int]{V0: 0, V1: 1, V2: 2, V3: 3})
	for i, r := range rows {
		assert.Equal(t, i, r.Index())
		v, ok := r.At(i)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	back, ok := Or4IntoTuple(rows)
	require.True(t, ok)
	for i := 0; i < back.Arity(); i++ {
		assert.Equal(t, i, back.At(i))
	}
}

func TestTuple3_AtAndPtr(t *testing.T) {
	t.Parallel()

	tp := Tuple3[int, string, bool]{V0: 1, V1: "two", V2: true}
	assert.Equal(t, 3, tp.Arity())
	assert.Equal(t, 1, tp.At(0))
	assert.Equal(t, "two", tp.At(1))
	assert.Equal(t, true, tp.At(2))
	assert.Panics(t, func() { tp.At(3) })

	sp, ok := tp.Ptr(1).(*string)
	require.True(t, ok)
	*sp = "deux"
	assert.Equal(t, "deux", tp.V1)
	assert.Panics(t, func() { tp.Ptr(-1) })
}

func TestSortByIndex_StableOnEqualCases(t *testing.T) {
	t.Parallel()

	rows := []Or2[int, int]{
		Or2Of1[int, int](1),
		Or2Of0[int, int](2),
		Or2Of1[int, int](3),
		Or2Of0[int, int](4),
	}
	SortByIndex(rows)

	assert.Equal(t, []int{0, 0, 1, 1}, []int{
		rows[0].Index(), rows[1].Index(), rows[2].Index(), rows[3].Index(),
	})
	assert.Equal(t, 2, Or2Inner(rows[0]))
	assert.Equal(t, 4, Or2Inner(rows[1]))
	assert.Equal(t, 1, Or2Inner(rows[2]))
	assert.Equal(t, 3, Or2Inner(rows[3]))
}
