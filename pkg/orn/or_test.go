package orn

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOr2_ConstructionAndAccessors(t *testing.T) {
	t.Parallel()

	a := Or2Of0[uint8, uint16](8)
	b := Or2Of1[uint8, uint16](16)

	assert.True(t, a.Is0())
	assert.False(t, a.Is1())
	assert.True(t, b.Is1())
	assert.False(t, b.Is0())

	v0, ok := a.Get0()
	require.True(t, ok)
	assert.Equal(t, uint8(8), v0)

	_, ok = a.Get1()
	assert.False(t, ok)

	v1, ok := b.Get1()
	require.True(t, ok)
	assert.Equal(t, uint16(16), v1)

	assert.Equal(t, 0, a.Index())
	assert.Equal(t, 1, b.Index())
	assert.Equal(t, 2, a.Arity())
	assert.Equal(t, Or2Arity, b.Arity())
}

// At/Is must agree with the named accessors for every index.
func TestOr3_IndexGenericAgreesWithNamed(t *testing.T) {
	t.Parallel()

	sums := []Or3[int, int, int]{
		Or3Of0[int, int, int](10),
		Or3Of1[int, int, int](11),
		Or3Of2[int, int, int](12),
	}

	for active, o := range sums {
		for i := 0; i < o.Arity(); i++ {
			assert.Equal(t, active == i, o.Is(i), "Is(%d) on case %d", i, active)

			v, ok := o.At(i)
			if active == i {
				require.True(t, ok)
				assert.Equal(t, 10+active, v)
			} else {
				assert.False(t, ok)
				assert.Nil(t, v)
			}
		}
	}

	named0, ok0 := sums[0].Get0()
	at0, okAt := sums[0].At(0)
	assert.Equal(t, ok0, okAt)
	assert.EqualValues(t, named0, at0)

	// Total over any int: out-of-range indices miss, they never panic.
	for _, i := range []int{-1, 3, 99} {
		assert.False(t, sums[0].Is(i), "Is(%d)", i)
		v, ok := sums[0].At(i)
		assert.False(t, ok, "At(%d)", i)
		assert.Nil(t, v, "At(%d)", i)
	}
}

func TestOr2_ZeroValueIsCaseZero(t *testing.T) {
	t.Parallel()

	var o Or2[int, string]
	assert.True(t, o.Is0())
	v, ok := o.Get0()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestOr2_RefAndDeref(t *testing.T) {
	t.Parallel()

	o := Or2Of1[int, string]("x")
	p := Or2Ref(&o)

	assert.Equal(t, 1, p.Index(), "Ref preserves the case")

	sp, ok := p.Get1()
	require.True(t, ok)
	*sp = "y"

	got, _ := o.Get1()
	assert.Equal(t, "y", got, "writes through Ref land in the original")

	back := Or2Deref(p)
	assert.Equal(t, 1, back.Index())
	v, _ := back.Get1()
	assert.Equal(t, "y", v)
}

func TestOr1_RefStacksToDeeperPointerSums(t *testing.T) {
	t.Parallel()

	o := Or1Of0[int](7)
	p := Or1Ref(&o)
	pp := Or1Ref(&p)

	inner, ok := pp.Get0()
	require.True(t, ok)
	**inner = 9

	v, _ := o.Get0()
	assert.Equal(t, 9, v)
}

func TestOr2_MapPositional(t *testing.T) {
	t.Parallel()

	hit := Or2Map0(Or2Of0[int, string](21), func(n int) int64 { return int64(n) * 2 })
	v, ok := hit.Get0()
	require.True(t, ok)
	assert.Equal(t, int64(42), v)

	miss := Or2Map0(Or2Of1[int, string]("keep"), func(n int) int64 { return int64(n) })
	assert.True(t, miss.Is1(), "non-target case passes through")
	s, _ := miss.Get1()
	assert.Equal(t, "keep", s)
}

func TestOr3_Converge(t *testing.T) {
	t.Parallel()

	o := Or3Of1[int, float64, string](2.5)
	got := Or3Converge(o,
		func(n int) string { return fmt.Sprint(n) },
		func(f float64) string { return fmt.Sprint(f) },
		func(s string) string { return s },
	)
	assert.Equal(t, "2.5", got)
}

func TestOr2_HomogeneousInnerAndMap(t *testing.T) {
	t.Parallel()

	o := Or2Of1[int, int](100)
	assert.Equal(t, 100, Or2Inner(o))

	m := Or2MapInner(o, func(n int) int { return n + 1 })
	assert.Equal(t, 1, m.Index(), "map preserves the active case")
	assert.Equal(t, 101, Or2Inner(m))

	w := Or2MapInnerWith(o, 10, func(s, n int) int { return s * n })
	assert.Equal(t, 1000, Or2Inner(w))
	assert.Equal(t, o.Index(), w.Index())
}

func TestOr2_EqualAndCompare(t *testing.T) {
	t.Parallel()

	assert.True(t, Or2Equal(Or2Of0[int, string](1), Or2Of0[int, string](1)))
	assert.False(t, Or2Equal(Or2Of0[int, string](1), Or2Of0[int, string](2)))

	// == works too when the type arguments are comparable.
	assert.True(t, Or2Of1[int, string]("a") == Or2Of1[int, string]("a"))

	assert.Equal(t, 0, Or2Compare(Or2Of0[int, int](5), Or2Of0[int, int](5)))
	assert.Equal(t, -1, Or2Compare(Or2Of0[int, int](9), Or2Of1[int, int](0)),
		"case index orders before value")
	assert.Equal(t, 1, Or2Compare(Or2Of0[int, int](9), Or2Of0[int, int](3)))
}

func TestOr2_UsableAsMapKey(t *testing.T) {
	t.Parallel()

	seen := map[Or2[int, string]]bool{}
	seen[Or2Of0[int, string](1)] = true
	seen[Or2Of1[int, string]("1")] = true
	assert.Len(t, seen, 2)
	assert.True(t, seen[Or2Of0[int, string](1)])
}

type temp float64

func (c temp) String() string { return fmt.Sprintf("%.1f°", float64(c)) }

func TestOr2_StringDelegatesToValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", Or2Of0[int, string](42).String())
	assert.Equal(t, "hi", Or2Of1[int, string]("hi").String())
	assert.Equal(t, "21.5°", Or2Of0[temp, int](21.5).String(),
		"a Stringer value formats itself")
	assert.Equal(t, "42", fmt.Sprintf("%v", Or2Of0[int, string](42)))
}

func TestOr2_ErrReturnsActiveError(t *testing.T) {
	t.Parallel()

	first := errors.New("disk full")
	o := Or2Of0[error, error](first)

	err := Or2Err(o)
	require.Error(t, err)
	assert.Equal(t, "disk full", err.Error(), "error sums show the active error's own text")
	assert.True(t, errors.Is(err, first))
}

func TestOr8_HighArityRoundTrip(t *testing.T) {
	t.Parallel()

	o := Or8Of7[int, int, int, int, int, int, int, string]("last")
	assert.Equal(t, 7, o.Index())
	assert.Equal(t, 8, o.Arity())
	assert.True(t, o.Is7())

	v, ok := o.Get7()
	require.True(t, ok)
	assert.Equal(t, "last", v)

	for i := 0; i < 7; i++ {
		assert.False(t, o.Is(i))
	}
}

func TestOr0_HasNoCases(t *testing.T) {
	t.Parallel()

	var o Or0
	assert.Equal(t, 0, o.Arity())
	assert.Panics(t, func() { _ = o.Index() })
}
