package seq

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/orn/pkg/orn"
)

func ints(vs ...int) iter.Seq[int] {
	return slices.Values(vs)
}

func TestOf2_TagsElementsWithTheActiveCase(t *testing.T) {
	t.Parallel()

	o := orn.Or2Of0[iter.Seq[int], iter.Seq[string]](ints(1, 2, 3))

	sum := 0
	for item := range Of2(o) {
		require.True(t, item.Is0())
		n, _ := item.Get0()
		sum += n
	}
	assert.Equal(t, 6, sum)
}

func TestOf2_OtherCase(t *testing.T) {
	t.Parallel()

	o := orn.Or2Of1[iter.Seq[int], iter.Seq[string]](slices.Values([]string{"a", "b"}))

	var got []string
	for item := range Of2(o) {
		require.True(t, item.Is1())
		s, _ := item.Get1()
		got = append(got, s)
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSlice2_ForwardAndBackward(t *testing.T) {
	t.Parallel()

	o := orn.Or2Of0[[]int, []int]([]int{1, 2, 3})

	var fwd, bwd []int
	for item := range Slice2(o) {
		fwd = append(fwd, orn.Or2Inner(item))
	}
	for item := range Backward2(o) {
		bwd = append(bwd, orn.Or2Inner(item))
	}

	assert.Equal(t, []int{1, 2, 3}, fwd)
	assert.Equal(t, []int{3, 2, 1}, bwd)
	assert.Equal(t, 3, Len2(o))
}

func TestSlice3_EarlyBreak(t *testing.T) {
	t.Parallel()

	o := orn.Or3Of2[[]int, []int, []int]([]int{10, 20, 30, 40})

	taken := 0
	for range Slice3(o) {
		taken++
		if taken == 2 {
			break
		}
	}
	assert.Equal(t, 2, taken)
}

func TestExtend2_AppendsToTheActiveSlice(t *testing.T) {
	t.Parallel()

	a := Extend2(orn.Or2Of0[[]int, []int]([]int{1}), 2, 3)
	require.True(t, a.Is0())
	assert.Equal(t, []int{1, 2, 3}, orn.Or2Inner(a))

	b := Extend2(orn.Or2Of1[[]int, []int](nil), 9)
	require.True(t, b.Is1(), "extension preserves the case")
	assert.Equal(t, []int{9}, orn.Or2Inner(b))
}

func TestOf1_SingleCase(t *testing.T) {
	t.Parallel()

	total := 0
	for item := range Of1(orn.Or1Of0[iter.Seq[int]](ints(5, 7))) {
		total += orn.Or1Inner(item)
	}
	assert.Equal(t, 12, total)
}
