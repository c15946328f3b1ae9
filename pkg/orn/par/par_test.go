package par

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/orn/pkg/orn"
)

func TestEach2_RunsOnlyTheActiveWorker(t *testing.T) {
	t.Parallel()

	var sum atomic.Int64
	var wrong atomic.Bool

	o := orn.Or2Of0[[]int, []string]([]int{1, 2, 3, 4})

	err := Each2(context.Background(), o, 2,
		func(_ context.Context, n int) error {
			sum.Add(int64(n))
			return nil
		},
		func(_ context.Context, _ string) error {
			wrong.Store(true)
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(10), sum.Load())
	assert.False(t, wrong.Load(), "the inactive worker never runs")
}

func TestEach2_FirstErrorWins(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	o := orn.Or2Of1[[]int, []string]([]string{"a", "b", "c"})

	err := Each2(context.Background(), o, 1,
		func(_ context.Context, _ int) error { return nil },
		func(_ context.Context, s string) error {
			if s == "b" {
				return boom
			}
			return nil
		},
	)
	assert.ErrorIs(t, err, boom)
}

func TestCollect2_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	o := orn.Or2Of0[[]int, []string]([]int{3, 1, 2})

	out, err := Collect2(context.Background(), o, 3,
		func(_ context.Context, n int) (int, error) { return n * 10, nil },
		func(_ context.Context, s string) (int, error) { return len(s), nil },
	)
	require.NoError(t, err)
	assert.Equal(t, []int{30, 10, 20}, out)
}

func TestCollect2_ErrorDiscardsResults(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	o := orn.Or2Of0[[]int, []string]([]int{1, 2})

	out, err := Collect2(context.Background(), o, 0,
		func(_ context.Context, n int) (int, error) {
			if n == 2 {
				return 0, boom
			}
			return n, nil
		},
		func(_ context.Context, s string) (int, error) { return len(s), nil },
	)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
}

func TestDrain2_EmptiesTheActiveSlice(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3}
	var sum atomic.Int64

	p := orn.Or2Of0[*[]int, *[]string](&items)

	err := Drain2(context.Background(), p, 2,
		func(_ context.Context, n int) error {
			sum.Add(int64(n))
			return nil
		},
		func(_ context.Context, _ string) error { return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, int64(6), sum.Load())
	assert.Empty(t, items, "length truncated through the pointer")
}

func TestDrain2_ErrorLeavesSliceIntact(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3}
	boom := errors.New("boom")
	p := orn.Or2Of0[*[]int, *[]string](&items)

	err := Drain2(context.Background(), p, 1,
		func(_ context.Context, n int) error {
			if n == 3 {
				return boom
			}
			return nil
		},
		func(_ context.Context, _ string) error { return nil },
	)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, items, 3)
}
