package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/orn/pkg/orn"
	"github.com/ib-77/orn/pkg/orn/future"
	"github.com/ib-77/orn/pkg/orn/par"
	"github.com/ib-77/orn/pkg/orn/seq"
)

// A lookup result is either a record id or a human-readable miss reason.
type lookup = orn.Or2[uuid.UUID, string]

func TestLookupFlow_AcrossTheWholeSurface(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	hit := orn.Or2Of0[uuid.UUID, string](id)
	miss := orn.Or2Of1[uuid.UUID, string]("not found")

	// Display delegates to the contained value.
	assert.Equal(t, id.String(), hit.String())
	assert.Equal(t, "not found", miss.String())

	// Widen into a sum that also admits an error code, then narrow back.
	wide := orn.Widen2To3[uuid.UUID, string, int](hit)
	require.Equal(t, 0, wide.Index())
	back, ok := orn.Narrow3To2(wide)
	require.True(t, ok)
	got, _ := back.Get0()
	assert.Equal(t, id, got)

	// JSON stays untagged: a hit serializes as the bare uuid string.
	data, err := json.Marshal(hit)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%q", id.String()), string(data))

	var decoded lookup
	require.NoError(t, json.Unmarshal(data, &decoded))
	v, uok := decoded.Get0()
	if uok {
		assert.Equal(t, id, v)
	} else {
		// A uuid is also a valid string; position order decides, and
		// uuid.UUID sits at position 0, so this must not happen.
		t.Fatalf("uuid payload decoded as case %d", decoded.Index())
	}
}

func TestTupleRows_SortRebuildAndIterate(t *testing.T) {
	t.Parallel()

	rows := orn.Or3FromTuple(orn.Tuple3[int, string, float64]{V0: 1, V1: "two", V2: 3.0})
	rows[0], rows[2] = rows[2], rows[0]

	_, ok := orn.Or3IntoTuple(rows)
	require.False(t, ok)

	orn.SortByIndex(rows[:])
	tp, ok := orn.Or3IntoTuple(rows)
	require.True(t, ok)
	assert.Equal(t, 1, tp.V0)
	assert.Equal(t, "two", tp.V1)
	assert.Equal(t, 3.0, tp.V2)
}

func TestAdapters_ComposeOverOneSum(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	o := orn.Or2Of0[[]int, []string]([]int{1, 2, 3})

	// Sequential view.
	total := 0
	for item := range seq.Slice2(o) {
		n, _ := item.Get0()
		total += n
	}
	assert.Equal(t, 6, total)
	assert.Equal(t, 3, seq.Len2(o))

	// Parallel view over the same value.
	out, err := par.Collect2(ctx, o, 2,
		func(_ context.Context, n int) (string, error) { return fmt.Sprint(n * 2), nil },
		func(_ context.Context, s string) (string, error) { return s, nil },
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4", "6"}, out)

	// Awaitable view: whichever case is active decides the channel.
	ch := make(chan int, 1)
	ch <- 99
	fut := orn.Or2Of0[<-chan int, <-chan string](ch)
	res, err := future.Await2(ctx, fut)
	require.NoError(t, err)
	assert.True(t, res.Is0())
	n, _ := res.Get0()
	assert.Equal(t, 99, n)
}

func TestErrorSum_FormatsAsTheUnderlyingError(t *testing.T) {
	t.Parallel()

	parseErr := fmt.Errorf("parse: unexpected token")
	ioErr := fmt.Errorf("io: short read")

	failure := orn.Or2Of0[error, error](parseErr)
	assert.EqualError(t, orn.Or2Err(failure), "parse: unexpected token")

	other := orn.Or2Of1[error, error](ioErr)
	assert.EqualError(t, orn.Or2Err(other), "io: short read")
}
