package future

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/orn/pkg/orn"
)

func TestAwait2_ReceivesFromTheActiveChannel(t *testing.T) {
	t.Parallel()

	ch := make(chan int, 1)
	ch <- 7

	o := orn.Or2Of0[<-chan int, <-chan string](ch)

	got, err := Await2(context.Background(), o)
	require.NoError(t, err)
	assert.True(t, got.Is0())
	n, _ := got.Get0()
	assert.Equal(t, 7, n)
}

func TestAwait2_SecondCase(t *testing.T) {
	t.Parallel()

	ch := make(chan string)
	go func() {
		time.Sleep(10 * time.Millisecond)
		ch <- "late"
	}()

	o := orn.Or2Of1[<-chan int, <-chan string](ch)

	got, err := Await2(context.Background(), o)
	require.NoError(t, err)
	assert.True(t, got.Is1())
	s, _ := got.Get1()
	assert.Equal(t, "late", s)
}

func TestAwait2_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := orn.Or2Of0[<-chan int, <-chan string](make(chan int))

	_, err := Await2(ctx, o)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAwait2_ClosedChannel(t *testing.T) {
	t.Parallel()

	ch := make(chan int)
	close(ch)

	o := orn.Or2Of0[<-chan int, <-chan string](ch)

	_, err := Await2(context.Background(), o)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestAwait3_TagsByCase(t *testing.T) {
	t.Parallel()

	ch := make(chan float64, 1)
	ch <- 2.5

	o := orn.Or3Of2[<-chan int, <-chan string, <-chan float64](ch)

	got, err := Await3(context.Background(), o)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Index())
	f, _ := got.Get2()
	assert.Equal(t, 2.5, f)
}
