package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitOr_CoversTheArity(t *testing.T) {
	t.Parallel()

	src := emitOr(2)

	for _, decl := range []string{
		"type Or2[T0, T1 any] struct {",
		"type Tuple2[T0, T1 any] struct {",
		"const Or2Arity = 2",
		"func Or2Of0[T0, T1 any](v T0) Or2[T0, T1] {",
		"func Or2Of1[T0, T1 any](v T1) Or2[T0, T1] {",
		"func (o Or2[T0, T1]) Get1() (T1, bool) {",
		"func Or2Map1[T0, T1, R any](o Or2[T0, T1], f func(T1) R) Or2[T0, R] {",
		"func Or2Ref[T0, T1 any](o *Or2[T0, T1]) Or2[*T0, *T1] {",
		"func Or2IntoTuple[T0, T1 any](rows [2]Or2[T0, T1]) (Tuple2[T0, T1], bool) {",
		"func (o *Or2[T0, T1]) UnmarshalJSON(data []byte) error {",
		"func (o *Or2[T0, T1]) UnmarshalYAML(node *yaml.Node) error {",
	} {
		assert.True(t, strings.Contains(src, decl), "missing %q", decl)
	}

	assert.True(t, strings.HasPrefix(src, "// Code generated by orngen; DO NOT EDIT."))

	// The pointer projection must stay a free function; as a method it is an
	// instantiation cycle (T0 instantiated as *T0, then **T0, without end).
	assert.False(t, strings.Contains(src, ") Ref()"))
}

func TestEmitOr_PerPositionDeclarationsAreTotal(t *testing.T) {
	t.Parallel()

	for k := 1; k <= 8; k++ {
		src := emitOr(k)
		for i := 0; i < k; i++ {
			assert.True(t, strings.Contains(src, fmt.Sprintf("func Or%dOf%d[", k, i)), "Or%dOf%d", k, i)
			assert.True(t, strings.Contains(src, fmt.Sprintf(") Is%d() bool {", i)), "Or%d.Is%d", k, i)
			assert.True(t, strings.Contains(src, fmt.Sprintf(") Get%d() (T%d, bool) {", i, i)), "Or%d.Get%d", k, i)
			assert.True(t, strings.Contains(src, fmt.Sprintf("func Or%dMap%d[", k, i)), "Or%dMap%d", k, i)
		}
	}
}

func TestEmitConvert_EnumeratesEveryPrefixPair(t *testing.T) {
	t.Parallel()

	src := emitConvert(8)

	widens := strings.Count(src, "\nfunc Widen")
	narrows := strings.Count(src, "\nfunc Narrow")
	assert.Equal(t, 28, widens, "C(8,2) widening conversions")
	assert.Equal(t, 28, narrows, "C(8,2) narrowing conversions")

	require.True(t, strings.Contains(src, "func Widen1To2[T0, T1 any](o Or1[T0]) Or2[T0, T1] {"))
	require.True(t, strings.Contains(src, "func Narrow8To7["))
}

func TestEmit_IsDeterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, emitOr(5), emitOr(5))
	assert.Equal(t, emitSeq(3), emitSeq(3))
	assert.Equal(t, emitFuture(4), emitFuture(4))
	assert.Equal(t, emitPar(2), emitPar(2))
	assert.Equal(t, emitConvert(8), emitConvert(8))
}

func TestEmitAdapters_ReferenceOnlyThePublicAPI(t *testing.T) {
	t.Parallel()

	for k := 1; k <= 8; k++ {
		for _, src := range []string{emitSeq(k), emitFuture(k), emitPar(k)} {
			assert.False(t, strings.Contains(src, "o.tag"),
				"adapters must go through the exported surface")
			assert.True(t, strings.Contains(src, "github.com/ib-77/orn/pkg/orn"))
		}
	}
}
