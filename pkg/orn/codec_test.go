package orn

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSON_MarshalIsUntagged(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(Or2Of0[int, string](42))
	require.NoError(t, err)
	assert.Equal(t, "42", string(out), "the bare number, no object or tag wrapper")

	out, err = json.Marshal(Or2Of1[int, string]("hi"))
	require.NoError(t, err)
	assert.Equal(t, `"hi"`, string(out))
}

func TestJSON_UnmarshalFirstMatchingCaseWins(t *testing.T) {
	t.Parallel()

	var a Or2[string, int]
	require.NoError(t, json.Unmarshal([]byte(`42`), &a))
	assert.Equal(t, 1, a.Index(), "a number cannot be a string, so case 1 wins")
	n, _ := a.Get1()
	assert.Equal(t, 42, n)

	// Both cases would accept 42; position order decides.
	var b Or2[float64, int]
	require.NoError(t, json.Unmarshal([]byte(`42`), &b))
	assert.Equal(t, 0, b.Index())
}

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type label struct {
	Name string `json:"name"`
}

func TestJSON_StructCasesAreProbedStrictly(t *testing.T) {
	t.Parallel()

	var o Or2[point, label]
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a"}`), &o))
	assert.Equal(t, 1, o.Index(), "unknown fields disqualify the point case")

	l, _ := o.Get1()
	assert.Equal(t, "a", l.Name)
}

func TestJSON_NoCaseMatches(t *testing.T) {
	t.Parallel()

	var o Or2[int, bool]
	err := json.Unmarshal([]byte(`"zzz"`), &o)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "matches no case of Or2"))
}

func TestJSON_RoundTripThroughWideSum(t *testing.T) {
	t.Parallel()

	src := Or4Of3[int, bool, float64, string]("payload")
	data, err := json.Marshal(src)
	require.NoError(t, err)
	assert.Equal(t, `"payload"`, string(data))

	var dst Or4[int, bool, float64, string]
	require.NoError(t, json.Unmarshal(data, &dst))
	assert.Equal(t, 3, dst.Index())
	s, _ := dst.Get3()
	assert.Equal(t, "payload", s)
}

func TestYAML_MarshalIsUntagged(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(Or2Of1[bool, int](42))
	require.NoError(t, err)
	assert.Equal(t, "42\n", string(out))
}

func TestYAML_UnmarshalGuessesByPosition(t *testing.T) {
	t.Parallel()

	var o Or2[bool, int]
	require.NoError(t, yaml.Unmarshal([]byte("42\n"), &o))
	assert.Equal(t, 1, o.Index())
	n, _ := o.Get1()
	assert.Equal(t, 42, n)

	require.NoError(t, yaml.Unmarshal([]byte("true\n"), &o))
	assert.Equal(t, 0, o.Index())
}

func TestYAML_NoCaseMatches(t *testing.T) {
	t.Parallel()

	var o Or2[bool, int]
	err := yaml.Unmarshal([]byte("banana\n"), &o)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "matches no case of Or2"))
}
