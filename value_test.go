package push3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuePoints(t *testing.T) {
	assert.Equal(t, 1, Int64(5).Points())
	assert.Equal(t, 1, List().Points())
	assert.Equal(t, 3, List(Int64(1), Int64(2)).Points())
	assert.Equal(t, 5, List(Int64(1), List(Int64(2), Int64(3))).Points())
}

func TestValueAsList(t *testing.T) {
	assert.Equal(t, []Value{Int64(5)}, Int64(5).AsList())
	list := List(Int64(1), Int64(2))
	assert.Equal(t, list.List, list.AsList())
}

func TestValueStringRoundTrip(t *testing.T) {
	cache := NewInstructionSet().Snapshot()
	cfg := DefaultConfig()
	cases := []Value{
		Int64(-42),
		Float64(3.5),
		Float64(4),
		Bool(true),
		Name("foo"),
		List(Int64(1), Instr("INTEGER.+"), List(Bool(false))),
	}
	for _, v := range cases {
		text := v.String()
		parsed, err := Parse(text, cache, cfg)
		require.NoError(t, err)
		require.Len(t, parsed.List, 1)
		assert.True(t, v.Equal(parsed.List[0]), "round trip %q: got %v", text, parsed.List[0])
	}
}

func TestValueEqualNaN(t *testing.T) {
	nan := Float64(nan())
	assert.True(t, nan.Equal(nan))
}

func nan() float64 {
	var zero float64
	return zero / zero
}
