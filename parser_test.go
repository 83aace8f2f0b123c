package push3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache() Cache {
	return NewInstructionSet().Snapshot()
}

func TestParseAtoms(t *testing.T) {
	cache := testCache()
	cfg := DefaultConfig()

	v, err := Parse("3 -4 .5 5. 1.0e3 TRUE false foo INTEGER.+", cache, cfg)
	require.NoError(t, err)
	require.Len(t, v.List, 9)
	assert.Equal(t, Int64(3), v.List[0])
	assert.Equal(t, Int64(-4), v.List[1])
	assert.Equal(t, Float64(0.5), v.List[2])
	assert.Equal(t, Float64(5.0), v.List[3])
	assert.Equal(t, Float64(1000), v.List[4])
	assert.Equal(t, Bool(true), v.List[5])
	assert.Equal(t, Bool(false), v.List[6])
	assert.Equal(t, Name("FOO"), v.List[7])
	assert.Equal(t, Instr("INTEGER.+"), v.List[8])
}

func TestParseNestedLists(t *testing.T) {
	cache := testCache()
	v, err := Parse("( 1 ( 2 3 ) )", cache, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, v.List, 1)
	top := v.List[0]
	require.True(t, top.IsList())
	require.Len(t, top.List, 2)
	assert.Equal(t, Int64(1), top.List[0])
	assert.Equal(t, List(Int64(2), Int64(3)), top.List[1])
}

func TestParseUnbalancedParens(t *testing.T) {
	cache := testCache()
	_, err := Parse("( 1 2", cache, DefaultConfig())
	assert.Error(t, err)

	_, err = Parse("1 )", cache, DefaultConfig())
	assert.Error(t, err)
}

func TestParseMaxPointsInProgram(t *testing.T) {
	cache := testCache()
	cfg := DefaultConfig()
	cfg.MaxPointsInProgram = 2
	_, err := Parse("1 2 3", cache, cfg)
	assert.Error(t, err)
}

func TestParseOverflowIntWraps(t *testing.T) {
	cache := testCache()
	v, err := Parse("99999999999999999999", cache, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, v.List, 1)
	assert.Equal(t, KindInt, v.List[0].Kind)
	// 99999999999999999999 mod 2^64, read as int64.
	assert.Equal(t, Int64(7766279631452241919), v.List[0])
}

func TestParseEmptyProgram(t *testing.T) {
	cache := testCache()
	v, err := Parse("", cache, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, v.List)
}
