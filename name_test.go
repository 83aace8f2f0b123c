package push3

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerDefineBindsName(t *testing.T) {
	cache := NewInstructionSet().Snapshot()
	prog, err := Parse("42 NAME.QUOTE FOO INTEGER.DEFINE", cache, DefaultConfig())
	require.NoError(t, err)

	s, err := New()
	require.NoError(t, err)
	s.PushItem(prog)
	_, err = Run(context.Background(), s, cache)
	require.NoError(t, err)

	v, ok := s.Lookup("FOO")
	require.True(t, ok)
	assert.Equal(t, Int64(42), v)
	assert.Empty(t, s.Stack(NameStack).Items())
	assert.Empty(t, s.Stack(Integer).Items())
}

func TestNameQuoteLiteralPushOnce(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	s.Bind("FOO", Int64(1))
	cache := NewInstructionSet().Snapshot()
	prog, err := Parse("NAME.QUOTE FOO FOO", cache, DefaultConfig())
	require.NoError(t, err)
	s.PushItem(prog)
	_, err = Run(context.Background(), s, cache)
	require.NoError(t, err)

	// first FOO is quoted literal (pushed to NAME stack unresolved),
	// second FOO resolves through the binding table.
	assert.Equal(t, []Value{Name("FOO")}, s.Stack(NameStack).Items())
	assert.Equal(t, []Value{Int64(1)}, s.Stack(Integer).Items())
}

func TestCodeDefinitionPushesBoundValue(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	s.Bind("FOO", Int64(7))
	s.Stack(NameStack).Push(Name("FOO"))
	cache := NewInstructionSet().Snapshot()
	h, ok := cache.Lookup("CODE.DEFINITION")
	require.True(t, ok)
	h(s, cache)

	assert.Equal(t, []Value{Int64(7)}, s.Stack(Code).Items())
	assert.Empty(t, s.Stack(NameStack).Items())
}

func TestCodeDefinitionNoOpOnUnboundName(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	s.Stack(NameStack).Push(Name("NOPE"))
	cache := NewInstructionSet().Snapshot()
	h, ok := cache.Lookup("CODE.DEFINITION")
	require.True(t, ok)
	h(s, cache)

	assert.Equal(t, []Value{Name("NOPE")}, s.Stack(NameStack).Items())
	assert.Empty(t, s.Stack(Code).Items())
}

func TestDefineNoOpWhenValueStackEmpty(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	s.Stack(NameStack).Push(Name("FOO"))
	cache := NewInstructionSet().Snapshot()
	h, ok := cache.Lookup("INTEGER.DEFINE")
	require.True(t, ok)
	h(s, cache)

	// name restored, nothing bound
	assert.Equal(t, []Value{Name("FOO")}, s.Stack(NameStack).Items())
	_, bound := s.Lookup("FOO")
	assert.False(t, bound)
}
