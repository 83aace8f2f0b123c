package push3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackPushPop(t *testing.T) {
	var s Stack
	s.Push(Int64(1))
	s.Push(Int64(2))
	assert.Equal(t, 2, s.Depth())
	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, Int64(2), v)
	assert.Equal(t, 1, s.Depth())
}

func TestStackPopEmptyIsNoOp(t *testing.T) {
	var s Stack
	_, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Depth())
}

func TestStackDupSwapRot(t *testing.T) {
	var s Stack
	s.Push(Int64(1))
	s.Dup()
	assert.Equal(t, []Value{Int64(1), Int64(1)}, s.Items())

	s.Flush()
	s.Push(Int64(1))
	s.Push(Int64(2))
	s.Swap()
	assert.Equal(t, []Value{Int64(1), Int64(2)}, s.Items())

	s.Flush()
	s.Push(Int64(1))
	s.Push(Int64(2))
	s.Push(Int64(3))
	s.Rot()
	assert.Equal(t, []Value{Int64(1), Int64(3), Int64(2)}, s.Items())
}

func TestStackRotNoOpBelowThree(t *testing.T) {
	var s Stack
	s.Push(Int64(1))
	s.Push(Int64(2))
	s.Rot()
	assert.Equal(t, []Value{Int64(2), Int64(1)}, s.Items())
}

func TestStackYankAndShove(t *testing.T) {
	var s Stack
	s.Push(Int64(1))
	s.Push(Int64(2))
	s.Push(Int64(3))
	// top-first items(): [3,2,1]
	s.Yank(2) // bring the bottom item (1) to top
	assert.Equal(t, []Value{Int64(1), Int64(3), Int64(2)}, s.Items())

	s.Flush()
	s.Push(Int64(1))
	s.Push(Int64(2))
	s.Push(Int64(3))
	s.Shove(2) // take top (3) and bury it at depth 2
	assert.Equal(t, []Value{Int64(2), Int64(1), Int64(3)}, s.Items())
}

func TestStackYankClampsOutOfRange(t *testing.T) {
	var s Stack
	s.Push(Int64(1))
	s.Push(Int64(2))
	// depth argument clamps to depth-1 (here 1), so this yanks the bottom
	// item (1) to the top rather than no-op'ing.
	s.Yank(99)
	assert.Equal(t, []Value{Int64(1), Int64(2)}, s.Items())
}

func TestStackMaxDepth(t *testing.T) {
	var s Stack
	s.SetMaxDepth(2)
	s.Push(Int64(1))
	s.Push(Int64(2))
	s.Push(Int64(3))
	assert.Equal(t, 2, s.Depth())
}
