package push3

// registerGenericStackOps wires up the uniform per-type stack vocabulary
// described in §3/§4.1: DUP, POP, SWAP, ROT, FLUSH, STACKDEPTH, YANK,
// YANKDUP, SHOVE, and =. It is called once per stack type from
// registerDefaults, with eq supplying the type-appropriate equality check
// (native equality for INTEGER/FLOAT/BOOLEAN so FLOAT.= stays IEEE-correct,
// structural Value.Equal for NAME/CODE/EXEC).
func registerGenericStackOps(is *InstructionSet, t StackType, eq func(a, b Value) bool) {
	prefix := t.String() + "."

	is.Register(prefix+"DUP", func(s *State, c Cache) {
		s.Stack(t).Dup()
	})

	is.Register(prefix+"POP", func(s *State, c Cache) {
		s.Stack(t).Pop()
	})

	is.Register(prefix+"SWAP", func(s *State, c Cache) {
		s.Stack(t).Swap()
	})

	is.Register(prefix+"ROT", func(s *State, c Cache) {
		s.Stack(t).Rot()
	})

	is.Register(prefix+"FLUSH", func(s *State, c Cache) {
		s.Stack(t).Flush()
	})

	is.Register(prefix+"STACKDEPTH", func(s *State, c Cache) {
		s.Stack(Integer).Push(Int64(int64(s.Stack(t).Depth())))
	})

	is.Register(prefix+"YANK", func(s *State, c Cache) {
		idx, ok := popIndex(s, t)
		if !ok {
			return
		}
		s.Stack(t).Yank(idx)
	})

	is.Register(prefix+"YANKDUP", func(s *State, c Cache) {
		idx, ok := popIndex(s, t)
		if !ok {
			return
		}
		s.Stack(t).YankDup(idx)
	})

	is.Register(prefix+"SHOVE", func(s *State, c Cache) {
		idx, ok := popIndex(s, t)
		if !ok {
			return
		}
		s.Stack(t).Shove(idx)
	})

	is.Register(prefix+"=", func(s *State, c Cache) {
		st := s.Stack(t)
		b, ok := st.Peek(0)
		if !ok {
			return
		}
		a, ok := st.Peek(1)
		if !ok {
			return
		}
		st.Pop()
		st.Pop()
		s.Stack(Boolean).Push(Bool(eq(a, b)))
	})
}

// popIndex pops the INTEGER stack for a YANK/YANKDUP/SHOVE depth argument.
// When t is itself Integer, the index is popped before the operation
// inspects the (now one-shorter) INTEGER stack, matching the reference
// semantics where the index always comes off the same INTEGER stack the
// operation targets.
func popIndex(s *State, t StackType) (int, bool) {
	v, ok := s.Stack(Integer).Pop()
	if !ok {
		return 0, false
	}
	return int(v.Int), true
}

func nativeEqual(a, b Value) bool {
	switch a.Kind {
	case KindInt:
		return a.Int == b.Int
	case KindFloat:
		return a.Float == b.Float
	case KindBool:
		return a.Bool == b.Bool
	default:
		return a.Equal(b)
	}
}
