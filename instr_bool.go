package push3

// instr_bool.go wires the BOOLEAN contract from §4.5: AND, OR, NOT, XOR,
// plus the cross-type FROMINTEGER/FROMFLOAT conversions (nonzero → true).

func registerBoolInstructions(is *InstructionSet) {
	is.Register("BOOLEAN.AND", boolBinOp(func(a, b bool) bool { return a && b }))
	is.Register("BOOLEAN.OR", boolBinOp(func(a, b bool) bool { return a || b }))
	is.Register("BOOLEAN.XOR", boolBinOp(func(a, b bool) bool { return a != b }))

	is.Register("BOOLEAN.NOT", func(s *State, c Cache) {
		st := s.Stack(Boolean)
		v, ok := st.Pop()
		if !ok {
			return
		}
		st.Push(Bool(!v.Bool))
	})

	is.Register("BOOLEAN.FROMINTEGER", func(s *State, c Cache) {
		v, ok := s.Stack(Integer).Pop()
		if !ok {
			return
		}
		s.Stack(Boolean).Push(Bool(v.Int != 0))
	})
	is.Register("BOOLEAN.FROMFLOAT", func(s *State, c Cache) {
		v, ok := s.Stack(Float).Pop()
		if !ok {
			return
		}
		s.Stack(Boolean).Push(Bool(v.Float != 0))
	})

	is.Register("BOOLEAN.RAND", func(s *State, c Cache) {
		s.Stack(Boolean).Push(Bool(s.randomBool()))
	})
}

func boolBinOp(fn func(a, b bool) bool) Handler {
	return func(s *State, c Cache) {
		st := s.Stack(Boolean)
		b, ok := st.Pop()
		if !ok {
			return
		}
		a, ok := st.Pop()
		if !ok {
			st.Push(b)
			return
		}
		st.Push(Bool(fn(a.Bool, b.Bool)))
	}
}
