package push3

// combinators.go wires the three EXEC combinators from §4.5. Each is a
// small, total rewrite of the EXEC stream; none touch any other stack.

func registerCombinatorInstructions(is *InstructionSet) {
	is.Register("EXEC.K", func(s *State, c Cache) {
		st := s.Stack(Exec)
		top, ok := st.Pop()
		if !ok {
			return
		}
		if _, ok := st.Pop(); !ok {
			st.Push(top)
			return
		}
		st.Push(top)
	})

	is.Register("EXEC.S", func(s *State, c Cache) {
		st := s.Stack(Exec)
		a, ok := st.Pop()
		if !ok {
			return
		}
		b, ok := st.Pop()
		if !ok {
			st.Push(a)
			return
		}
		cc, ok := st.Pop()
		if !ok {
			st.Push(b)
			st.Push(a)
			return
		}
		st.Push(List(b, cc))
		st.Push(cc)
		st.Push(a)
	})

	is.Register("EXEC.Y", func(s *State, c Cache) {
		st := s.Stack(Exec)
		a, ok := st.Pop()
		if !ok {
			return
		}
		st.Push(List(Instr("EXEC.Y"), a))
		st.Push(a)
	})
}
