package push3

// instr_code.go wires the CODE manipulation contract from §4.5, plus three
// instructions original_source carries that the distilled list omits:
// CODE.LIST (build a two-element list without the atom/list coercion
// CODE.CONS applies), CODE.ATOM and CODE.NULL (structural predicates used
// throughout real Push3 programs to recurse over CODE safely).

func registerCodeInstructions(is *InstructionSet) {
	is.Register("CODE.QUOTE", func(s *State, c Cache) {
		v, ok := s.Stack(Exec).Pop()
		if !ok {
			return
		}
		s.Stack(Code).Push(v)
	})

	is.Register("CODE.DO", func(s *State, c Cache) {
		v, ok := s.Stack(Code).Pop()
		if !ok {
			return
		}
		s.Stack(Exec).Push(v)
	})

	is.Register("CODE.CAR", func(s *State, c Cache) {
		st := s.Stack(Code)
		v, ok := st.Pop()
		if !ok {
			return
		}
		list := v.AsList()
		if len(list) == 0 {
			st.Push(v)
			return
		}
		st.Push(list[0])
	})

	is.Register("CODE.CDR", func(s *State, c Cache) {
		st := s.Stack(Code)
		v, ok := st.Pop()
		if !ok {
			return
		}
		list := v.AsList()
		if len(list) == 0 {
			st.Push(v)
			return
		}
		st.Push(List(list[1:]...))
	})

	is.Register("CODE.CONS", func(s *State, c Cache) {
		st := s.Stack(Code)
		tail, ok := st.Pop()
		if !ok {
			return
		}
		head, ok := st.Pop()
		if !ok {
			st.Push(tail)
			return
		}
		rest := tail.AsList()
		out := make([]Value, 0, len(rest)+1)
		out = append(out, head)
		out = append(out, rest...)
		st.Push(List(out...))
	})

	is.Register("CODE.APPEND", func(s *State, c Cache) {
		st := s.Stack(Code)
		top, ok := st.Pop()
		if !ok {
			return
		}
		below, ok := st.Pop()
		if !ok {
			st.Push(top)
			return
		}
		out := make([]Value, 0, len(below.AsList())+len(top.AsList()))
		out = append(out, below.AsList()...)
		out = append(out, top.AsList()...)
		st.Push(List(out...))
	})

	is.Register("CODE.SIZE", func(s *State, c Cache) {
		v, ok := s.Stack(Code).Peek(0)
		if !ok {
			return
		}
		s.Stack(Integer).Push(Int64(int64(v.Points())))
	})

	is.Register("CODE.LIST", func(s *State, c Cache) {
		st := s.Stack(Code)
		a, ok := st.Pop()
		if !ok {
			return
		}
		b, ok := st.Pop()
		if !ok {
			st.Push(a)
			return
		}
		st.Push(List(b, a))
	})

	is.Register("CODE.ATOM", func(s *State, c Cache) {
		st := s.Stack(Code)
		v, ok := st.Peek(0)
		if !ok {
			return
		}
		s.Stack(Boolean).Push(Bool(!v.IsList()))
	})

	is.Register("CODE.NULL", func(s *State, c Cache) {
		st := s.Stack(Code)
		v, ok := st.Peek(0)
		if !ok {
			return
		}
		s.Stack(Boolean).Push(Bool(v.IsList() && len(v.List) == 0))
	})

	registerRandomCodeInstruction(is)
}
