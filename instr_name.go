package push3

// instr_name.go wires the NAME binding mechanism from §4.5: a `T.DEFINE`
// per stack type that binds a NAME to a value popped from stack T,
// NAME.QUOTE's one-step literal-push flag, and CODE.DEFINITION's lookup.

func registerNameInstructions(is *InstructionSet) {
	for t := StackType(0); t < numStackTypes; t++ {
		if t == NameStack {
			continue
		}
		registerDefine(is, t)
	}

	is.Register("NAME.QUOTE", func(s *State, c Cache) {
		s.quoteNextNameOnce()
	})

	is.Register("NAME.RAND", func(s *State, c Cache) {
		s.Stack(NameStack).Push(Name(s.randomName()))
	})

	is.Register("CODE.DEFINITION", func(s *State, c Cache) {
		st := s.Stack(NameStack)
		n, ok := st.Pop()
		if !ok {
			return
		}
		v, bound := s.Lookup(n.Name)
		if !bound {
			st.Push(n)
			return
		}
		s.Stack(Code).Push(v)
	})
}

// registerDefine wires T.DEFINE: pop a NAME off the NAME stack, pop a
// value off stack t, and bind name -> value. No-op if either is missing;
// both are restored on partial failure.
func registerDefine(is *InstructionSet, t StackType) {
	is.Register(t.String()+".DEFINE", func(s *State, c Cache) {
		nameStack := s.Stack(NameStack)
		n, ok := nameStack.Pop()
		if !ok {
			return
		}
		vs := s.Stack(t)
		v, ok := vs.Pop()
		if !ok {
			nameStack.Push(n)
			return
		}
		s.Bind(n.Name, v)
	})
}
