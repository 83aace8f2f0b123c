package push3

// instr_int.go wires the INTEGER arithmetic contract from §4.5: standard
// + - * /, floored %, and the FROMFLOAT/FROMBOOLEAN conversions. Every
// handler here is a total function: insufficient operands or a zero
// divisor leave the stack untouched rather than raising.

func registerIntInstructions(is *InstructionSet) {
	is.Register("INTEGER.+", intBinOp(func(a, b int64) (int64, bool) { return a + b, true }))
	is.Register("INTEGER.-", intBinOp(func(a, b int64) (int64, bool) { return a - b, true }))
	is.Register("INTEGER.*", intBinOp(func(a, b int64) (int64, bool) { return a * b, true }))
	is.Register("INTEGER./", intBinOp(func(a, b int64) (int64, bool) {
		if b == 0 {
			return 0, false
		}
		return flooredDiv(a, b), true
	}))
	is.Register("INTEGER.%", intBinOp(func(a, b int64) (int64, bool) {
		if b == 0 {
			return 0, false
		}
		return flooredMod(a, b), true
	}))

	is.Register("INTEGER.MIN", intBinOp(func(a, b int64) (int64, bool) {
		if a < b {
			return a, true
		}
		return b, true
	}))
	is.Register("INTEGER.MAX", intBinOp(func(a, b int64) (int64, bool) {
		if a > b {
			return a, true
		}
		return b, true
	}))

	is.Register("INTEGER.<", intCmp(func(a, b int64) bool { return a < b }))
	is.Register("INTEGER.>", intCmp(func(a, b int64) bool { return a > b }))

	is.Register("INTEGER.FROMFLOAT", func(s *State, c Cache) {
		v, ok := s.Stack(Float).Pop()
		if !ok {
			return
		}
		s.Stack(Integer).Push(Int64(int64(v.Float)))
	})
	is.Register("INTEGER.FROMBOOLEAN", func(s *State, c Cache) {
		v, ok := s.Stack(Boolean).Pop()
		if !ok {
			return
		}
		n := int64(0)
		if v.Bool {
			n = 1
		}
		s.Stack(Integer).Push(Int64(n))
	})

	is.Register("INTEGER.RAND", func(s *State, c Cache) {
		s.Stack(Integer).Push(Int64(s.randomInt()))
	})
}

// flooredDiv implements division that rounds toward negative infinity, so
// it stays consistent with flooredMod's sign convention.
func flooredDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// flooredMod returns a result with the sign of b, per §4.5 ("-7 % 3 = 2").
func flooredMod(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// intBinOp adapts a two-argument int64 function into a Handler following
// the "pop b then a, push a ⊕ b" convention from §4.5. When fn reports
// false (a precondition like a zero divisor), both operands are pushed
// back untouched.
func intBinOp(fn func(a, b int64) (int64, bool)) Handler {
	return func(s *State, c Cache) {
		st := s.Stack(Integer)
		b, ok := st.Pop()
		if !ok {
			return
		}
		a, ok := st.Pop()
		if !ok {
			st.Push(b)
			return
		}
		r, ok := fn(a.Int, b.Int)
		if !ok {
			st.Push(a)
			st.Push(b)
			return
		}
		st.Push(Int64(r))
	}
}

func intCmp(fn func(a, b int64) bool) Handler {
	return func(s *State, c Cache) {
		st := s.Stack(Integer)
		b, ok := st.Pop()
		if !ok {
			return
		}
		a, ok := st.Pop()
		if !ok {
			st.Push(b)
			return
		}
		s.Stack(Boolean).Push(Bool(fn(a.Int, b.Int)))
	}
}
