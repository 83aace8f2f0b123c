package push3

import "math"

// instr_float.go mirrors instr_int.go for FLOAT, following IEEE-754
// semantics throughout: NaN and ±Inf are permitted results and propagate
// rather than being rejected (§4.5).

func registerFloatInstructions(is *InstructionSet) {
	is.Register("FLOAT.+", floatBinOp(func(a, b float64) (float64, bool) { return a + b, true }))
	is.Register("FLOAT.-", floatBinOp(func(a, b float64) (float64, bool) { return a - b, true }))
	is.Register("FLOAT.*", floatBinOp(func(a, b float64) (float64, bool) { return a * b, true }))
	is.Register("FLOAT./", floatBinOp(func(a, b float64) (float64, bool) {
		if b == 0 {
			return 0, false
		}
		return a / b, true
	}))
	is.Register("FLOAT.%", floatBinOp(func(a, b float64) (float64, bool) {
		if b == 0 {
			return 0, false
		}
		return flooredModFloat(a, b), true
	}))

	is.Register("FLOAT.MIN", floatBinOp(func(a, b float64) (float64, bool) {
		if a < b {
			return a, true
		}
		return b, true
	}))
	is.Register("FLOAT.MAX", floatBinOp(func(a, b float64) (float64, bool) {
		if a > b {
			return a, true
		}
		return b, true
	}))

	is.Register("FLOAT.<", floatCmp(func(a, b float64) bool { return a < b }))
	is.Register("FLOAT.>", floatCmp(func(a, b float64) bool { return a > b }))

	is.Register("FLOAT.FROMINTEGER", func(s *State, c Cache) {
		v, ok := s.Stack(Integer).Pop()
		if !ok {
			return
		}
		s.Stack(Float).Push(Float64(float64(v.Int)))
	})
	is.Register("FLOAT.FROMBOOLEAN", func(s *State, c Cache) {
		v, ok := s.Stack(Boolean).Pop()
		if !ok {
			return
		}
		f := 0.0
		if v.Bool {
			f = 1.0
		}
		s.Stack(Float).Push(Float64(f))
	})

	is.Register("FLOAT.RAND", func(s *State, c Cache) {
		s.Stack(Float).Push(Float64(s.randomFloat()))
	})
}

// flooredModFloat gives % the sign of the divisor, matching the INTEGER
// convention in §4.5 for the float domain.
func flooredModFloat(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func floatBinOp(fn func(a, b float64) (float64, bool)) Handler {
	return func(s *State, c Cache) {
		st := s.Stack(Float)
		b, ok := st.Pop()
		if !ok {
			return
		}
		a, ok := st.Pop()
		if !ok {
			st.Push(b)
			return
		}
		r, ok := fn(a.Float, b.Float)
		if !ok {
			st.Push(a)
			st.Push(b)
			return
		}
		st.Push(Float64(r))
	}
}

func floatCmp(fn func(a, b float64) bool) Handler {
	return func(s *State, c Cache) {
		st := s.Stack(Float)
		b, ok := st.Pop()
		if !ok {
			return
		}
		a, ok := st.Pop()
		if !ok {
			st.Push(b)
			return
		}
		s.Stack(Boolean).Push(Bool(fn(a.Float, b.Float)))
	}
}
