package push3

// control.go wires the §4.5 control-flow instructions. DO*RANGE's
// continuation is pushed directly as EXEC items rather than materialized
// as an intermediate Value, but the push order reproduces exactly the
// (next d *.DO*RANGE body) / (body now) interleaving the worked factorial
// example in the testable-properties section requires: the freshly pushed
// current index sits directly on INTEGER before body runs, and the
// instruction token in the continuation pops before the carried body does,
// so the recursive call sees its own fresh operands rather than whatever
// body left behind.

func registerControlInstructions(is *InstructionSet) {
	is.Register("EXEC.IF", func(s *State, c Cache) {
		runIf(s, s.Stack(Exec))
	})
	is.Register("CODE.IF", func(s *State, c Cache) {
		runIf(s, s.Stack(Code))
	})

	is.Register("EXEC.DO*RANGE", doRangeFrom(Exec, "EXEC.DO*RANGE"))
	is.Register("CODE.DO*RANGE", doRangeFrom(Code, "CODE.DO*RANGE"))

	is.Register("EXEC.DO*COUNT", doCountFrom(Exec, "EXEC.DO*RANGE"))
	is.Register("CODE.DO*COUNT", doCountFrom(Code, "CODE.DO*RANGE"))

	is.Register("EXEC.DO*TIMES", doTimesFrom(Exec, "EXEC.DO*RANGE"))
	is.Register("CODE.DO*TIMES", doTimesFrom(Code, "CODE.DO*RANGE"))
}

// runIf implements `*.IF`: pop a BOOLEAN, then pop the two candidate items
// from bodySrc (t on top, e below), and push whichever the predicate
// selects back onto EXEC.
func runIf(s *State, bodySrc *Stack) {
	bv, ok := s.Stack(Boolean).Pop()
	if !ok {
		return
	}
	t, ok := bodySrc.Pop()
	if !ok {
		s.Stack(Boolean).Push(bv)
		return
	}
	e, ok := bodySrc.Pop()
	if !ok {
		bodySrc.Push(t)
		s.Stack(Boolean).Push(bv)
		return
	}
	if bv.Bool {
		s.Stack(Exec).Push(t)
	} else {
		s.Stack(Exec).Push(e)
	}
}

// doRangeFrom builds the EXEC.DO*RANGE / CODE.DO*RANGE handler: body comes
// from bodyStack, the recursive call is re-registered under selfName.
func doRangeFrom(bodyStack StackType, selfName string) Handler {
	return func(s *State, c Cache) {
		bs := s.Stack(bodyStack)
		body, ok := bs.Pop()
		if !ok {
			return
		}
		ints := s.Stack(Integer)
		d, ok := ints.Pop()
		if !ok {
			bs.Push(body)
			return
		}
		cur, ok := ints.Pop()
		if !ok {
			ints.Push(d)
			bs.Push(body)
			return
		}
		runDoRange(s, bodyStack, cur.Int, d.Int, body, selfName)
	}
}

// runDoRange pushes the single-iteration body (with the current index
// already on INTEGER) plus, unless this is the last iteration, the
// continuation that drives the next one.
func runDoRange(s *State, bodyStack StackType, cur, d int64, body Value, selfName string) {
	if cur != d {
		next := cur + 1
		if d < cur {
			next = cur - 1
		}
		// Make body available again for the recursive call to re-fetch
		// from its source stack, then queue that recursive call. d and
		// next are pushed as EXEC literals, not straight onto INTEGER:
		// they must not land on INTEGER until the engine actually pops
		// them, after this iteration's body has already run and
		// consumed whatever it needed from INTEGER.
		s.Stack(bodyStack).Push(body)
		s.Stack(Exec).Push(Instr(selfName))
		s.Stack(Exec).Push(Int64(d))
		s.Stack(Exec).Push(Int64(next))
	}
	s.Stack(Integer).Push(Int64(cur))
	// Body always runs via EXEC, regardless of where it was sourced from.
	s.Stack(Exec).Push(body)
}

// doCountFrom implements `*.DO*COUNT N BODY`: converts to a [0, N-1] range,
// no-op if N <= 0 (per §4.5).
func doCountFrom(bodyStack StackType, selfRangeName string) Handler {
	return func(s *State, c Cache) {
		bs := s.Stack(bodyStack)
		body, ok := bs.Pop()
		if !ok {
			return
		}
		n, ok := s.Stack(Integer).Pop()
		if !ok {
			bs.Push(body)
			return
		}
		if n.Int <= 0 {
			s.Stack(Integer).Push(n)
			bs.Push(body)
			return
		}
		runDoRange(s, bodyStack, 0, n.Int-1, body, selfRangeName)
	}
}

// doTimesFrom implements `*.DO*TIMES N BODY`: like DO*COUNT but the index
// is discarded, by wrapping body as (INTEGER.POP BODY).
func doTimesFrom(bodyStack StackType, selfRangeName string) Handler {
	return func(s *State, c Cache) {
		bs := s.Stack(bodyStack)
		body, ok := bs.Pop()
		if !ok {
			return
		}
		n, ok := s.Stack(Integer).Pop()
		if !ok {
			bs.Push(body)
			return
		}
		if n.Int <= 0 {
			s.Stack(Integer).Push(n)
			bs.Push(body)
			return
		}
		wrapped := List(Instr("INTEGER.POP"), body)
		runDoRange(s, bodyStack, 0, n.Int-1, wrapped, selfRangeName)
	}
}
