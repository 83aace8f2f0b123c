package push3

import (
	"context"

	"github.com/orbward/push3/internal/panicerr"
)

// Run executes s against cache until EXEC is empty, the step limit is
// reached, or ctx is cancelled. Run and RunSteps are the only entry points
// that mutate a State once a program has been loaded onto EXEC.
//
// Run is infallible in the sense described by the error handling design:
// the returned error is non-nil only if something outside the documented
// no-op discipline went wrong (an unexpected runtime.Goexit, for instance);
// ordinary program behavior -- including hitting the step limit -- is
// reported through Result, not error. This mirrors the teacher codebase's
// own api.go, which wraps its whole VM.run in a panicerr.Recover safety net
// despite every instruction already being designed not to panic.
func Run(ctx context.Context, s *State, cache Cache) (Result, error) {
	var result Result
	err := panicerr.Recover("push3.Run", func() error {
		result = runLoop(ctx, s, cache)
		return nil
	})
	return result, err
}

// RunSteps runs at most n steps (0 means "use the configured
// EvalPushLimit as-is, run to completion or limit"), supporting external
// suspension: the caller can inspect or persist s between calls and resume
// by calling RunSteps or Run again, since all pending work lives on EXEC.
func RunSteps(ctx context.Context, s *State, cache Cache, n int) (Result, error) {
	var result Result
	err := panicerr.Recover("push3.RunSteps", func() error {
		result = runLoopBounded(ctx, s, cache, n)
		return nil
	})
	return result, err
}

func runLoop(ctx context.Context, s *State, cache Cache) Result {
	return runLoopBounded(ctx, s, cache, 0)
}

func runLoopBounded(ctx context.Context, s *State, cache Cache, maxSteps int) Result {
	var result Result

	cfg := s.cfg
	if cfg.TopLevelPushCode {
		if items := s.stacks[Exec].Items(); len(items) == 1 {
			s.stacks[Code].Push(items[0])
		} else {
			s.stacks[Code].Push(List(items...))
		}
	}

	startSteps := s.steps
	for {
		if err := ctx.Err(); err != nil {
			result.Cancelled = true
			break
		}
		if cfg.EvalPushLimit > 0 && s.steps >= cfg.EvalPushLimit {
			result.StepLimitReached = true
			break
		}
		if maxSteps > 0 && s.steps-startSteps >= maxSteps {
			break
		}

		item, ok := s.stacks[Exec].Pop()
		if !ok {
			break
		}
		s.steps++
		if rp, panicked := dispatch(s, cache, item); panicked {
			rp.Step = s.steps
			result.RecoveredPanics = append(result.RecoveredPanics, rp)
		}
	}

	result.Steps = s.steps

	if cfg.TopLevelPopCode {
		s.stacks[Code].Pop()
	}

	return result
}

// dispatch processes one EXEC item per the engine's dispatch rules. Any
// panic escaping a handler is recovered here and reported as a no-op step,
// per the failure semantics in §4.6: a handler panicking is a programmer
// bug, not a normal precondition failure, but it must still behave like one
// from the engine's point of view.
func dispatch(s *State, cache Cache, item Value) (rp RecoveredPanic, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			rp = RecoveredPanic{Instruction: item.Name, Value: r}
		}
	}()

	switch item.Kind {
	case KindList:
		s.logf("splat", "step %d: %v", s.steps, item)
		list := item.List
		for i := len(list) - 1; i >= 0; i-- {
			s.stacks[Exec].Push(list[i])
		}

	case KindInt:
		s.stacks[Integer].Push(item)

	case KindFloat:
		s.stacks[Float].Push(item)

	case KindBool:
		s.stacks[Boolean].Push(item)

	case KindInstruction:
		s.logf("exec", "step %d: %s", s.steps, item.Name)
		if h, ok := cache.Lookup(item.Name); ok {
			h(s, cache)
		}

	case KindName:
		if s.quoteNextName {
			s.quoteNextName = false
			s.stacks[NameStack].Push(Name(item.Name))
			return
		}
		if v, ok := s.Lookup(item.Name); ok {
			s.logf("resolve", "step %d: %s", s.steps, item.Name)
			s.PushItem(v)
		} else {
			s.noteSeenName(item.Name)
			s.stacks[NameStack].Push(Name(item.Name))
		}
	}
	return
}
