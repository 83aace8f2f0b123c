package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	push3 "github.com/orbward/push3"
	"github.com/orbward/push3/internal/flushio"
	"github.com/orbward/push3/internal/logio"
)

func main() {
	ctx := context.Background()

	var (
		timeout       time.Duration
		trace         bool
		evalPushLimit int
		maxStackDepth int
		seed          int64
		topLevelPush  bool
	)
	flag.DurationVar(&timeout, "timeout", 0, "cancel the run after this long")
	flag.BoolVar(&trace, "trace", false, "log each engine step")
	flag.IntVar(&evalPushLimit, "eval-push-limit", 0, "override the default EvalPushLimit (0 keeps the default)")
	flag.IntVar(&maxStackDepth, "max-stack-depth", 0, "soft cap on every typed stack's depth (0 means unbounded)")
	flag.Int64Var(&seed, "seed", 1, "random source seed")
	flag.BoolVar(&topLevelPush, "top-level-push-code", false, "push the whole program onto CODE before running")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: push3 [flags] <program>")
		os.Exit(1)
	}

	var logger logio.Logger
	logger.SetOutput(os.Stderr)
	if trace {
		log.SetOutput(&logio.Writer{Logf: logger.Leveledf("TRACE")})
	}

	out := flushio.NewWriteFlusher(os.Stdout)
	defer out.Flush()

	is := push3.NewInstructionSet()
	cache := is.Snapshot()

	var opts []push3.Option
	if evalPushLimit > 0 {
		opts = append(opts, push3.WithEvalPushLimit(evalPushLimit))
	}
	if maxStackDepth > 0 {
		opts = append(opts, push3.WithMaxStackDepth(maxStackDepth))
	}
	opts = append(opts, push3.WithSeed(seed), push3.WithTopLevelPushCode(topLevelPush))
	if trace {
		opts = append(opts, push3.WithLogf(logger.Leveledf("STEP")))
	}
	s, err := push3.New(opts...)
	if err != nil {
		logger.Errorf("%+v", err)
		os.Exit(logger.ExitCode())
	}

	prog, err := push3.Parse(flag.Arg(0), cache, s.Config())
	if err != nil {
		logger.Errorf("%+v", err)
		os.Exit(logger.ExitCode())
	}
	s.PushItem(prog)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := push3.Run(ctx, s, cache)
	if err != nil {
		logger.Errorf("%+v", err)
		os.Exit(logger.ExitCode())
	}

	printStacks(out, s)

	if result.StepLimitReached {
		fmt.Fprintf(out, "; step limit reached after %d steps\n", result.Steps)
	}
	if result.Cancelled {
		fmt.Fprintln(out, "; cancelled")
	}
	for _, rp := range result.RecoveredPanics {
		logger.ErrorIf(fmt.Errorf("step %d: instruction %s panicked: %v", rp.Step, rp.Instruction, rp.Value))
	}

	os.Exit(logger.ExitCode())
}

func printStacks(out flushio.WriteFlusher, s *push3.State) {
	for t := push3.Integer; t < push3.NumStackTypes; t++ {
		st := s.Stack(t)
		if st.Depth() == 0 {
			continue
		}
		fmt.Fprintf(out, "%s: %v\n", t, st.Items())
	}
}
