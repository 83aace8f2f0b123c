package push3

import (
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

// Job is one independent (State, Cache) pair submitted to RunBatch.
type Job struct {
	State *State
	Cache Cache
}

// BatchOptions configures RunBatch.
type BatchOptions struct {
	// Workers bounds the number of jobs executed concurrently. 0 means
	// unbounded (errgroup.SetLimit is not called).
	Workers int
}

// RunBatch runs every Job to completion on its own goroutine, bounded by
// opts.Workers, using errgroup.WithContext so a hard failure in one job
// (a panic or runtime.Goexit outside any handler, which panicerr.Recover
// inside Run turns into an error and which §4.6 says should never happen)
// cancels ctx for the rest and is returned to the caller.
// Ordinary program behavior -- including StepLimitReached -- never causes
// RunBatch to return an error; it is reported per-job through Result, the
// same as a single Run.
//
// RunBatch makes concrete the concurrency model's promise that "a caller
// wanting concurrency runs multiple independent engines in parallel, each
// owning its own State": results[i] is always the outcome of jobs[i].
func RunBatch(ctx context.Context, jobs []Job, opts BatchOptions) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			r, err := Run(gctx, job.State, job.Cache)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
