package push3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func TestRunBatchIsolatesJobs(t *testing.T) {
	cache := NewInstructionSet().Snapshot()

	var jobs []Job
	var want []int64
	for i := int64(0); i < 5; i++ {
		s, err := New()
		require.NoError(t, err)
		s.PushInts(i)
		prog, err := Parse("3 INTEGER.+", cache, DefaultConfig())
		require.NoError(t, err)
		s.PushItem(prog)
		jobs = append(jobs, Job{State: s, Cache: cache})
		want = append(want, i+3)
	}

	results, err := RunBatch(context.Background(), jobs, BatchOptions{})
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, job := range jobs {
		assert.Equal(t, []Value{Int64(want[i])}, job.State.Stack(Integer).Items())
		assert.False(t, results[i].StepLimitReached)
	}
}

func TestRunBatchMatchesSequentialRun(t *testing.T) {
	cache := NewInstructionSet().Snapshot()

	seqState, err := New()
	require.NoError(t, err)
	seqState.PushInts(10)
	prog, err := Parse("( 1 INTEGER.MAX 1 EXEC.DO*RANGE INTEGER.* )", cache, DefaultConfig())
	require.NoError(t, err)
	seqState.PushItem(prog)
	_, err = Run(context.Background(), seqState, cache)
	require.NoError(t, err)

	batchState, err := New()
	require.NoError(t, err)
	batchState.PushInts(10)
	prog2, err := Parse("( 1 INTEGER.MAX 1 EXEC.DO*RANGE INTEGER.* )", cache, DefaultConfig())
	require.NoError(t, err)
	batchState.PushItem(prog2)
	_, err = RunBatch(context.Background(), []Job{{State: batchState, Cache: cache}}, BatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, seqState.Stack(Integer).Items(), batchState.Stack(Integer).Items())
}

func TestRunBatchRespectsWorkerLimit(t *testing.T) {
	cache := NewInstructionSet().Snapshot()
	var jobs []Job
	for i := 0; i < 8; i++ {
		s, err := New()
		require.NoError(t, err)
		prog, err := Parse("1 2 INTEGER.+", cache, DefaultConfig())
		require.NoError(t, err)
		s.PushItem(prog)
		jobs = append(jobs, Job{State: s, Cache: cache})
	}

	results, err := RunBatch(context.Background(), jobs, BatchOptions{Workers: 2})
	require.NoError(t, err)
	require.Len(t, results, 8)
	for _, job := range jobs {
		assert.Equal(t, []Value{Int64(3)}, job.State.Stack(Integer).Items())
	}
}
