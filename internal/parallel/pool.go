// Package parallel provides a small fixed-size worker pool used by the CLI's
// batch mode to prove many independent formulas concurrently (SPEC_FULL.md
// §5). It is adapted from the teacher's internal/parallel/pool.go worker
// pool, trimmed of the dynamic up/down scaling and deadlock detector that
// package needed for long-running, interdependent goal evaluation: a batch
// of tautology proofs is a fixed, independent task list known up front, so a
// fixed pool size and a plain result slice are enough. Each task itself
// still runs a single, single-threaded coalescence search (§5) — only the
// across-formula fan-out is concurrent.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

// Task is one unit of batch work: compute a result or an error for a single
// input, identified by its index in the caller's input slice so results can
// be reassembled in order regardless of completion order.
type Task func(ctx context.Context) (any, error)

// Result pairs a task's outcome with its original index.
type Result struct {
	Index int
	Value any
	Err   error
}

// WorkerPool runs a fixed number of goroutines draining a task channel, the
// way the teacher's WorkerPool does for goal evaluation (internal/parallel/pool.go),
// without that package's scale-up/scale-down bookkeeping.
type WorkerPool struct {
	workers int
}

// NewWorkerPool returns a pool sized to workers goroutines. A non-positive
// value defaults to runtime.NumCPU(), matching the teacher's convention.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &WorkerPool{workers: workers}
}

// Run executes every task in tasks across the pool's workers and returns
// their results in input order. It stops launching new tasks once ctx is
// cancelled, but does not interrupt tasks already in flight.
func (p *WorkerPool) Run(ctx context.Context, tasks []Task) []Result {
	results := make([]Result, len(tasks))
	indices := make(chan int, len(tasks))
	for i := range tasks {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				select {
				case <-ctx.Done():
					results[i] = Result{Index: i, Err: ctx.Err()}
					continue
				default:
				}
				value, err := tasks[i](ctx)
				results[i] = Result{Index: i, Value: value, Err: err}
			}
		}()
	}
	wg.Wait()
	return results
}
