package parallel

import (
	"context"
	"errors"
	"testing"
)

func TestWorkerPoolRunOrdersResultsByIndex(t *testing.T) {
	pool := NewWorkerPool(4)
	tasks := make([]Task, 10)
	for i := 0; i < 10; i++ {
		i := i
		tasks[i] = func(ctx context.Context) (any, error) { return i * i, nil }
	}

	results := pool.Run(context.Background(), tasks)
	if len(results) != len(tasks) {
		t.Fatalf("expected %d results, got %d", len(tasks), len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has Index %d", i, r.Index)
		}
		if r.Err != nil {
			t.Errorf("result %d: unexpected error %v", i, r.Err)
		}
		if r.Value.(int) != i*i {
			t.Errorf("result %d: got %v, want %d", i, r.Value, i*i)
		}
	}
}

func TestWorkerPoolRunPropagatesTaskErrors(t *testing.T) {
	pool := NewWorkerPool(2)
	boom := errors.New("boom")
	tasks := []Task{
		func(ctx context.Context) (any, error) { return nil, boom },
		func(ctx context.Context) (any, error) { return 1, nil },
	}

	results := pool.Run(context.Background(), tasks)
	if !errors.Is(results[0].Err, boom) {
		t.Errorf("expected task 0 to fail with boom, got %v", results[0].Err)
	}
	if results[1].Err != nil {
		t.Errorf("expected task 1 to succeed, got %v", results[1].Err)
	}
}

func TestWorkerPoolRunRespectsCancellation(t *testing.T) {
	pool := NewWorkerPool(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tasks := []Task{
		func(ctx context.Context) (any, error) { return "should not run", nil },
	}
	results := pool.Run(ctx, tasks)
	if results[0].Err == nil {
		t.Error("expected a cancellation error, got nil")
	}
}

func TestNewWorkerPoolDefaultsNonPositiveSize(t *testing.T) {
	pool := NewWorkerPool(0)
	if pool.workers <= 0 {
		t.Errorf("expected a positive default worker count, got %d", pool.workers)
	}
}
