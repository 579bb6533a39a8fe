package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CustomizeFishing_Go/internal/testing/leaktest"
)

func TestPool_ProcessesJobs(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := NewPool(2, 10)
	pool.Start()

	var processed atomic.Int32
	for i := 0; i < 5; i++ {
		pool.Enqueue(JobFunc(func(ctx context.Context) error {
			processed.Add(1)
			return nil
		}))
	}

	assert.Eventually(t, func() bool { return processed.Load() == 5 }, time.Second, 5*time.Millisecond)

	pool.Stop()
	checker.Check(1)
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	pool := NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	var processed atomic.Int32
	pool.Enqueue(JobFunc(func(ctx context.Context) error { return errors.New("boom") }))
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		processed.Add(1)
		return nil
	}))

	assert.Eventually(t, func() bool { return processed.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestPool_TryEnqueueRejectsWhenFull(t *testing.T) {
	pool := NewPool(1, 1)
	// not started: nothing drains the queue
	assert.True(t, pool.TryEnqueue(JobFunc(func(ctx context.Context) error { return nil })))
	assert.False(t, pool.TryEnqueue(JobFunc(func(ctx context.Context) error { return nil })))
}

func TestPool_StopDrainsQueue(t *testing.T) {
	pool := NewPool(1, 8)

	var processed atomic.Int32
	for i := 0; i < 3; i++ {
		assert.True(t, pool.TryEnqueue(JobFunc(func(ctx context.Context) error {
			processed.Add(1)
			return nil
		})))
	}

	pool.Start()
	pool.Stop()

	assert.Equal(t, int32(3), processed.Load())
	assert.False(t, pool.TryEnqueue(JobFunc(func(ctx context.Context) error { return nil })), "stopped pool rejects jobs")
}
