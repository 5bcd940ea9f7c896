package task

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Executor runs submitted functions. Submit must not block the caller
// waiting for the function to finish.
type Executor interface {
	Submit(fn func())
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(fn func())

// Submit calls f(fn).
func (f ExecutorFunc) Submit(fn func()) { f(fn) }

// Go runs each submission on its own goroutine.
var Go Executor = ExecutorFunc(func(fn func()) { go fn() })

// Inline runs each submission synchronously on the submitting goroutine.
// Groups performed inline run their members one after another.
var Inline Executor = ExecutorFunc(func(fn func()) { fn() })

// Pool is an Executor that bounds how many submissions run at once.
//
// Thread-safety: Submit may be called from any goroutine, including from
// inside a running submission.
type Pool struct {
	sem  *semaphore.Weighted
	size int
}

// NewPool creates a pool running at most size submissions concurrently.
// If size <= 0, runtime.GOMAXPROCS(0) is used.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	return &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
	}
}

// Size returns the concurrency bound.
func (p *Pool) Size() int { return p.size }

// Submit queues fn. It returns immediately; fn runs once a slot frees up.
func (p *Pool) Submit(fn func()) {
	go func() {
		// Acquire only fails on context cancellation.
		_ = p.sem.Acquire(context.Background(), 1)
		defer p.sem.Release(1)
		fn()
	}()
}

var _ Executor = (*Pool)(nil)
