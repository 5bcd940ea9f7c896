package task

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Sentinel errors for task execution.
var (
	// ErrNilTask is reported when a nil *Task is performed or composed.
	ErrNilTask = errors.New("nil task")

	// ErrPanic wraps a value recovered from a panicking task body.
	ErrPanic = errors.New("task panicked")

	// ErrNoCause is substituted when a body fails with a nil error.
	ErrNoCause = errors.New("task failed without error")
)

// =============================================================================
// Outcome
// =============================================================================

// Outcome is the terminal result of a performed Task.
// A nil Err means success.
type Outcome struct {
	Err error
}

// Success returns a successful outcome.
func Success() Outcome { return Outcome{} }

// Failure returns a failed outcome carrying err.
// A nil err is replaced with ErrNoCause so failures always carry an error.
func Failure(err error) Outcome {
	if err == nil {
		err = ErrNoCause
	}
	return Outcome{Err: err}
}

// Succeeded reports whether the outcome is a success.
func (o Outcome) Succeeded() bool { return o.Err == nil }

// =============================================================================
// Controller
// =============================================================================

// Controller is handed to a running task body. The body must call exactly one
// of Succeed or Fail, exactly once. Calls after the first are ignored.
type Controller struct {
	exec   Executor
	done   atomic.Bool
	finish func(Outcome)
}

// Succeed completes the task successfully.
func (c *Controller) Succeed() {
	c.complete(Success())
}

// Fail completes the task with err.
func (c *Controller) Fail(err error) {
	c.complete(Failure(err))
}

func (c *Controller) complete(o Outcome) {
	if !c.done.CompareAndSwap(false, true) {
		return
	}
	c.finish(o)
}

// =============================================================================
// Task
// =============================================================================

// Body is the unit of work wrapped by a Task.
type Body func(c *Controller)

// Task is a single-completion unit of asynchronous work.
// A Task may be performed more than once; each Perform runs the body anew.
type Task struct {
	body Body
}

// New wraps body in a Task.
func New(body Body) *Task {
	return &Task{body: body}
}

// FromFunc wraps fn in a Task that succeeds when fn returns nil and fails
// with the returned error otherwise.
func FromFunc(fn func() error) *Task {
	return New(func(c *Controller) {
		if err := fn(); err != nil {
			c.Fail(err)
			return
		}
		c.Succeed()
	})
}

// Perform schedules the body on exec and invokes handler once with the final
// outcome, on exec. A nil exec uses Go; a nil handler discards the outcome.
// A body panic before completion becomes an [ErrPanic] failure. Panics raised
// after completion, including those from handler on a synchronous executor,
// propagate.
func (t *Task) Perform(exec Executor, handler func(Outcome)) {
	if exec == nil {
		exec = Go
	}
	if handler == nil {
		handler = func(Outcome) {}
	}
	finish := func(o Outcome) {
		exec.Submit(func() { handler(o) })
	}

	if t == nil || t.body == nil {
		finish(Failure(ErrNilTask))
		return
	}

	exec.Submit(func() {
		c := &Controller{exec: exec, finish: finish}
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			// Once completed, the panic belongs to the handler or to a
			// body bug after completion; neither may be swallowed.
			if c.done.Load() {
				panic(r)
			}
			c.Fail(fmt.Errorf("%w: %v", ErrPanic, r))
		}()
		t.body(c)
	})
}

// Wait performs t on exec and blocks until it completes, returning the
// failure error or nil.
func Wait(exec Executor, t *Task) error {
	done := make(chan Outcome, 1)
	t.Perform(exec, func(o Outcome) { done <- o })
	return (<-done).Err
}

// And returns a Group of t and other.
func (t *Task) And(other *Task) *Task {
	return Group([]*Task{t, other})
}

// Then returns a Sequence of t followed by other.
func (t *Task) Then(other *Task) *Task {
	return Sequence([]*Task{t, other})
}

// Tasks is an ordered collection of tasks.
type Tasks []*Task

// AsGroup returns a Group of the collection.
func (ts Tasks) AsGroup() *Task { return Group(ts) }

// AsSequence returns a Sequence of the collection.
func (ts Tasks) AsSequence() *Task { return Sequence(ts) }
