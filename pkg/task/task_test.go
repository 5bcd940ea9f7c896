package task

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// waitOutcome performs t and returns its outcome, failing the test if the
// handler does not fire within a second.
func waitOutcome(t *testing.T, exec Executor, tk *Task) Outcome {
	t.Helper()
	done := make(chan Outcome, 2)
	tk.Perform(exec, func(o Outcome) { done <- o })
	select {
	case o := <-done:
		return o
	case <-time.After(time.Second):
		t.Fatal("completion handler did not fire")
		return Outcome{}
	}
}

func TestPerformSuccess(t *testing.T) {
	o := waitOutcome(t, Go, New(func(c *Controller) { c.Succeed() }))
	if !o.Succeeded() {
		t.Errorf("outcome = %v, want success", o.Err)
	}
}

func TestPerformFailure(t *testing.T) {
	want := errors.New("boom")
	o := waitOutcome(t, Go, New(func(c *Controller) { c.Fail(want) }))
	if !errors.Is(o.Err, want) {
		t.Errorf("Err = %v, want %v", o.Err, want)
	}
}

func TestFailNilErrorStillCarriesError(t *testing.T) {
	o := waitOutcome(t, Go, New(func(c *Controller) { c.Fail(nil) }))
	if !errors.Is(o.Err, ErrNoCause) {
		t.Errorf("Err = %v, want ErrNoCause", o.Err)
	}
}

func TestHandlerFiresOnce(t *testing.T) {
	var calls atomic.Int32
	done := make(chan struct{})

	tk := New(func(c *Controller) {
		c.Succeed()
		c.Fail(errors.New("late"))
		c.Succeed()
	})
	tk.Perform(Go, func(o Outcome) {
		if calls.Add(1) == 1 {
			if !o.Succeeded() {
				t.Errorf("first outcome = %v, want success", o.Err)
			}
			close(done)
		}
	})

	<-done
	time.Sleep(20 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("handler calls = %d, want 1", got)
	}
}

func TestFromFunc(t *testing.T) {
	tests := []struct {
		name    string
		fn      func() error
		wantErr bool
	}{
		{name: "nil error succeeds", fn: func() error { return nil }},
		{name: "error fails", fn: func() error { return errors.New("bad") }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := waitOutcome(t, Go, FromFunc(tt.fn))
			if (o.Err != nil) != tt.wantErr {
				t.Errorf("Err = %v, wantErr %v", o.Err, tt.wantErr)
			}
		})
	}
}

func TestPanicBecomesFailure(t *testing.T) {
	o := waitOutcome(t, Go, FromFunc(func() error { panic("kaboom") }))
	if !errors.Is(o.Err, ErrPanic) {
		t.Errorf("Err = %v, want ErrPanic", o.Err)
	}
}

func TestHandlerPanicPropagatesInline(t *testing.T) {
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		New(func(c *Controller) { c.Succeed() }).Perform(Inline, func(Outcome) {
			panic("handler bug")
		})
	}()
	if recovered != "handler bug" {
		t.Errorf("recovered = %v, want handler bug", recovered)
	}
}

func TestInlineBodyPanicBeforeCompletion(t *testing.T) {
	var got Outcome
	calls := 0
	New(func(c *Controller) { panic("early") }).Perform(Inline, func(o Outcome) {
		calls++
		got = o
	})
	if calls != 1 {
		t.Fatalf("handler calls = %d, want 1", calls)
	}
	if !errors.Is(got.Err, ErrPanic) {
		t.Errorf("Err = %v, want ErrPanic", got.Err)
	}
}

func TestNilTask(t *testing.T) {
	var tk *Task
	o := waitOutcome(t, Go, tk)
	if !errors.Is(o.Err, ErrNilTask) {
		t.Errorf("Err = %v, want ErrNilTask", o.Err)
	}
}

func TestHandlerRunsOnExecutor(t *testing.T) {
	var submissions atomic.Int32
	exec := ExecutorFunc(func(fn func()) {
		submissions.Add(1)
		go fn()
	})

	if err := Wait(exec, New(func(c *Controller) { c.Succeed() })); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	// One submission for the body and one for the handler.
	if got := submissions.Load(); got != 2 {
		t.Errorf("submissions = %d, want 2", got)
	}
}

func TestWait(t *testing.T) {
	want := errors.New("fail")
	if err := Wait(Inline, FromFunc(func() error { return want })); !errors.Is(err, want) {
		t.Errorf("Wait = %v, want %v", err, want)
	}
	if err := Wait(nil, FromFunc(func() error { return nil })); err != nil {
		t.Errorf("Wait = %v, want nil", err)
	}
}

func TestPerformTwiceRunsBodyTwice(t *testing.T) {
	var runs atomic.Int32
	tk := FromFunc(func() error {
		runs.Add(1)
		return nil
	})

	var wg sync.WaitGroup
	wg.Add(2)
	tk.Perform(Go, func(Outcome) { wg.Done() })
	tk.Perform(Go, func(Outcome) { wg.Done() })
	wg.Wait()

	if got := runs.Load(); got != 2 {
		t.Errorf("runs = %d, want 2", got)
	}
}
