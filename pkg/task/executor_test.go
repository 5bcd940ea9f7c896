package task

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewPoolSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{name: "explicit", size: 3, want: 3},
		{name: "zero uses GOMAXPROCS", size: 0, want: runtime.GOMAXPROCS(0)},
		{name: "negative uses GOMAXPROCS", size: -1, want: runtime.GOMAXPROCS(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPool(tt.size).Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPoolBoundsConcurrency(t *testing.T) {
	const size = 3
	pool := NewPool(size)

	var running, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			cur := running.Add(1)
			for {
				p := peak.Load()
				if cur <= p || peak.CompareAndSwap(p, cur) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			running.Add(-1)
		})
	}
	wg.Wait()

	if got := peak.Load(); got > size {
		t.Errorf("peak concurrency = %d, want <= %d", got, size)
	}
}

func TestPoolSubmitDoesNotBlock(t *testing.T) {
	pool := NewPool(1)
	block := make(chan struct{})
	pool.Submit(func() { <-block })

	submitted := make(chan struct{})
	go func() {
		pool.Submit(func() {})
		close(submitted)
	}()

	select {
	case <-submitted:
	case <-time.After(time.Second):
		t.Fatal("Submit blocked while pool was full")
	}
	close(block)
}

func TestInlineRunsSynchronously(t *testing.T) {
	ran := false
	Inline.Submit(func() { ran = true })
	if !ran {
		t.Error("Inline.Submit did not run fn before returning")
	}
}
