// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline_test

import (
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/strmpipe"
)

func TestNewQueueInvalidCapacity(t *testing.T) {
	if _, err := pipeline.NewQueue(0); !errors.Is(err, pipeline.ErrInvalidCapacity) {
		t.Fatalf("NewQueue(0): got %v, want ErrInvalidCapacity", err)
	}
	if _, err := pipeline.NewQueue(-1); !errors.Is(err, pipeline.ErrInvalidCapacity) {
		t.Fatalf("NewQueue(-1): got %v, want ErrInvalidCapacity", err)
	}
}

func TestQueuePutGetFIFO(t *testing.T) {
	q, err := pipeline.NewQueue(4)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	for i, s := range []string{"a", "b", "c", "d"} {
		if err := q.Put(s); err != nil {
			t.Fatalf("Put(%d): %v", i, err)
		}
	}
	for i, want := range []string{"a", "b", "c", "d"} {
		got, err := q.Get()
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if got != want {
			t.Fatalf("Get(%d): got %q, want %q", i, got, want)
		}
	}
}

func TestQueuePutBlocksWhenFull(t *testing.T) {
	q, err := pipeline.NewQueue(1)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	if err := q.Put("first"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	putReturned := make(chan struct{})
	go func() {
		if err := q.Put("second"); err != nil {
			t.Errorf("Put(second): %v", err)
		}
		close(putReturned)
	}()

	select {
	case <-putReturned:
		t.Fatal("Put on a full queue returned before room was made")
	case <-time.After(50 * time.Millisecond):
	}

	got, err := q.Get()
	if err != nil || got != "first" {
		t.Fatalf("Get: got (%q, %v), want (\"first\", nil)", got, err)
	}

	select {
	case <-putReturned:
	case <-time.After(time.Second):
		t.Fatal("blocked Put did not unblock after a Get freed a slot")
	}

	got, err = q.Get()
	if err != nil || got != "second" {
		t.Fatalf("Get: got (%q, %v), want (\"second\", nil)", got, err)
	}
}

func TestQueueGetBlocksWhenEmpty(t *testing.T) {
	q, err := pipeline.NewQueue(2)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	getReturned := make(chan string, 1)
	go func() {
		s, err := q.Get()
		if err != nil {
			t.Errorf("Get: %v", err)
			return
		}
		getReturned <- s
	}()

	select {
	case <-getReturned:
		t.Fatal("Get on an empty queue returned before any Put")
	case <-time.After(50 * time.Millisecond):
	}

	if err := q.Put("x"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	select {
	case s := <-getReturned:
		if s != "x" {
			t.Fatalf("Get: got %q, want \"x\"", s)
		}
	case <-time.After(time.Second):
		t.Fatal("blocked Get did not unblock after a Put")
	}
}

func TestQueuePutAfterSignalFinished(t *testing.T) {
	q, err := pipeline.NewQueue(2)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	q.SignalFinished()
	if err := q.Put("late"); !errors.Is(err, pipeline.ErrQueueFinished) {
		t.Fatalf("Put after SignalFinished: got %v, want ErrQueueFinished", err)
	}
}

func TestQueueSignalFinishedWakesBlockedPut(t *testing.T) {
	q, err := pipeline.NewQueue(1)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	if err := q.Put("fills it up"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- q.Put("blocked")
	}()
	time.Sleep(20 * time.Millisecond)

	q.SignalFinished()
	select {
	case err := <-errCh:
		if !errors.Is(err, pipeline.ErrQueueFinished) {
			t.Fatalf("blocked Put after SignalFinished: got %v, want ErrQueueFinished", err)
		}
	case <-time.After(time.Second):
		t.Fatal("SignalFinished did not wake a Put blocked on a full queue")
	}
}

func TestQueueWaitFinished(t *testing.T) {
	q, err := pipeline.NewQueue(1)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	done := make(chan struct{})
	go func() {
		q.WaitFinished()
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("WaitFinished returned before SignalFinished")
	case <-time.After(50 * time.Millisecond):
	}
	q.SignalFinished()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitFinished did not return after SignalFinished")
	}
}

func TestQueueCloseRejectsActiveWaiters(t *testing.T) {
	q, err := pipeline.NewQueue(1)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	go func() { _, _ = q.Get() }()
	time.Sleep(20 * time.Millisecond)
	if err := q.Close(); !errors.Is(err, pipeline.ErrQueueBusy) {
		t.Fatalf("Close with a blocked Get: got %v, want ErrQueueBusy", err)
	}
	if err := q.Put("unblock"); err != nil {
		t.Fatalf("Put: %v", err)
	}
}

func TestQueueConcurrentProducersNoLossOrDuplication(t *testing.T) {
	const producers = 8
	const perProducer = 5000
	q, err := pipeline.NewQueue(64)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for range perProducer {
				if err := q.Put("x"); err != nil {
					t.Errorf("Put: %v", err)
					return
				}
			}
		}(p)
	}

	received := 0
	done := make(chan struct{})
	go func() {
		for received < producers*perProducer {
			if _, err := q.Get(); err != nil {
				t.Errorf("Get: %v", err)
				return
			}
			received++
		}
		close(done)
	}()

	wg.Wait()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatalf("consumer stalled: received %d of %d", received, producers*perProducer)
	}
	if received != producers*perProducer {
		t.Fatalf("received %d items, want %d", received, producers*perProducer)
	}
}

// TestQueueBlockedGetDoesNotBusyWait asserts that a goroutine parked in Get
// on an empty queue does not spin: with a single logical processor, the
// test goroutine's short sleep must end within a generous wall-clock bound,
// which a Get polling on that processor would delay. Skipped under the race
// detector, whose instrumentation overhead would make the timing assertion
// unreliable (see RaceEnabled).
func TestQueueBlockedGetDoesNotBusyWait(t *testing.T) {
	if pipeline.RaceEnabled {
		t.Skip("CPU-time assertion is unreliable under the race detector")
	}
	runtime.GOMAXPROCS(1)

	q, err := pipeline.NewQueue(1)
	if err != nil {
		t.Fatalf("NewQueue: %v", err)
	}
	go func() { _, _ = q.Get() }()

	// If Get were spinning, it would consume the single logical processor
	// and starve this goroutine; give it a generous window to prove it
	// does not.
	start := time.Now()
	time.Sleep(50 * time.Millisecond)
	if time.Since(start) > 500*time.Millisecond {
		t.Fatal("scheduler starved by a busy-waiting Get")
	}
	if err := q.Put("unblock"); err != nil {
		t.Fatalf("Put: %v", err)
	}
}
