// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"sync"

	"code.hybscloud.com/atomix"

	"code.hybscloud.com/strmpipe/internal/stagelog"
)

// TransformFunc maps one input string to one output string. It returns
// false to suppress the output (the stage produces nothing for this
// input); a true return with an unchanged s is a legal no-op transform.
// TransformFunc is never invoked with the End sentinel.
type TransformFunc func(s string) (out string, ok bool)

// Stage wraps a single TransformFunc in its own worker goroutine and a
// bounded input Queue. A Stage's lifecycle moves through four states:
// uninitialised (zero value, before Init), running (after Init has started
// the worker goroutine), draining (the End sentinel has been submitted but
// not yet fully propagated) and finalized (after a successful Finalize).
//
// The zero value is not usable; construct one with NewStage.
type Stage struct {
	name      string
	transform TransformFunc
	log       *stagelog.Logger

	queue *Queue
	next  *Stage // downstream stage, nil for the terminal stage

	initialized atomix.Bool
	finalized   atomix.Bool
	finalizeMu  sync.Mutex // serializes Finalize so a double call can't both succeed
	done        chan struct{} // closed when the worker goroutine returns
}

// NewStage constructs a Stage with the given name and transform, but does
// not start its worker goroutine; call Init for that.
func NewStage(name string, transform TransformFunc) (*Stage, error) {
	if name == "" || transform == nil {
		return nil, ErrInvalidArgument
	}
	return &Stage{
		name:      name,
		transform: transform,
		log:       stagelog.New(name),
		done:      make(chan struct{}),
	}, nil
}

// Init allocates the stage's input queue with the given capacity and starts
// its worker goroutine. Init may be called at most once per Stage.
func (s *Stage) Init(capacity int) error {
	if s.initialized.Load() {
		return ErrAlreadyInitialized
	}
	q, err := NewQueue(capacity)
	if err != nil {
		return err
	}
	s.queue = q
	s.initialized.Store(true)
	go s.run()
	return nil
}

// AttachNext wires the stage this Stage forwards its output to. It must be
// called before Init's worker goroutine can forward anything downstream,
// i.e. before any Submit call; a nil next marks this Stage terminal (its
// output is discarded after its TransformFunc runs, save for the End
// sentinel, which is simply absorbed).
func (s *Stage) AttachNext(next *Stage) {
	s.next = next
}

// Submit hands s to this stage's input queue, blocking while the queue is
// full. Submitting the End sentinel begins the stage's drain: every item
// submitted beforehand is guaranteed to be processed first, since the
// queue is strict FIFO.
func (s *Stage) Submit(s2 string) error {
	if !s.initialized.Load() {
		return ErrNotInitialized
	}
	if s.finalized.Load() {
		return ErrFinalized
	}
	return s.queue.Put(s2)
}

// WaitFinished blocks until this stage's worker goroutine has observed the
// End sentinel, forwarded it downstream (if there is a downstream stage),
// and is about to exit.
func (s *Stage) WaitFinished() {
	<-s.done
}

// Finalize releases the stage's queue. It must be called after WaitFinished
// has returned; calling it before the worker goroutine has exited, or more
// than once, returns an error.
func (s *Stage) Finalize() error {
	if !s.initialized.Load() {
		return ErrNotInitialized
	}
	s.finalizeMu.Lock()
	defer s.finalizeMu.Unlock()
	if s.finalized.Load() {
		return ErrFinalized
	}
	select {
	case <-s.done:
	default:
		return fmt.Errorf("pipeline: stage %q not yet finished: %w", s.name, ErrQueueBusy)
	}
	if err := s.queue.Close(); err != nil {
		return err
	}
	s.finalized.Store(true)
	return nil
}

// run is the stage's worker goroutine body: pull one item at a time,
// transform it, forward the result downstream, and stop once the End
// sentinel has been seen and relayed.
func (s *Stage) run() {
	defer close(s.done)
	for {
		in, err := s.queue.Get()
		if err != nil {
			// Get never fails for the "queue empty" case; a failure here
			// would indicate a programming error elsewhere in the package.
			s.log.Error("worker aborting: %v", err)
			return
		}

		if IsEnd(in) {
			if s.next != nil {
				if err := s.next.Submit(End); err != nil {
					s.log.Error("failed to forward end sentinel: %v", err)
				}
			}
			s.queue.SignalFinished()
			s.log.Info("drained")
			return
		}

		out, ok := s.transform(in)
		if !ok {
			continue
		}
		if s.next != nil {
			if err := s.next.Submit(out); err != nil {
				s.log.Error("failed to forward output: %v", err)
			}
		}
	}
}
