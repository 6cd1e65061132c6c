// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import "errors"

// Error kinds returned by this package's operations. They are sentinel
// values, intended to be compared with errors.Is; operations that wrap them
// with additional context do so via fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidArgument indicates a nil/empty/out-of-range argument, e.g. a
	// nil TransformFunc or an empty stage name. A non-positive capacity is
	// reported as ErrInvalidCapacity instead.
	ErrInvalidArgument = errors.New("pipeline: invalid argument")

	// ErrInvalidCapacity indicates a non-positive capacity was supplied to
	// NewQueue or Stage.Init.
	ErrInvalidCapacity = errors.New("pipeline: capacity must be positive")

	// ErrResourceExhausted indicates an allocation failure. Go goroutine
	// creation has no user-visible failure mode, so this is narrower than
	// the original C project's "thread-creation failure" clause: it only
	// covers the one-time slice allocation backing a Queue's ring buffer.
	ErrResourceExhausted = errors.New("pipeline: resource exhausted")

	// ErrNotInitialized indicates an operation on a Stage that has not had
	// Init called successfully.
	ErrNotInitialized = errors.New("pipeline: stage not initialized")

	// ErrAlreadyInitialized indicates a second Init call on a Stage that is
	// already initialized.
	ErrAlreadyInitialized = errors.New("pipeline: stage already initialized")

	// ErrFinalized indicates an operation on a Stage after a successful
	// Finalize call.
	ErrFinalized = errors.New("pipeline: stage finalized")

	// ErrQueueFinished indicates a Put call on a Queue after SignalFinished
	// has already been called.
	ErrQueueFinished = errors.New("pipeline: queue finished")

	// ErrQueueBusy indicates Close was called on a Queue while a producer or
	// consumer was still parked in Put or Get.
	ErrQueueBusy = errors.New("pipeline: queue has active waiters")
)
