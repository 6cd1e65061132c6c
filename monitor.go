// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import "sync"

// Monitor is a signal-remembering condition variable.
//
// A plain sync.Cond loses a Signal/Broadcast delivered before any goroutine
// is waiting: the waiter parks forever. Monitor fixes this by latching the
// signal in a boolean guarded by the same mutex the condition variable
// waits on, so a signal that arrives before the first Wait is simply
// observed by Wait instead of being missed.
//
// The zero value is not usable; construct one with NewMonitor.
type Monitor struct {
	mu        sync.Mutex
	cond      *sync.Cond
	signalled bool
}

// NewMonitor returns a Monitor in the un-signalled state.
func NewMonitor() *Monitor {
	m := &Monitor{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Signal latches the signalled state and wakes every waiter. It is
// idempotent: repeated calls before a Reset remain equivalent to one.
func (m *Monitor) Signal() {
	m.mu.Lock()
	m.signalled = true
	m.cond.Broadcast()
	m.mu.Unlock()
}

// Reset clears the signalled state. It does not wake anyone.
func (m *Monitor) Reset() {
	m.mu.Lock()
	m.signalled = false
	m.mu.Unlock()
}

// Wait blocks until the Monitor is signalled. If it is already signalled,
// Wait returns immediately. It re-checks the signalled flag in a loop to
// absorb spurious wakeups. Wait does not clear the signalled state on
// return — the latch is sticky until an explicit Reset, so a goroutine that
// calls Wait after the event already happened still observes it.
func (m *Monitor) Wait() {
	m.mu.Lock()
	for !m.signalled {
		m.cond.Wait()
	}
	m.mu.Unlock()
}

// Signalled reports the current latched state without blocking.
func (m *Monitor) Signalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signalled
}
