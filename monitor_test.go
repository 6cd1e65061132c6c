// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline_test

import (
	"testing"
	"time"

	"code.hybscloud.com/strmpipe"
)

func TestMonitorSignalBeforeWait(t *testing.T) {
	m := pipeline.NewMonitor()
	m.Signal()

	done := make(chan struct{})
	go func() {
		m.Wait() // must return immediately: the signal predates this Wait
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked despite a signal delivered before it was called")
	}
}

func TestMonitorWaitThenSignal(t *testing.T) {
	m := pipeline.NewMonitor()
	done := make(chan struct{})
	go func() {
		m.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before Signal was called")
	case <-time.After(50 * time.Millisecond):
	}

	m.Signal()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Signal")
	}
}

func TestMonitorReset(t *testing.T) {
	m := pipeline.NewMonitor()
	m.Signal()
	if !m.Signalled() {
		t.Fatal("Signalled: got false, want true")
	}
	m.Reset()
	if m.Signalled() {
		t.Fatal("Signalled after Reset: got true, want false")
	}

	done := make(chan struct{})
	go func() {
		m.Wait()
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("Wait returned after Reset with no new Signal")
	case <-time.After(50 * time.Millisecond):
	}
	m.Signal()
	<-done
}

func TestMonitorBroadcastsToAllWaiters(t *testing.T) {
	m := pipeline.NewMonitor()
	const n = 8
	done := make(chan struct{}, n)
	for range n {
		go func() {
			m.Wait()
			done <- struct{}{}
		}()
	}
	time.Sleep(20 * time.Millisecond)
	m.Signal()
	for range n {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("not every waiter was woken by a single Signal")
		}
	}
}
