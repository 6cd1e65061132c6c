// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

// Producer is the interface for submitting strings to a stage's input.
//
// Unlike a non-blocking lock-free producer, Submit blocks while its queue
// is full rather than returning an immediate would-block error; see Queue
// for the full contract.
type Producer interface {
	Submit(s string) error
}

// Consumer is the interface for pulling strings out of a queue. Queue
// implements it; Stage itself holds its input as a concrete *Queue.
type Consumer interface {
	Get() (string, error)
}

// Drainer signals that no more Puts will occur on a queue, so a waiting
// consumer that will never see another item can still observe completion.
// Queue implements Drainer via SignalFinished/WaitFinished.
type Drainer interface {
	SignalFinished()
	WaitFinished()
}

var (
	_ Consumer = (*Queue)(nil)
	_ Drainer  = (*Queue)(nil)
	_ Producer = (*Stage)(nil)
)
