// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pipeline provides a multi-stage, in-process string transformation
// engine.
//
// A Pipeline is an ordered chain of Stage values. Each Stage owns a bounded
// Queue, pulls strings from it on its own worker goroutine, applies a
// TransformFunc, and hands the result to the next stage's Submit method.
// Shutdown is driven by an in-band sentinel value (End) that flows through
// every queue in the chain, guaranteeing that every item submitted before
// the sentinel is processed by every stage before the pipeline reports
// completion.
//
// # Quick Start
//
//	p, err := pipeline.New(256, []pipeline.StageSpec{
//	    {Name: "uppercaser", Transform: plugins.Uppercaser},
//	    {Name: "logger", Transform: plugins.Logger},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := p.Run(os.Stdin); err != nil {
//	    log.Fatal(err)
//	}
//
// # Building blocks
//
// Monitor is a sticky-latched condition variable: a Signal delivered before
// any Wait is not lost, which is what lets Queue implement a classic bounded
// producer/consumer buffer without busy-waiting or lost wake-ups.
//
// Queue is a fixed-capacity FIFO of strings built on three Monitors
// (not-full, not-empty, finished). It is safe for many concurrent producers
// and consumers.
//
// Stage wraps one TransformFunc into an independently scheduled worker
// goroutine, exposing Init, Submit, AttachNext, WaitFinished and Finalize.
//
// Pipeline composes a list of Stages into a chain, feeds external input into
// the first stage, propagates the End sentinel, and joins stages in order.
package pipeline
