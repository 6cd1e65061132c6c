// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"code.hybscloud.com/atomix"

	"code.hybscloud.com/strmpipe/internal/stagelog"
)

// maxLineSize bounds how large a single newline-delimited line Feed will
// scan. It must comfortably exceed the largest line a caller may submit;
// bufio.Scanner raises ErrTooLong once a token reaches this size without a
// delimiter, so sizing it to exactly the largest expected line leaves no
// room for that line's own trailing newline to also be buffered.
const maxLineSize = 16 * 1024 * 1024

// StageSpec describes one stage in a Pipeline: a name (used only for
// diagnostics) and the TransformFunc it runs.
type StageSpec struct {
	Name      string
	Transform TransformFunc
}

// Pipeline is an ordered chain of Stages, each with its own bounded Queue
// and worker goroutine, linked so that stage i's output feeds stage i+1's
// input. The last stage's output is discarded.
type Pipeline struct {
	stages   []*Stage
	fed      atomix.Int64
	accepted atomix.Int64
	log      *stagelog.Logger
}

// New builds and starts a Pipeline of len(specs) stages, each with an input
// queue of the given capacity. Every stage's worker goroutine is already
// running when New returns; the pipeline is idle until Feed is called.
func New(capacity int, specs []StageSpec) (*Pipeline, error) {
	if len(specs) == 0 {
		return nil, ErrInvalidArgument
	}

	stages := make([]*Stage, len(specs))
	for i, spec := range specs {
		st, err := NewStage(spec.Name, spec.Transform)
		if err != nil {
			return nil, fmt.Errorf("pipeline: stage %d: %w", i, err)
		}
		if err := st.Init(capacity); err != nil {
			return nil, fmt.Errorf("pipeline: stage %d: %w", i, err)
		}
		stages[i] = st
	}
	for i := 0; i < len(stages)-1; i++ {
		stages[i].AttachNext(stages[i+1])
	}

	return &Pipeline{stages: stages, log: stagelog.New("pipeline")}, nil
}

// Submit hands one line to the first stage's input queue, blocking while
// that queue is full.
func (p *Pipeline) Submit(line string) error {
	if IsEnd(line) {
		return ErrInvalidArgument
	}
	p.fed.Add(1)
	if err := p.stages[0].Submit(line); err != nil {
		return err
	}
	p.accepted.Add(1)
	return nil
}

// Feed reads newline-delimited strings from r and submits each to the
// pipeline in order. Reaching the literal line "<END>" stops the scan and
// calls Close instead of submitting it as ordinary payload; reaching EOF
// without ever seeing that line leaves the pipeline running; the caller
// should call Close itself in that case (Run does this automatically).
//
// A line that the first stage's queue rejects (e.g. because the pipeline
// has already been closed) is logged and skipped rather than aborting the
// scan; only a Close failure stops Feed early.
func (p *Pipeline) Feed(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := sc.Text()
		if IsEnd(line) {
			return p.Close()
		}
		if err := p.Submit(line); err != nil {
			p.log.Error("dropping line, submit failed: %v", err)
		}
	}
	return sc.Err()
}

// Close submits the End sentinel to the first stage, initiating an
// orderly, in-order shutdown of every stage in the chain. Calling Close a
// second time (e.g. because Feed already saw a literal "<END>" line) is
// harmless under the sentinel protocol's first-wins policy: it either
// enqueues a second sentinel that the first stage never reads, or, once
// that stage has latched its queue finished, returns ErrQueueFinished,
// which Run treats as a no-op rather than a failure.
func (p *Pipeline) Close() error {
	return p.stages[0].Submit(End)
}

// Join blocks until every stage has observed and propagated the End
// sentinel, then finalizes each stage's queue in order. It returns the
// first finalization error encountered, if any, after attempting to
// finalize every stage.
func (p *Pipeline) Join() error {
	for _, st := range p.stages {
		st.WaitFinished()
	}
	var firstErr error
	for _, st := range p.stages {
		if err := st.Finalize(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Run is a convenience that Feeds r, ensures the End sentinel has been
// sent, and Joins the pipeline.
func (p *Pipeline) Run(r io.Reader) error {
	if err := p.Feed(r); err != nil {
		return err
	}
	if err := p.Close(); err != nil && !errors.Is(err, ErrQueueFinished) {
		return err
	}
	return p.Join()
}

// Fed returns the number of lines submitted to the pipeline so far
// (including lines whose Submit call subsequently failed).
func (p *Pipeline) Fed() int64 {
	return p.fed.Load()
}

// Accepted returns the number of lines successfully accepted by the first
// stage's queue so far.
func (p *Pipeline) Accepted() int64 {
	return p.accepted.Load()
}

// StageNames returns the configured names of the pipeline's stages, in
// order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, st := range p.stages {
		names[i] = st.name
	}
	return names
}
