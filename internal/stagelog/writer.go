// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stagelog

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/joeycumines/logiface"
)

// writer implements both logiface.EventFactory[*event] and
// logiface.Writer[*event], mirroring logiface-stumpy's factory.go pattern:
// one small value plays both roles, since neither needs to carry per-call
// state beyond what the event itself buffers.
type writer struct {
	mu   sync.Mutex
	out  io.Writer
	name string
}

func newWriter(name string, out io.Writer) *writer {
	if out == nil {
		out = os.Stderr
	}
	return &writer{out: out, name: name}
}

func (w *writer) NewEvent(level logiface.Level) *event {
	return &event{lvl: level, name: w.name}
}

func (w *writer) Write(e *event) error {
	if e.line == "" {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintln(w.out, e.line)
	return err
}

// withWriter configures a logiface.Logger[*event] to render plain-text
// lines through out via a writer built by this package, in place of the
// JSON stumpy.WithStumpy produces.
func withWriter(name string, out io.Writer) logiface.Option[*event] {
	w := newWriter(name, out)
	var factory logiface.LoggerFactory[*event]
	return factory.WithOptions(
		factory.WithEventFactory(w),
		factory.WithWriter(w),
	)
}
