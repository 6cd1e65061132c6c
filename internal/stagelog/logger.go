// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stagelog

import (
	"fmt"
	"io"
	"os"

	"github.com/joeycumines/logiface"
)

// Logger is a thin, stage-scoped facade over a logiface.Logger[*event],
// exposing only the printf-style Info/Error methods a Stage needs.
type Logger struct {
	l *logiface.Logger[*event]
}

// New builds a Logger that tags every line with name and writes to
// os.Stderr. Use NewWithWriter in tests to capture output instead.
func New(name string) *Logger {
	return NewWithWriter(name, os.Stderr)
}

// NewWithWriter builds a Logger that tags every line with name and writes
// to out.
func NewWithWriter(name string, out io.Writer) *Logger {
	var factory logiface.LoggerFactory[*event]
	return &Logger{l: factory.New(withWriter(name, out))}
}

// Info logs a formatted message at informational severity.
func (l *Logger) Info(format string, args ...any) {
	l.l.Info().Log(fmt.Sprintf(format, args...))
}

// Error logs a formatted message at error severity.
func (l *Logger) Error(format string, args ...any) {
	l.l.Err().Log(fmt.Sprintf(format, args...))
}
