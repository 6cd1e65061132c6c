// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plugins

import (
	"fmt"
	"io"
	"os"
)

// loggerOut is the destination for Logger's stdout line. Tests swap it to
// capture output without touching the real os.Stdout.
var loggerOut io.Writer = os.Stdout

// Logger writes "[logger] <input>" to stdout and forwards input unchanged.
// It never fails.
func Logger(input string) (string, bool) {
	fmt.Fprintf(loggerOut, "[logger] %s\n", input)
	return input, true
}

// SetLoggerOutput redirects Logger's output to w, for tests, returning a
// func that restores the previous destination.
func SetLoggerOutput(w io.Writer) (restore func()) {
	prev := loggerOut
	loggerOut = w
	return func() { loggerOut = prev }
}
