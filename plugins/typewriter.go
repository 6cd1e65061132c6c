// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plugins

import (
	"fmt"
	"io"
	"os"
	"time"
)

// typewriterOut is the destination for Typewriter's output. Tests swap it
// to capture output without touching the real os.Stdout, and typewriterDelay
// is shortened in tests so they don't take 100ms per character.
var (
	typewriterOut   io.Writer = os.Stdout
	typewriterDelay           = 100 * time.Millisecond
)

// Typewriter prints "[typewriter] " followed by one character of input at
// a time, each separated by typewriterDelay, then a trailing newline. It
// forwards input unchanged and never fails. The original project's "this
// can cause a traffic jam" warning still applies: a slow typewriter stage
// blocks its upstream the same way any full queue does, by design, not as
// a bug to fix.
func Typewriter(input string) (string, bool) {
	fmt.Fprint(typewriterOut, "[typewriter] ")
	for _, b := range []byte(input) {
		fmt.Fprintf(typewriterOut, "%c", b)
		time.Sleep(typewriterDelay)
	}
	fmt.Fprintln(typewriterOut)
	return input, true
}

// SetTypewriterOutput redirects Typewriter's output to w, for tests,
// returning a func that restores the previous destination.
func SetTypewriterOutput(w io.Writer) (restore func()) {
	prev := typewriterOut
	typewriterOut = w
	return func() { typewriterOut = prev }
}

// SetTypewriterDelay overrides the per-character delay, for tests, returning
// a func that restores the previous delay.
func SetTypewriterDelay(d time.Duration) (restore func()) {
	prev := typewriterDelay
	typewriterDelay = d
	return func() { typewriterDelay = prev }
}
