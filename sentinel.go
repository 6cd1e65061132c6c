// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

// End is the distinguished end-of-stream sentinel. It is an in-band control
// token carried through the same Queue as payload strings: forwarded by each
// worker to its downstream before terminating, never passed to a stage's
// TransformFunc, and never a legal payload value.
const End = "<END>"

// IsEnd reports whether s is the end-of-stream sentinel.
func IsEnd(s string) bool {
	return s == End
}
