// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plugins

// Flipper reverses the byte order of input. It never fails; the reverse
// of the empty string is the empty string.
func Flipper(input string) (string, bool) {
	out := make([]byte, len(input))
	for i := 0; i < len(input); i++ {
		out[len(input)-1-i] = input[i]
	}
	return string(out), true
}
