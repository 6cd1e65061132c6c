// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plugins

// Rotator cyclically shifts every byte in input one position to the
// right; the final byte wraps around to the front. It fails for the
// empty string, which has no rightmost byte to rotate.
func Rotator(input string) (string, bool) {
	if len(input) == 0 {
		return "", false
	}
	out := make([]byte, len(input))
	out[0] = input[len(input)-1]
	copy(out[1:], input[:len(input)-1])
	return string(out), true
}
