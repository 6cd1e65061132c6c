// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plugins

// Uppercaser maps ASCII letters a-z to A-Z, leaving every other byte
// unchanged. It never fails.
func Uppercaser(input string) (string, bool) {
	out := []byte(input)
	for i, b := range out {
		if b >= 'a' && b <= 'z' {
			out[i] = b - ('a' - 'A')
		}
	}
	return string(out), true
}
