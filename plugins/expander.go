// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plugins

import "strings"

// Expander inserts a single space between each pair of adjacent bytes in
// input, producing an output of length 2*len(input)-1. It fails for the
// empty string, which has no adjacent bytes to separate.
func Expander(input string) (string, bool) {
	if len(input) == 0 {
		return "", false
	}
	var b strings.Builder
	b.Grow(2*len(input) - 1)
	for i := 0; i < len(input); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(input[i])
	}
	return b.String(), true
}
