// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plugins

import "code.hybscloud.com/strmpipe"

// Names lists the built-in stages, in the order the original project's
// plugin directory declared them.
var Names = []string{"logger", "typewriter", "uppercaser", "rotator", "flipper", "expander"}

// Lookup returns the TransformFunc registered under name and true, or a nil
// func and false if name is not one of Names.
func Lookup(name string) (pipeline.TransformFunc, bool) {
	switch name {
	case "logger":
		return Logger, true
	case "typewriter":
		return Typewriter, true
	case "uppercaser":
		return Uppercaser, true
	case "rotator":
		return Rotator, true
	case "flipper":
		return Flipper, true
	case "expander":
		return Expander, true
	default:
		return nil, false
	}
}
