// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package pipeline

// RaceEnabled is true when the race detector is active. Timing-sensitive
// tests (e.g. asserting a blocked goroutine burns negligible CPU) use it to
// relax their assertions, since the race detector's instrumentation
// overhead would otherwise produce false failures.
const RaceEnabled = true
