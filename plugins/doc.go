// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package plugins provides the pipeline's built-in stage transforms.
//
// Every exported function has the pipeline.TransformFunc signature,
// func(string) (string, bool), and is safe for concurrent use by a single
// caller at a time (the pipeline never invokes a stage's transform from
// more than one goroutine concurrently, so none of these functions
// synchronize internally).
package plugins
