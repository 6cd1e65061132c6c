// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

// Builder provides a fluent API for assembling a Pipeline one stage at a
// time, as an alternative to calling New directly with a pre-built
// []StageSpec.
//
// Example:
//
//	p, err := pipeline.NewBuilder(256).
//	    Stage("uppercaser", plugins.Uppercaser).
//	    Stage("logger", plugins.Logger).
//	    Build()
type Builder struct {
	capacity int
	specs    []StageSpec
	err      error
}

// NewBuilder creates a Pipeline builder with the given per-stage queue
// capacity. The capacity is validated lazily, on Build.
func NewBuilder(capacity int) *Builder {
	return &Builder{capacity: capacity}
}

// Stage appends one stage to the pipeline under construction. A nil
// transform or empty name is recorded and surfaces as an error from
// Build, matching Stage/NewStage's own validation.
func (b *Builder) Stage(name string, transform TransformFunc) *Builder {
	if name == "" || transform == nil {
		if b.err == nil {
			b.err = ErrInvalidArgument
		}
		return b
	}
	b.specs = append(b.specs, StageSpec{Name: name, Transform: transform})
	return b
}

// Build constructs and starts the Pipeline. It fails fast with any error
// recorded by an earlier Stage call before attempting construction.
func (b *Builder) Build() (*Pipeline, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(b.capacity, b.specs)
}
