// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stagelog adapts a stage's diagnostic output onto
// github.com/joeycumines/logiface, the structured-logging facade used
// elsewhere in this corpus, rendering plain "[LEVEL][stage] - message"
// lines instead of the JSON a facade-backed writer more commonly produces.
package stagelog

import (
	"fmt"

	"github.com/joeycumines/logiface"
)

type (
	// event is this package's logiface.Event implementation. A pipeline
	// stage needs no structured fields beyond the rendered message, so
	// unlike a general-purpose writer (e.g. logiface-stumpy's JSON Event)
	// it buffers only the final text line.
	event struct {
		unimplementedEvent

		lvl  logiface.Level
		name string
		line string
	}

	//lint:ignore U1000 embedded for its methods
	unimplementedEvent = logiface.UnimplementedEvent
)

func (e *event) Level() logiface.Level {
	return e.lvl
}

// AddField renders an arbitrary key/value pair in the same "key=value"
// form every optional Add* method below falls back to.
func (e *event) AddField(key string, val any) {
	e.appendField(key, fmt.Sprint(val))
}

func (e *event) AddMessage(msg string) bool {
	e.line = fmt.Sprintf("[%s][%s] - %s", levelTag(e.lvl), e.name, msg)
	return true
}

func (e *event) AddError(err error) bool {
	if err != nil {
		e.appendField("err", err.Error())
	}
	return true
}

func (e *event) AddString(key string, val string) bool {
	e.appendField(key, val)
	return true
}

func (e *event) AddInt(key string, val int) bool {
	e.appendField(key, fmt.Sprint(val))
	return true
}

func (e *event) AddInt64(key string, val int64) bool {
	e.appendField(key, fmt.Sprint(val))
	return true
}

func (e *event) appendField(key, val string) {
	e.line += fmt.Sprintf(" %s=%s", key, val)
}

func levelTag(lvl logiface.Level) string {
	switch {
	case lvl <= logiface.LevelError:
		return "ERROR"
	case lvl <= logiface.LevelWarning:
		return "WARN"
	case lvl <= logiface.LevelInformational:
		return "INFO"
	default:
		return "DEBUG"
	}
}
