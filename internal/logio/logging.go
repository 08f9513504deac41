package logio

import (
	"fmt"
	"strings"
)

// Logging is an embeddable trace-logging facility, extracted from the
// teacher's duplicated `type logging struct` (core.go / internals.go) into
// one exported type so internal/vm, internal/interp, and internal/words can
// all embed it instead of re-declaring the same four fields.
type Logging struct {
	LogFn func(mess string, args ...interface{})

	markWidth int
	funcWidth int
	codeWidth int
}

// WithPrefix temporarily prefixes every log line with prefix, returning a
// restore function, mirroring the teacher's withLogPrefix.
func (log *Logging) WithPrefix(prefix string) func() {
	logfn := log.LogFn
	log.LogFn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.LogFn = logfn
	}
}

// Logf logs a mark-tagged, column-aligned trace line. A no-op when LogFn is
// nil, so production VMs pay nothing for tracing.
func (log *Logging) Logf(mark, mess string, args ...interface{}) {
	if log.LogFn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.LogFn("%v %v", mark, mess)
}

// TrackFuncWidth/TrackCodeWidth track the widest function/opcode name seen so far,
// for column alignment in trace output (teacher idiom: internals.go's step
// logging grows vm.funcWidth/vm.codeWidth as it goes).
func (log *Logging) TrackFuncWidth(name string) int {
	if log.funcWidth < len(name) {
		log.funcWidth = len(name)
	}
	return log.funcWidth
}

func (log *Logging) TrackCodeWidth(name string) int {
	if log.codeWidth < len(name) {
		log.codeWidth = len(name)
	}
	return log.codeWidth
}
