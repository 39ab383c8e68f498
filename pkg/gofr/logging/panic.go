package logging

import (
	"fmt"
	"runtime/debug"
)

type panicEntry struct {
	Error      string `json:"error"`
	StackTrace string `json:"stack_trace"`
}

// LogPanic logs a value returned by recover together with the stack of the panicking goroutine.
// It has to run in the deferred function that recovered. A nil value logs nothing.
func LogPanic(recovered any, l interface{ Error(args ...any) }) {
	if recovered == nil || l == nil {
		return
	}

	l.Error(panicEntry{Error: fmt.Sprint(recovered), StackTrace: string(debug.Stack())})
}
