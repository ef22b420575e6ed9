// Package debug provides a tracer for diagnostic messages that are only
// emitted when debugging is enabled.
package debug

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Tracer prefixes every message with the file and line of its caller. A nil
// Tracer, or one without a log function, discards all messages.
type Tracer struct {
	logf func(string, ...interface{})
}

// New creates a Tracer that writes through fn, which should follow
// fmt.Sprintf formatting rules.
func New(fn func(string, ...interface{})) *Tracer {
	return &Tracer{logf: fn}
}

// Enabled reports whether messages are being written.
func (t *Tracer) Enabled() bool {
	return t != nil && t.logf != nil
}

func prefix(step int) string {
	_, file, line, ok := runtime.Caller(2 + step)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d: ", filepath.Base(file), line)
}

// Logf writes a formatted message.
func (t *Tracer) Logf(format string, args ...interface{}) {
	if !t.Enabled() {
		return
	}
	t.logf("%s%s", prefix(0), fmt.Sprintf(format, args...))
}
