package log

import (
	"fmt"
	"io"
)

// Logger writes training progress messages when Verbose is true and
// warnings unconditionally. Output goes to the configured writer
// (typically stderr).
type Logger struct {
	Verbose bool
	W       io.Writer
}

// Printf writes a formatted progress message to W when Verbose is true.
// It is a no-op when Verbose is false.
func (l *Logger) Printf(format string, args ...any) {
	if !l.Verbose {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}

// Warnf writes a formatted warning to W regardless of Verbose.
// Best-effort side outputs (plots, rendered reports) report their
// failures here instead of aborting the session.
func (l *Logger) Warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.W, "warning: "+format+"\n", args...)
}
