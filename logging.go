package wlrender

import "log"

// Logger is the leveled sink the renderer and worker pool report degraded
// operation through. *log.Logger already satisfies it; a caller not
// interested in diagnostics can pass NopLogger.
type Logger interface {
	Printf(format string, v ...any)
}

// NopLogger discards everything written to it.
type NopLogger struct{}

// Printf implements Logger.
func (NopLogger) Printf(string, ...any) {}

var _ Logger = NopLogger{}
var _ Logger = (*log.Logger)(nil)
