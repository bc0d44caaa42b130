// Package diag defines the minimal logging seam the interp package uses for
// the spec's §7 "log once per session" UnknownOpcode warnings and other
// recoverable-condition notices: a tiny interface host applications can
// back with whatever logging library they already use, mirroring the
// teacher's internal/gpu.Logger shape.
package diag

import "log"

// Logger is the sink interp writes recoverable-condition notices to. It
// intentionally mirrors the standard library's Printf shape so any logger
// (log.Logger, zap's SugaredLogger, …) satisfies it with at most a thin
// adapter.
type Logger interface {
	Printf(format string, args ...any)
}

// NopLogger discards everything written to it, the default when a host
// application does not care to observe interpreter warnings.
type NopLogger struct{}

// Printf implements Logger by doing nothing.
func (NopLogger) Printf(string, ...any) {}

// StdLogger adapts the standard library's *log.Logger to Logger.
type StdLogger struct {
	L *log.Logger
}

// Printf implements Logger.
func (s StdLogger) Printf(format string, args ...any) {
	if s.L == nil {
		return
	}
	s.L.Printf(format, args...)
}
