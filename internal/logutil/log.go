package logutil

import (
	"log/slog"
	"sync/atomic"
)

// logger is the custom logger installed via SetLogger, stored as an atomic
// pointer so reads and writes never race. A nil value means no custom logger
// is set and Logger falls back to the cached default.
var logger atomic.Pointer[slog.Logger]

// defaultLogger caches the default-derived logger (slog.Default() with the
// k8st component attribute) so it is not re-created on every Logger call.
// If slog.SetDefault changes after the first Logger call, call
// SetLogger(nil) to clear the cache and pick up the new default.
var defaultLogger atomic.Pointer[slog.Logger]

// Logger returns the current package-level logger. Safe for concurrent use.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := newDefaultLogger()
	// CompareAndSwap so a concurrently cached value is not overwritten.
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	if l2 := defaultLogger.Load(); l2 != nil {
		return l2
	}
	// A concurrent SetLogger cleared the cache between the CAS and the
	// re-load; the locally created logger is still valid.
	return l
}

func newDefaultLogger() *slog.Logger {
	return slog.Default().With("component", "k8st")
}

// SetLogger replaces the package-level logger. Passing nil resets to the
// default, re-derived from slog.Default() on the next Logger call.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
	defaultLogger.Store(nil)
}
