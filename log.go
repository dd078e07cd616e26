package k8st

import (
	"log/slog"

	"github.com/projectcalico/k8st/internal/logutil"
)

// SetLogger replaces the package-level logger used by k8st, allowing test
// binaries to route helper output through their own logging setup. The
// provided logger should already carry any desired attributes.
//
// If l is nil, the logger resets to the default: slog.Default() with a
// "component" attribute, re-derived on the next use and then cached. Call
// SetLogger(nil) after slog.SetDefault() to pick up changes.
//
// Safe to call concurrently with other k8st operations; for a strict
// happens-before guarantee, call it in TestMain before m.Run.
func SetLogger(l *slog.Logger) {
	logutil.SetLogger(l)
}
