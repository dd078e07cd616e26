package k8st

import "github.com/projectcalico/k8st/internal/sentinel"

// Sentinel errors for error inspection with errors.Is.
// These are immutable constants safe for use in wrapped error chain comparison.
const (
	// ErrStillPresent is returned by DeleteAndConfirm (and CleanNamespaces)
	// when a resource survives all configured confirmation retries.
	ErrStillPresent = sentinel.Error("resource still present after delete")

	// ErrPodNotRunning is returned by CheckPodStatus on the first pod whose
	// phase is not Running.
	ErrPodNotRunning = sentinel.Error("pod not in Running phase")

	// ErrMismatch is returned by AssertSame when the two values are not
	// structurally identical. The wrapping error carries the diff.
	ErrMismatch = sentinel.Error("values are not structurally identical")

	// ErrNoClusterHandle is returned by resource operations invoked before
	// SetUp has acquired a cluster handle.
	ErrNoClusterHandle = sentinel.Error("cluster handle not acquired; call SetUp first")

	// ErrSuiteLockHeld is returned by NewSuite when another suite already
	// holds the exclusive lock for the same cluster context.
	ErrSuiteLockHeld = sentinel.Error("suite lock already held for this cluster")
)
