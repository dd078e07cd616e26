// Package retrier provides the fixed-interval, bounded-attempt retry loop
// shared by the polling helpers (pod-status wait, delete confirmation).
package retrier
