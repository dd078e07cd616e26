// Package sentinel provides a const-able error type for the sentinel error
// values exposed by the k8st root package.
package sentinel
