// Package logutil holds the package-level slog logger shared by the k8st
// helpers, with atomic replacement so SetLogger is safe at any point.
package logutil
