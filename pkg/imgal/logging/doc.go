// Package logging provides a minimal logging facade for the imgal wrapper.
//
// The Logger interface wraps a subset of log/slog so applications can plug
// in their own implementation for testing or integration with an existing
// logging setup. The default implementation binds to slog.Default().
package logging
