package imgal

import (
	"context"

	"github.com/imgal/imgal-go/internal/native"
	"github.com/imgal/imgal-go/pkg/imgal/logging"
)

var log = logging.New(nil)

// SetLogger replaces the package logger. Passing nil restores the default
// slog-backed logger.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.New(nil)
	}
	log = l
}

// Load eagerly initializes the native bridge: extract the embedded library,
// open it through the dynamic loader and bind the full operation catalog.
// Load is idempotent and safe to call from any goroutine; a failed
// initialization is cached and returned on every later call. Callers that
// skip Load get the same initialization lazily on first operation.
func Load() error {
	err := native.Load()
	ctx := context.Background()
	if err != nil {
		log.Error(ctx, "imgal native library unavailable", "err", err)
		return OpError("Load", err)
	}
	log.Info(ctx, "imgal native library loaded",
		"path", native.LibraryPath(),
		"operations", len(native.Operations()))
	return nil
}

// LibraryPath reports the shared-library path in use, or "" before a
// successful Load.
func LibraryPath() string {
	return native.LibraryPath()
}

// Operations lists the native operations bound by the bridge.
func Operations() []string {
	return native.Operations()
}

// Cleanup removes the extracted library artifact. Long-lived hosts call it
// on shutdown; the loaded library itself stays mapped until the process
// exits.
func Cleanup() {
	native.CleanupArtifacts()
}
