package native

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// LibraryEnv names the environment variable that points the bridge at an
// already-materialized shared library, bypassing payload extraction.
const LibraryEnv = "IMGAL_LIBRARY"

var (
	payloadMu sync.Mutex
	payload   []byte
)

// RegisterPayload installs the embedded shared-library bytes. It is called
// from init in the build-tag-gated embed files; tests use it to install
// synthetic payloads into private locators.
func RegisterPayload(data []byte) {
	payloadMu.Lock()
	payload = data
	payloadMu.Unlock()
}

func registeredPayload() []byte {
	payloadMu.Lock()
	defer payloadMu.Unlock()
	return payload
}

// Locator materializes the native library payload at a filesystem path the
// dynamic loader can open. Extraction runs at most once per Locator; the
// resulting temp file is tracked for best-effort removal at shutdown.
type Locator struct {
	name    string
	payload func() []byte

	mu        sync.Mutex
	override  string
	extracted string
	tempDir   string
}

// NewLocator builds a Locator for the logical library name. The override
// path, when non-empty, short-circuits extraction.
func NewLocator(name, override string, payload func() []byte) *Locator {
	if payload == nil {
		payload = registeredPayload
	}
	return &Locator{name: name, override: override, payload: payload}
}

// setOverride points the locator at an already-materialized library. It has
// no effect once extraction has happened; callers configure before loading.
func (l *Locator) setOverride(path string) {
	l.mu.Lock()
	if l.extracted == "" {
		l.override = path
	}
	l.mu.Unlock()
}

// DefaultLocator resolves the imgal library from IMGAL_LIBRARY or the
// registered embedded payload.
func DefaultLocator() *Locator {
	return NewLocator("imgal", os.Getenv(LibraryEnv), nil)
}

// libFileName returns the platform-appropriate shared library file name.
func (l *Locator) libFileName() string {
	if runtime.GOOS == "darwin" {
		return "lib" + l.name + ".dylib"
	}
	return "lib" + l.name + ".so"
}

// Path returns a readable file path holding the library bytes. A fresh temp
// directory guarantees no pre-existing file is ever overwritten.
func (l *Locator) Path() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.override != "" {
		return l.override, nil
	}
	if l.extracted != "" {
		return l.extracted, nil
	}

	data := l.payload()
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s", ErrResourceMissing, l.libFileName())
	}

	dir, err := os.MkdirTemp("", l.name+"-")
	if err != nil {
		return "", fmt.Errorf("%w: create temp dir: %v", ErrIOFailure, err)
	}
	path := filepath.Join(dir, l.libFileName())
	if err := os.WriteFile(path, data, 0o755); err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("%w: write %s: %v", ErrIOFailure, path, err)
	}

	l.tempDir = dir
	l.extracted = path
	return path, nil
}

// Cleanup removes the extracted artifact. Go has no process-exit hook, so
// long-lived hosts call this on shutdown; the OS temp reaper is the
// backstop for processes that never do.
func (l *Locator) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.tempDir != "" {
		os.RemoveAll(l.tempDir)
		l.tempDir = ""
		l.extracted = ""
	}
}

// CleanupArtifacts removes any artifact extracted by the default bridge.
func CleanupArtifacts() {
	defaultBridge.locator.Cleanup()
}
