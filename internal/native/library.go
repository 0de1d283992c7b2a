package native

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// State tracks the bridge through its one-way lifecycle. Ready and Failed
// are terminal and hold for the remainder of the process.
type State int32

const (
	StateUnloaded State = iota
	StateLoading
	StateBound
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateBound:
		return "bound"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Bridge owns the loaded library handle and the bound operation catalog.
// Initialization runs exactly once; after that the Bridge is read-only and
// safe for unsynchronized concurrent use. The library is never unloaded;
// its handle is reclaimed at process termination.
type Bridge struct {
	locator *Locator

	once    sync.Once
	state   atomic.Int32
	loads   atomic.Int32 // underlying load attempts, observable in tests
	lib     uintptr
	handles map[string]*CallHandle
	err     error
}

// NewBridge builds an uninitialized Bridge over the given locator. Most
// callers use the package-level Default bridge; tests construct private
// bridges with synthetic locators.
func NewBridge(loc *Locator) *Bridge {
	return &Bridge{locator: loc}
}

var defaultBridge = NewBridge(DefaultLocator())

// Default returns the process-wide bridge instance.
func Default() *Bridge { return defaultBridge }

// State reports the current lifecycle state without triggering a load.
func (b *Bridge) State() State {
	return State(b.state.Load())
}

// LibraryPath returns the resolved artifact path, or "" before a
// successful load.
func (b *Bridge) LibraryPath() string {
	if b.State() != StateReady {
		return ""
	}
	path, _ := b.locator.Path()
	return path
}

// Ready performs the one-time extract/load/bind sequence. Concurrent first
// callers block until the winner finishes; every caller then observes the
// same nil result or the same cached error, with no re-attempts.
func (b *Bridge) Ready() error {
	b.once.Do(b.initialize)
	return b.err
}

func (b *Bridge) initialize() {
	b.loads.Add(1)
	b.state.Store(int32(StateLoading))

	path, err := b.locator.Path()
	if err != nil {
		b.fail(err)
		return
	}

	lib, err := dlopen(path)
	if err != nil {
		b.fail(err)
		return
	}
	b.lib = lib

	handles, err := bindAll(lib)
	if err != nil {
		b.fail(err)
		return
	}
	b.handles = handles
	b.state.Store(int32(StateBound))

	b.state.Store(int32(StateReady))
}

func (b *Bridge) fail(err error) {
	b.err = err
	b.state.Store(int32(StateFailed))
}

// Handle returns the bound call handle for a catalog operation. The catalog
// is fixed, so an unknown name is an initialization-class error.
func (b *Bridge) Handle(op string) (*CallHandle, error) {
	if err := b.Ready(); err != nil {
		return nil, err
	}
	h, ok := b.handles[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not in the operation catalog", ErrSymbolNotFound, op)
	}
	return h, nil
}

// Call resolves op against the catalog and performs one invocation.
func (b *Bridge) Call(op string, args ...Value) (float64, error) {
	h, err := b.Handle(op)
	if err != nil {
		return 0, err
	}
	return h.Invoke(args...)
}

// Call performs one invocation through the default bridge.
func Call(op string, args ...Value) (float64, error) {
	return defaultBridge.Call(op, args...)
}

// Load initializes the default bridge, surfacing any cached failure.
func Load() error {
	return defaultBridge.Ready()
}

// SetLibraryPath points the default bridge at an already-materialized
// library file instead of the embedded payload. It must be called before
// the first Load; afterwards it has no effect.
func SetLibraryPath(path string) {
	defaultBridge.locator.setOverride(path)
}

// LibraryPath reports the artifact path the default bridge loaded from.
func LibraryPath() string {
	return defaultBridge.LibraryPath()
}
