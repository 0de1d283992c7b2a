//go:build darwin || freebsd || linux

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// dlopen opens the artifact through the platform dynamic loader. Any loader
// rejection, including an artifact built for the wrong architecture, is
// reported as ErrLoadFailure rather than left to undefined behavior.
func dlopen(path string) (uintptr, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrLoadFailure, path, err)
	}
	if h == 0 {
		return 0, fmt.Errorf("%w: %s", ErrLoadFailure, path)
	}
	return h, nil
}

// dlsym resolves one exported symbol inside a loaded library.
func dlsym(lib uintptr, name string) (uintptr, error) {
	addr, err := purego.Dlsym(lib, name)
	if err != nil || addr == 0 {
		return 0, fmt.Errorf("%w: %s: %v", ErrSymbolNotFound, name, err)
	}
	return addr, nil
}
