//go:build !(darwin || freebsd || linux)

package native

// Stub implementations for platforms without dynamic loader support wired
// in. The package compiles but every load attempt reports
// ErrUnsupportedPlatform.

func dlopen(string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func dlsym(uintptr, string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}
