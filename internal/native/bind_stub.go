//go:build !(darwin || freebsd || linux)

package native

// Unreachable on stub platforms: dlsym fails before any invoker is built.
func newInvoker(uintptr, CallSignature) (invoker, error) {
	return nil, ErrUnsupportedPlatform
}
