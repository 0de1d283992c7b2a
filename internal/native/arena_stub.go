//go:build !(darwin || freebsd || linux)

package native

func mmapAlloc(int) ([]byte, error) {
	return nil, ErrUnsupportedPlatform
}

func mmapFree([]byte) {}
