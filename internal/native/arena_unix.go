//go:build darwin || freebsd || linux

package native

import "golang.org/x/sys/unix"

func mmapAlloc(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
}

func mmapFree(buf []byte) {
	// Unmap errors are not actionable here; the region is either gone or
	// the process is already in a corrupt state.
	_ = unix.Munmap(buf)
}
