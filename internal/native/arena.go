package native

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

var (
	arenasLive  atomic.Int64
	arenasTotal atomic.Int64
)

// ArenaStats reports the number of currently live arenas and the total ever
// allocated. The live count must return to zero after every invocation; the
// test harness asserts this for success, fault, and validation-failure
// paths alike.
func ArenaStats() (live, total int64) {
	return arenasLive.Load(), arenasTotal.Load()
}

// arena is a bounded-lifetime native memory region backing the array
// arguments of exactly one invocation. The backing pages come from mmap, so
// the callee never observes Go-managed memory and the Go runtime never
// moves or collects the region. An arena is owned by the call that created
// it and must be released on every exit path.
type arena struct {
	buf      []byte
	off      int
	released bool
}

// newArena maps a region of at least size bytes. A zero size is valid and
// maps nothing; release accounting still applies.
func newArena(size int) (*arena, error) {
	a := &arena{}
	if size > 0 {
		buf, err := mmapAlloc(size)
		if err != nil {
			return nil, fmt.Errorf("%w: arena of %d bytes: %v", ErrNativeCallFailure, size, err)
		}
		a.buf = buf
	}
	arenasLive.Add(1)
	arenasTotal.Add(1)
	return a, nil
}

// placeFloat64s copies vals into the next region of the arena verbatim and
// returns the region's native address. Empty arrays yield a null pointer,
// matching the callee's (pointer, length) convention. Regions are 8-byte
// aligned because the mapping is page-aligned and every placement advances
// by a multiple of 8.
func (a *arena) placeFloat64s(vals []float64) uintptr {
	if len(vals) == 0 {
		return 0
	}
	region := unsafe.Slice((*float64)(unsafe.Pointer(&a.buf[a.off])), len(vals))
	copy(region, vals)
	addr := uintptr(unsafe.Pointer(&a.buf[a.off]))
	a.off += len(vals) * 8
	return addr
}

// release unmaps the region. It is idempotent so a deferred release stays
// safe even when an earlier explicit release already ran.
func (a *arena) release() {
	if a.released {
		return
	}
	a.released = true
	if a.buf != nil {
		mmapFree(a.buf)
		a.buf = nil
	}
	arenasLive.Add(-1)
}
