//go:build darwin || freebsd || linux

package native

import (
	"testing"
	"unsafe"
)

func TestArenaRoundTrip(t *testing.T) {
	vals := []float64{1.0, 5.0, 10.0}
	a, err := newArena(len(vals) * 8)
	if err != nil {
		t.Fatalf("newArena failed: %v", err)
	}
	defer a.release()

	addr := a.placeFloat64s(vals)
	if addr == 0 {
		t.Fatal("placeFloat64s returned null address")
	}
	if addr%8 != 0 {
		t.Fatalf("address %#x is not 8-byte aligned", addr)
	}

	region := unsafe.Slice((*float64)(unsafe.Pointer(addr)), len(vals))
	for i, v := range vals {
		if region[i] != v {
			t.Errorf("region[%d] = %v, want %v", i, region[i], v)
		}
	}
}

func TestArenaMultipleRegions(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5}
	a, err := newArena((len(x) + len(y)) * 8)
	if err != nil {
		t.Fatalf("newArena failed: %v", err)
	}
	defer a.release()

	px := a.placeFloat64s(x)
	py := a.placeFloat64s(y)
	if py != px+uintptr(len(x)*8) {
		t.Fatalf("regions are not contiguous: %#x then %#x", px, py)
	}

	ry := unsafe.Slice((*float64)(unsafe.Pointer(py)), len(y))
	if ry[0] != 4 || ry[1] != 5 {
		t.Error("second region does not hold its own values")
	}
}

func TestArenaEmptyArray(t *testing.T) {
	a, err := newArena(0)
	if err != nil {
		t.Fatalf("newArena failed: %v", err)
	}
	defer a.release()

	if addr := a.placeFloat64s(nil); addr != 0 {
		t.Errorf("empty array address = %#x, want 0", addr)
	}
}

func TestArenaReleaseAccounting(t *testing.T) {
	liveBefore, totalBefore := ArenaStats()

	a, err := newArena(64)
	if err != nil {
		t.Fatalf("newArena failed: %v", err)
	}

	live, total := ArenaStats()
	if live != liveBefore+1 || total != totalBefore+1 {
		t.Fatalf("after alloc: live %d total %d, want %d and %d", live, total, liveBefore+1, totalBefore+1)
	}

	a.release()
	a.release() // idempotent

	live, _ = ArenaStats()
	if live != liveBefore {
		t.Fatalf("after release: live = %d, want %d", live, liveBefore)
	}
}
