//go:build darwin || freebsd || linux

package native

import (
	"errors"
	"testing"
	"unsafe"
)

// fakeHandle builds a CallHandle around a Go function instead of a native
// symbol so marshalling can be exercised without a loaded library.
func fakeHandle(sig CallSignature, fn invoker) *CallHandle {
	return &CallHandle{name: "fake", sig: sig, fn: fn}
}

func TestInvokeMarshalsArrays(t *testing.T) {
	h := fakeHandle(Sig(ArrayArg, ScalarArg), func(p, n []uintptr, s []float64) float64 {
		vals := unsafe.Slice((*float64)(unsafe.Pointer(p[0])), int(n[0]))
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		return sum * s[0]
	})

	got, err := h.Invoke(Array([]float64{1.0, 5.0, 10.0}), Scalar(2.0))
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if got != 32.0 {
		t.Fatalf("result = %v, want 32.0", got)
	}
}

func TestInvokeRejectsBadArityBeforeAllocating(t *testing.T) {
	_, totalBefore := ArenaStats()

	h := fakeHandle(Sig(ArrayArg), func(p, n []uintptr, s []float64) float64 {
		t.Fatal("trampoline must not run on signature mismatch")
		return 0
	})

	_, err := h.Invoke(Array(nil), Scalar(1))
	if !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("err = %v, want ErrSignatureMismatch", err)
	}

	_, total := ArenaStats()
	if total != totalBefore {
		t.Fatal("arena was allocated before signature validation failed")
	}
}

func TestInvokeRejectsBadKind(t *testing.T) {
	h := fakeHandle(Sig(ScalarArg), nil)
	_, err := h.Invoke(Array([]float64{1}))
	if !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("err = %v, want ErrSignatureMismatch", err)
	}
}

func TestInvokeReleasesArenaOnSuccess(t *testing.T) {
	liveBefore, _ := ArenaStats()

	h := fakeHandle(Sig(ArrayArg), func(p, n []uintptr, s []float64) float64 { return 0 })
	if _, err := h.Invoke(Array([]float64{1, 2, 3})); err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}

	if live, _ := ArenaStats(); live != liveBefore {
		t.Fatalf("live arenas = %d, want %d", live, liveBefore)
	}
}

func TestInvokeReleasesArenaOnFault(t *testing.T) {
	liveBefore, _ := ArenaStats()

	h := fakeHandle(Sig(ArrayArg), func(p, n []uintptr, s []float64) float64 {
		panic("native fault")
	})

	_, err := h.Invoke(Array([]float64{1, 2, 3}))
	if !errors.Is(err, ErrNativeCallFailure) {
		t.Fatalf("err = %v, want ErrNativeCallFailure", err)
	}

	if live, _ := ArenaStats(); live != liveBefore {
		t.Fatalf("live arenas = %d, want %d", live, liveBefore)
	}
}

func TestInvokeEmptyArray(t *testing.T) {
	h := fakeHandle(Sig(ArrayArg), func(p, n []uintptr, s []float64) float64 {
		if p[0] != 0 || n[0] != 0 {
			t.Errorf("empty array marshalled as ptr=%#x len=%d", p[0], n[0])
		}
		return 0
	})
	if _, err := h.Invoke(Array(nil)); err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
}

func TestInvokeScalarOrder(t *testing.T) {
	h := fakeHandle(Sig(ArrayArg, ScalarArg, ScalarArg, ScalarArg), func(p, n []uintptr, s []float64) float64 {
		if s[0] != 12.5 || s[1] != 1.0 || s[2] != 0.5 {
			t.Errorf("scalars arrived out of order: %v", s)
		}
		return 0
	})
	_, err := h.Invoke(Array([]float64{9}), Scalar(12.5), Scalar(1.0), Scalar(0.5))
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
}
