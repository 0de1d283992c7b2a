package native

import (
	"fmt"
	"runtime"
)

// Invoke executes one call through the handle:
//
//  1. validate args against the signature, before any native memory moves
//  2. map one arena sized for all array arguments contiguously
//  3. copy each array into its arena region, in signature order
//  4. call through the trampoline, addresses for arrays, values for scalars
//  5. capture the returned scalar
//  6. release the arena unconditionally, panic or not
//
// A fault inside the callee surfaces as ErrNativeCallFailure to this call's
// caller only; the bridge stays usable for sibling calls. No retries.
func (h *CallHandle) Invoke(args ...Value) (float64, error) {
	if err := h.sig.validate(args); err != nil {
		return 0, err
	}

	size := 0
	for _, arg := range args {
		if arg.kind == ArrayArg {
			size += len(arg.array) * 8
		}
	}
	a, err := newArena(size)
	if err != nil {
		return 0, err
	}
	defer a.release()

	ptrs := make([]uintptr, 0, len(args))
	lens := make([]uintptr, 0, len(args))
	scalars := make([]float64, 0, len(args))
	for _, arg := range args {
		switch arg.kind {
		case ArrayArg:
			ptrs = append(ptrs, a.placeFloat64s(arg.array))
			lens = append(lens, uintptr(len(arg.array)))
		case ScalarArg:
			scalars = append(scalars, arg.scalar)
		}
	}

	res, err := h.call(ptrs, lens, scalars)
	runtime.KeepAlive(a)
	return res, err
}

// call runs the trampoline with panic containment so the deferred arena
// release in Invoke always executes and the fault is never swallowed.
func (h *CallHandle) call(ptrs, lens []uintptr, scalars []float64) (res float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = 0
			err = fmt.Errorf("%w: %s: %v", ErrNativeCallFailure, h.name, r)
		}
	}()
	return h.fn(ptrs, lens, scalars), nil
}
