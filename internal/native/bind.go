package native

import "fmt"

// invoker is the uniform shape every bind-time trampoline is wrapped into.
// Array arguments arrive as parallel pointer/length slices, scalar
// arguments as a float64 slice, each in signature order.
type invoker func(ptrs, lens []uintptr, scalars []float64) float64

// CallHandle is a resolved, invocable binding of a CallSignature to one
// exported symbol. Handles are valid for the process lifetime of their
// parent library and must only be invoked with matching argument shapes.
type CallHandle struct {
	name string
	sig  CallSignature
	fn   invoker
}

// Name returns the bound symbol name.
func (h *CallHandle) Name() string { return h.name }

// Signature returns the handle's calling contract.
func (h *CallHandle) Signature() CallSignature { return h.sig }

// bind resolves name in the library's export table and builds its typed
// trampoline. A missing export is fatal: the catalog is fixed at build
// time, so absence means the artifact does not match this version.
func bind(lib uintptr, name string, sig CallSignature) (*CallHandle, error) {
	addr, err := dlsym(lib, name)
	if err != nil {
		return nil, err
	}
	fn, err := newInvoker(addr, sig)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", name, err)
	}
	return &CallHandle{name: name, sig: sig, fn: fn}, nil
}

// bindAll eagerly resolves the whole catalog as a unit. Binding the same
// name twice would return an equivalent handle, but the map makes every
// later lookup a read-only access with no re-resolution.
func bindAll(lib uintptr) (map[string]*CallHandle, error) {
	handles := make(map[string]*CallHandle, len(catalog))
	for _, e := range catalog {
		if _, ok := handles[e.name]; ok {
			continue
		}
		h, err := bind(lib, e.name, e.sig)
		if err != nil {
			return nil, err
		}
		handles[e.name] = h
	}
	return handles, nil
}
