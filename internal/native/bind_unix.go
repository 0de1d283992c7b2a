//go:build darwin || freebsd || linux

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// newInvoker registers a concrete Go function type against the symbol
// address and wraps it into the uniform invoker shape. Signatures are
// dispatched by shape: each array argument expands to a (pointer, length)
// pair, each scalar passes a float64 by value, and every operation returns
// a single float64.
func newInvoker(addr uintptr, sig CallSignature) (invoker, error) {
	switch sig.shape() {
	case "a":
		var fn func(uintptr, uintptr) float64
		purego.RegisterFunc(&fn, addr)
		return func(p, n []uintptr, s []float64) float64 {
			return fn(p[0], n[0])
		}, nil
	case "s":
		var fn func(float64) float64
		purego.RegisterFunc(&fn, addr)
		return func(p, n []uintptr, s []float64) float64 {
			return fn(s[0])
		}, nil
	case "ss":
		var fn func(float64, float64) float64
		purego.RegisterFunc(&fn, addr)
		return func(p, n []uintptr, s []float64) float64 {
			return fn(s[0], s[1])
		}, nil
	case "as":
		var fn func(uintptr, uintptr, float64) float64
		purego.RegisterFunc(&fn, addr)
		return func(p, n []uintptr, s []float64) float64 {
			return fn(p[0], n[0], s[0])
		}, nil
	case "asss":
		var fn func(uintptr, uintptr, float64, float64, float64) float64
		purego.RegisterFunc(&fn, addr)
		return func(p, n []uintptr, s []float64) float64 {
			return fn(p[0], n[0], s[0], s[1], s[2])
		}, nil
	default:
		return nil, fmt.Errorf("unsupported signature shape %q", sig.shape())
	}
}
