// Package imgal exposes the imgal native numerical library to Go callers.
// The exported functions are thin typed wrappers: each one forwards its
// arguments to the foreign-function bridge in internal/native, which owns
// library loading, symbol binding and argument marshalling. The native
// library is loaded lazily on first use, or eagerly via Load.
package imgal
