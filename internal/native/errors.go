package native

import "errors"

var (
	// ErrResourceMissing indicates the embedded library payload could not be
	// found and no override path was configured.
	ErrResourceMissing = errors.New("native: embedded library payload not found")

	// ErrIOFailure indicates the payload could not be materialized on disk.
	ErrIOFailure = errors.New("native: artifact extraction failed")

	// ErrLoadFailure indicates the dynamic loader rejected the artifact.
	// This is fatal for the process; the bridge never retries a load.
	ErrLoadFailure = errors.New("native: library load failed")

	// ErrSymbolNotFound indicates a catalog entry has no matching export in
	// the loaded artifact. This signals an artifact/catalog mismatch and is
	// fatal at initialization time.
	ErrSymbolNotFound = errors.New("native: symbol not found")

	// ErrSignatureMismatch indicates an invocation whose argument list does
	// not match the bound call signature. This is a programmer error and is
	// reported before any native memory is touched.
	ErrSignatureMismatch = errors.New("native: call signature mismatch")

	// ErrNativeCallFailure indicates a fault during one specific invocation.
	// It is local to that call and does not invalidate the bridge.
	ErrNativeCallFailure = errors.New("native: native call failed")

	// ErrUnsupportedPlatform indicates the current OS has no dynamic loader
	// support wired in.
	ErrUnsupportedPlatform = errors.New("native: platform not supported")
)
