// Package native contains the foreign-function bridge to the imgal shared
// library.
//
// # Design Principles
//
// 1. Isolation: ALL dynamic-loader and raw-memory code lives in this package.
//    No other package should import purego or touch native memory. Public
//    callers go through pkg/imgal, which only forwards typed arguments.
//
// 2. One-time initialization: the library is extracted, loaded and bound
//    exactly once per process. Concurrent first callers block until the
//    winner finishes and then observe the same outcome, success or failure.
//    A failed initialization is cached and re-surfaced on every later call.
//
// 3. Data-driven binding: the operation catalog is a table of symbol names
//    and call signatures, resolved eagerly as a unit so that an
//    artifact/catalog mismatch fails at startup rather than on first use.
//
// 4. Memory Management: array arguments cross the boundary through a scoped
//    arena allocated per invocation and released on every exit path,
//    including panics. Native code never sees Go-managed memory.
//
// 5. No retries: native routines are assumed to be deterministic numeric
//    kernels. The bridge is a thin conduit; retry policy belongs to callers.
//
// # Threading
//
// After initialization the bridge is read-only shared state. Each invocation
// owns its arena, so concurrent calls never contend on native memory.
package native
