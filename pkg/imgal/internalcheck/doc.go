// Package internalcheck holds source-level policy tests for the module.
// The checks parse the codebase with go/packages and fail when a package
// outside internal/native reaches for the dynamic loader or raw native
// memory directly.
package internalcheck
