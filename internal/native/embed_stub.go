//go:build !imgal_embed

package native

// Builds without the imgal_embed tag carry no payload. The bridge then
// resolves the library from IMGAL_LIBRARY or fails with ErrResourceMissing.
// This mirrors development builds where the Rust artifact has not been
// staged yet.
