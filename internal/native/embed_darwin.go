//go:build imgal_embed && darwin

package native

import _ "embed"

// The payload is produced by the Rust build (cargo build --release) and
// staged here by the release tooling before building with -tags imgal_embed.
//
//go:embed libimgal.dylib
var embeddedLib []byte

func init() {
	RegisterPayload(embeddedLib)
}
