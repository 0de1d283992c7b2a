package imgal

var (
	Version     = "v0.0.0-dev"
	UpstreamSHA = "unknown"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-dev.
func WrapperVersion() string {
	return Version
}

// UpstreamVersion returns the pinned upstream imgal commit the embedded
// artifact was built from.
func UpstreamVersion() string {
	return UpstreamSHA
}
