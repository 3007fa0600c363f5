package secp256k1

// Version is the semantic version populated at build time via ldflags. In
// development it defaults to v0.0.0-dev.
var Version = "v0.0.0-dev"

// WrapperVersion returns the version of this wrapper library.
func WrapperVersion() string {
	return Version
}
