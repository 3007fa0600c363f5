// Package engine is the boundary to the underlying secp256k1 cryptographic
// library. It exposes the capability set the public wrapper relies on: opaque
// randomized handles with clone/destroy semantics, secret-key validation,
// public-key derivation, parsing and serialization, ECDSA sign/verify over a
// 32-byte digest, and DER/compact signature codecs.
//
// The package is backed by the pure-Go implementation in
// github.com/decred/dcrd/dcrec/secp256k1/v4. Callers treat everything here as
// a black box; none of the curve arithmetic leaks out.
package engine
