// Package secp256k1 exposes key management, ECDSA signing, and signature
// verification on the secp256k1 curve through a small object model: Context,
// PrivateKey, PublicKey, KeyPair, and Signature.
//
// A Context owns a randomized engine handle and is the unit of thread-safe
// reuse: construction randomizes the handle exactly once, after which the
// same Context may be shared across goroutines for signing, verification,
// and key derivation without locking. Context construction is comparatively
// expensive, so applications should create one Context and reuse it.
//
// Values derived from a Context (private keys, public keys, signatures) each
// carry their own independently cloned engine handle. Closing the Context
// that produced them does not invalidate them.
//
// Signing hashes the message with SHA-256 and signs the 32-byte digest
// deterministically (RFC 6979); verification recomputes the digest and checks
// the signature against it. Signatures whose s value lies in the upper half
// of the curve order never verify: they are the malleable twins of their
// low-S form. Wire formats are fixed: 32-byte raw secrets,
// 33-byte compressed and 65-byte uncompressed public keys, 64-byte compact
// and variable-length DER signatures.
package secp256k1
