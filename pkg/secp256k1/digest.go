package secp256k1

import (
	sha256 "github.com/minio/sha256-simd"
)

// DigestSize is the length of the SHA-256 digest that is actually signed and
// verified in place of the raw message.
const DigestSize = sha256.Size

// digestMessage computes the 32-byte SHA-256 digest of a message. Every sign
// and verify call hashes first; the engine never sees the raw message.
func digestMessage(message []byte) [DigestSize]byte {
	return sha256.Sum256(message)
}
