package secp256k1

import (
	"errors"
	"fmt"
)

var (
	// ErrEntropyUnavailable indicates the random source failed or reported
	// insufficient entropy.
	ErrEntropyUnavailable = errors.New("secp256k1: entropy unavailable")

	// ErrRandomizationFailed indicates the engine rejected the
	// randomization seed at context construction. It is not retried
	// internally; callers may retry at their discretion.
	ErrRandomizationFailed = errors.New("secp256k1: context randomization failed")

	// ErrInvalidPrivateKey indicates secret bytes of the wrong length or
	// outside the valid curve scalar range.
	ErrInvalidPrivateKey = errors.New("secp256k1: invalid private key")

	// ErrInvalidPublicKey indicates bytes that do not decode to a valid
	// curve point.
	ErrInvalidPublicKey = errors.New("secp256k1: invalid public key encoding")

	// ErrInvalidSignature indicates DER or compact bytes that do not
	// decode to a signature.
	ErrInvalidSignature = errors.New("secp256k1: invalid signature encoding")

	// ErrSigningFailed indicates an engine-level signing failure. With a
	// deterministic nonce this is not expected in practice.
	ErrSigningFailed = errors.New("secp256k1: signing failed")

	// ErrSerializationFailed indicates a serialized signature exceeded its
	// scratch buffer. Unreachable with correctly sized buffers.
	ErrSerializationFailed = errors.New("secp256k1: signature serialization failed")

	// ErrContextClosed indicates an operation on a Context after Close.
	ErrContextClosed = errors.New("secp256k1: context closed")

	// ErrClosed indicates an operation on a key or signature after Close.
	ErrClosed = errors.New("secp256k1: value closed")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("secp256k1.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// opError creates a new Error.
func opError(op string, err error) error {
	return &Error{Op: op, Err: err}
}
