package secp256k1

import (
	"fmt"
	"runtime"

	"github.com/keysig/secp256k1-go/internal/engine"
)

// Serialized public key sizes, tag byte included.
const (
	CompressedPublicKeySize   = engine.CompressedPubKeySize
	UncompressedPublicKeySize = engine.UncompressedPubKeySize
)

// PublicKey wraps an opaque curve point together with a private clone of the
// engine handle of the Context that produced it. Both serializations are
// recomputed on each call; they are pure functions of the stored point.
type PublicKey struct {
	point  *engine.PublicKey
	handle *engine.Handle
}

// NewPublicKey derives the public key for priv's secret bytes engine-side.
// Derivation always succeeds for a valid, open private key.
func NewPublicKey(c *Context, priv *PrivateKey) (*PublicKey, error) {
	if c == nil || c.handle == nil {
		return nil, opError("NewPublicKey", ErrContextClosed)
	}
	if priv == nil || priv.handle == nil {
		return nil, opError("NewPublicKey", ErrClosed)
	}
	point, err := c.handle.DerivePublicKey(priv.data[:])
	if err != nil {
		return nil, opError("NewPublicKey", fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err))
	}
	return newPublicKey(c, point), nil
}

// newPublicKey wraps an already-parsed point with a cloned handle and a
// finalizer safety net.
func newPublicKey(c *Context, point *engine.PublicKey) *PublicKey {
	k := &PublicKey{point: point, handle: c.handle.Clone()}
	runtime.SetFinalizer(k, func(k *PublicKey) { _ = k.Close() })
	return k
}

// Compressed returns the 33-byte compressed serialization of the point: a
// tag byte (0x02 or 0x03) followed by the x-coordinate.
func (k *PublicKey) Compressed() ([]byte, error) {
	if k == nil || k.handle == nil {
		return nil, opError("Compressed", ErrClosed)
	}
	out, err := k.handle.SerializePublicKey(k.point, true)
	if err != nil {
		return nil, opError("Compressed", err)
	}
	return out, nil
}

// Uncompressed returns the 65-byte uncompressed serialization of the point:
// tag byte 0x04 followed by the x and y coordinates.
func (k *PublicKey) Uncompressed() ([]byte, error) {
	if k == nil || k.handle == nil {
		return nil, opError("Uncompressed", ErrClosed)
	}
	out, err := k.handle.SerializePublicKey(k.point, false)
	if err != nil {
		return nil, opError("Uncompressed", err)
	}
	return out, nil
}

// Close destroys the key's engine handle. It is safe to call more than once.
func (k *PublicKey) Close() error {
	if k == nil || k.handle == nil {
		return nil
	}
	k.handle.Destroy()
	k.handle = nil
	k.point = nil
	runtime.SetFinalizer(k, nil)
	return nil
}
