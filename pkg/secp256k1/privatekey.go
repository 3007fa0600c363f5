package secp256k1

import (
	"fmt"
	"runtime"

	"github.com/keysig/secp256k1-go/internal/engine"
)

// PrivateKeySize is the exact length of raw private key material.
const PrivateKeySize = engine.SecretKeySize

// PrivateKey holds 32 immutable secret bytes validated as a curve scalar in
// [1, N-1], plus a private clone of the engine handle of the Context that
// created it. The secret bytes are exposed read-only through Bytes for
// serialization; they must never be written to logs or error messages.
type PrivateKey struct {
	data   [PrivateKeySize]byte
	handle *engine.Handle
}

// GeneratePrivateKey draws 32 bytes from the Context's random source and
// constructs a validated private key from them.
func GeneratePrivateKey(c *Context) (*PrivateKey, error) {
	if c == nil || c.handle == nil {
		return nil, opError("GeneratePrivateKey", ErrContextClosed)
	}
	buf, err := c.random.Generate(PrivateKeySize)
	if err != nil {
		return nil, err
	}
	defer ZeroizeBytes(buf)
	return NewPrivateKey(c, buf)
}

// NewPrivateKey constructs a private key from exactly 32 bytes of secret
// material. The bytes must encode a valid curve scalar; validation is
// delegated to the engine. The input slice is copied, never retained.
func NewPrivateKey(c *Context, data []byte) (*PrivateKey, error) {
	if c == nil || c.handle == nil {
		return nil, opError("NewPrivateKey", ErrContextClosed)
	}
	if len(data) != PrivateKeySize {
		return nil, opError("NewPrivateKey", fmt.Errorf("%w: data must be %d bytes, got %d", ErrInvalidPrivateKey, PrivateKeySize, len(data)))
	}
	if !c.handle.VerifySecretKey(data) {
		return nil, opError("NewPrivateKey", fmt.Errorf("%w: value outside curve order range", ErrInvalidPrivateKey))
	}

	k := &PrivateKey{handle: c.handle.Clone()}
	copy(k.data[:], data)
	runtime.SetFinalizer(k, func(k *PrivateKey) { _ = k.Close() })
	return k, nil
}

// Bytes returns a defensive copy of the 32 secret bytes, or nil if the key
// has been closed.
func (k *PrivateKey) Bytes() []byte {
	if k == nil || k.handle == nil {
		return nil
	}
	out := make([]byte, PrivateKeySize)
	copy(out, k.data[:])
	return out
}

// Close zeroizes the secret bytes and destroys the key's engine handle. It
// is safe to call more than once. After Close the key must not be used.
func (k *PrivateKey) Close() error {
	if k == nil || k.handle == nil {
		return nil
	}
	ZeroizeBytes(k.data[:])
	k.handle.Destroy()
	k.handle = nil
	runtime.SetFinalizer(k, nil)
	return nil
}
