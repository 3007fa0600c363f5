package secp256k1

import (
	"context"
	"fmt"
	"runtime"

	"github.com/keysig/secp256k1-go/internal/engine"
	"github.com/keysig/secp256k1-go/pkg/secp256k1/logging"
)

// Context owns a randomized engine handle configured for both signing and
// verification. Construction feeds 32 bytes of fresh entropy to the engine's
// randomization routine exactly once; the handle is never mutated afterwards,
// which makes a single Context safe for concurrent use by multiple
// goroutines.
//
// Memory management: call Close when the Context is no longer needed. A
// finalizer is set as a safety net, but relying on it may delay teardown.
// Values produced by a Context carry their own cloned handles and remain
// valid after the Context is closed.
type Context struct {
	handle *engine.Handle
	random RandomSource
	log    logging.Logger
}

// NewContext creates a Context with default configuration. Equivalent to
// NewContextWithConfig(Config{}).
func NewContext() (*Context, error) {
	return NewContextWithConfig(Config{})
}

// NewContextWithConfig creates a Context using the supplied configuration.
// It fails with ErrEntropyUnavailable when the random source cannot produce
// the 32-byte seed and with ErrRandomizationFailed when the engine rejects
// it. Neither failure is retried internally.
func NewContextWithConfig(cfg Config) (*Context, error) {
	seed, err := cfg.random().Generate(engine.SeedSize)
	if err != nil {
		return nil, err
	}
	defer ZeroizeBytes(seed)

	handle := engine.NewHandle(engine.FlagSign | engine.FlagVerify)
	if err := handle.Randomize(seed); err != nil {
		handle.Destroy()
		return nil, opError("NewContext", fmt.Errorf("%w: %v", ErrRandomizationFailed, err))
	}

	c := &Context{handle: handle, random: cfg.random(), log: cfg.logger()}
	runtime.SetFinalizer(c, func(c *Context) { _ = c.Close() })
	c.log.Debug(context.Background(), "context randomized")
	return c, nil
}

// Close destroys the Context's engine handle. It is safe to call more than
// once. Keys and signatures derived from the Context are unaffected; they
// own independent handle clones.
func (c *Context) Close() error {
	if c == nil || c.handle == nil {
		return nil
	}
	c.handle.Destroy()
	c.handle = nil
	runtime.SetFinalizer(c, nil)
	return nil
}

// GenerateKeyPair generates a fresh private key, derives the corresponding
// public key, and returns both as a KeyPair.
func (c *Context) GenerateKeyPair() (*KeyPair, error) {
	if c == nil || c.handle == nil {
		return nil, opError("GenerateKeyPair", ErrContextClosed)
	}
	priv, err := GeneratePrivateKey(c)
	if err != nil {
		return nil, err
	}
	pub, err := NewPublicKey(c, priv)
	if err != nil {
		_ = priv.Close()
		return nil, err
	}
	c.log.Debug(context.Background(), "key pair generated", logging.Redacted("private_key"))
	return NewKeyPair(pub, priv)
}

// KeyPairFromPrivateKey validates externally supplied secret bytes, derives
// the matching public key, and returns both as a KeyPair.
func (c *Context) KeyPairFromPrivateKey(data []byte) (*KeyPair, error) {
	if c == nil || c.handle == nil {
		return nil, opError("KeyPairFromPrivateKey", ErrContextClosed)
	}
	priv, err := NewPrivateKey(c, data)
	if err != nil {
		return nil, err
	}
	pub, err := NewPublicKey(c, priv)
	if err != nil {
		_ = priv.Close()
		return nil, err
	}
	return NewKeyPair(pub, priv)
}

// PublicKeyFromBytes parses a serialized public key. The format is
// self-describing: 33-byte compressed encodings start with tag 0x02 or 0x03,
// the 65-byte uncompressed encoding with tag 0x04.
func (c *Context) PublicKeyFromBytes(data []byte) (*PublicKey, error) {
	if c == nil || c.handle == nil {
		return nil, opError("PublicKeyFromBytes", ErrContextClosed)
	}
	point, err := c.handle.ParsePublicKey(data)
	if err != nil {
		return nil, opError("PublicKeyFromBytes", fmt.Errorf("%w: %v", ErrInvalidPublicKey, err))
	}
	return newPublicKey(c, point), nil
}

// SignatureFromDER parses a DER-encoded ECDSA signature.
func (c *Context) SignatureFromDER(data []byte) (*Signature, error) {
	if c == nil || c.handle == nil {
		return nil, opError("SignatureFromDER", ErrContextClosed)
	}
	sig, err := c.handle.ParseDERSignature(data)
	if err != nil {
		return nil, opError("SignatureFromDER", fmt.Errorf("%w: %v", ErrInvalidSignature, err))
	}
	return newSignature(c, sig), nil
}

// SignatureFromCompact parses exactly 64 raw bytes as an r||s pair. Supplying
// the correct length is the caller's responsibility; any other length fails
// with ErrInvalidSignature.
func (c *Context) SignatureFromCompact(data []byte) (*Signature, error) {
	if c == nil || c.handle == nil {
		return nil, opError("SignatureFromCompact", ErrContextClosed)
	}
	sig, err := c.handle.ParseCompactSignature(data)
	if err != nil {
		return nil, opError("SignatureFromCompact", fmt.Errorf("%w: %v", ErrInvalidSignature, err))
	}
	return newSignature(c, sig), nil
}

// Sign computes the SHA-256 digest of message and produces a deterministic
// ECDSA signature over it using priv's secret bytes and this Context's
// engine. Signing fails only on engine-level nonce failure, which is not
// expected in practice.
func (c *Context) Sign(priv *PrivateKey, message []byte) (*Signature, error) {
	if c == nil || c.handle == nil {
		return nil, opError("Sign", ErrContextClosed)
	}
	if priv == nil || priv.handle == nil {
		return nil, opError("Sign", ErrClosed)
	}
	digest := digestMessage(message)
	sig, err := c.handle.SignDigest(priv.data[:], digest[:])
	if err != nil {
		return nil, opError("Sign", fmt.Errorf("%w: %v", ErrSigningFailed, err))
	}
	return newSignature(c, sig), nil
}

// Verify computes the SHA-256 digest of message and reports whether sig is a
// valid signature over it for pub. Verify never fails: a mismatched or
// malformed combination simply verifies as false, since invalid signature and
// key encodings were already rejected at construction time. A signature with
// s in the upper half of the curve order verifies as false.
func (c *Context) Verify(sig *Signature, pub *PublicKey, message []byte) bool {
	if c == nil || c.handle == nil {
		return false
	}
	if sig == nil || sig.sig == nil || pub == nil || pub.point == nil {
		return false
	}
	digest := digestMessage(message)
	return c.handle.VerifyDigest(sig.sig, digest[:], pub.point)
}
