package secp256k1

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/keysig/secp256k1-go/internal/engine"
)

// CompactSignatureSize is the length of the fixed r||s serialization.
const CompactSignatureSize = engine.CompactSigSize

// Signature is an opaque 64-byte ECDSA (r, s) pair produced by signing or
// reconstructed from DER or compact bytes. It is immutable after
// construction and owns a private clone of the engine handle of the Context
// that produced it.
type Signature struct {
	sig    *engine.Signature
	handle *engine.Handle
}

// newSignature wraps an engine signature with a cloned handle and a
// finalizer safety net.
func newSignature(c *Context, sig *engine.Signature) *Signature {
	s := &Signature{sig: sig, handle: c.handle.Clone()}
	runtime.SetFinalizer(s, func(s *Signature) { _ = s.Close() })
	return s
}

// DEREncoded returns the variable-length DER serialization of the signature.
// The encoding always carries the low-S form of the stored value. It fails
// only when the encoding would exceed the engine's scratch buffer,
// which is unreachable in practice: secp256k1 DER signatures never exceed
// 72 bytes.
func (s *Signature) DEREncoded() ([]byte, error) {
	if s == nil || s.handle == nil {
		return nil, opError("DEREncoded", ErrClosed)
	}
	out, err := s.handle.SerializeDER(s.sig)
	if err != nil {
		if errors.Is(err, engine.ErrSerializationOverflow) {
			return nil, opError("DEREncoded", fmt.Errorf("%w: %v", ErrSerializationFailed, err))
		}
		return nil, opError("DEREncoded", err)
	}
	return out, nil
}

// Compact returns the fixed 64-byte r||s serialization of the signature.
func (s *Signature) Compact() ([]byte, error) {
	if s == nil || s.handle == nil {
		return nil, opError("Compact", ErrClosed)
	}
	out, err := s.handle.SerializeCompact(s.sig)
	if err != nil {
		return nil, opError("Compact", err)
	}
	return out, nil
}

// Close destroys the signature's engine handle. It is safe to call more than
// once.
func (s *Signature) Close() error {
	if s == nil || s.handle == nil {
		return nil
	}
	s.handle.Destroy()
	s.handle = nil
	s.sig = nil
	runtime.SetFinalizer(s, nil)
	return nil
}
