package engine

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

const (
	// DigestSize is the length of the message digest signed and verified.
	DigestSize = 32

	// CompactSigSize is the length of the raw r||s signature serialization.
	CompactSigSize = 64

	// derScratchSize mirrors the scratch buffer used when serializing DER
	// signatures. secp256k1 DER signatures never exceed 72 bytes, so the
	// overflow branch is unreachable in practice.
	derScratchSize = 512
)

var (
	// ErrInvalidSignature is returned when DER or compact bytes do not
	// decode to a signature.
	ErrInvalidSignature = errors.New("engine: invalid signature encoding")

	// ErrBadDigest is returned when the digest is not DigestSize bytes.
	ErrBadDigest = errors.New("engine: digest must be 32 bytes")

	// ErrSerializationOverflow is returned when a serialized signature
	// would not fit the scratch buffer.
	ErrSerializationOverflow = errors.New("engine: signature exceeds scratch buffer")
)

// Signature is an opaque ECDSA (r, s) pair. Values are normalized at
// construction; both serializations are pure functions of the stored pair.
type Signature struct {
	r secp256k1.ModNScalar
	s secp256k1.ModNScalar
}

// SignDigest produces a deterministic (RFC 6979) ECDSA signature over a
// 32-byte digest. The secret key must satisfy VerifySecretKey.
func (h *Handle) SignDigest(key, digest []byte) (*Signature, error) {
	if err := h.usable(FlagSign); err != nil {
		return nil, err
	}
	if len(digest) != DigestSize {
		return nil, ErrBadDigest
	}
	if !h.VerifySecretKey(key) {
		return nil, ErrInvalidSecretKey
	}
	priv := secp256k1.PrivKeyFromBytes(key)
	defer priv.Zero()
	sig := ecdsa.Sign(priv, digest)
	return &Signature{r: sig.R(), s: sig.S()}, nil
}

// VerifyDigest reports whether sig is a valid signature over digest for the
// given public key. Signatures with s above half the curve order never
// verify. It never returns an error; malformed inputs verify as false.
func (h *Handle) VerifyDigest(sig *Signature, digest []byte, pk *PublicKey) bool {
	if h.usable(FlagVerify) != nil {
		return false
	}
	if sig == nil || pk == nil || pk.point == nil || len(digest) != DigestSize {
		return false
	}
	// An s in the upper half of the curve order is the malleable twin of its
	// low-S form and never verifies.
	if sig.s.IsOverHalfOrder() {
		return false
	}
	return ecdsa.NewSignature(&sig.r, &sig.s).Verify(digest, pk.point)
}

// ParseDERSignature decodes a DER-encoded ECDSA signature.
func (h *Handle) ParseDERSignature(data []byte) (*Signature, error) {
	if err := h.usable(0); err != nil {
		return nil, err
	}
	parsed, err := ecdsa.ParseDERSignature(data)
	if err != nil {
		return nil, ErrInvalidSignature
	}
	return &Signature{r: parsed.R(), s: parsed.S()}, nil
}

// ParseCompactSignature decodes exactly 64 raw bytes as r||s. Each half must
// encode a value below the curve order.
func (h *Handle) ParseCompactSignature(data []byte) (*Signature, error) {
	if err := h.usable(0); err != nil {
		return nil, err
	}
	if len(data) != CompactSigSize {
		return nil, ErrInvalidSignature
	}
	var sig Signature
	if overflow := sig.r.SetByteSlice(data[:32]); overflow {
		return nil, ErrInvalidSignature
	}
	if overflow := sig.s.SetByteSlice(data[32:]); overflow {
		return nil, ErrInvalidSignature
	}
	return &sig, nil
}

// SerializeDER encodes the signature in DER form. The result is freshly
// allocated on each call. The encoder always emits the low-S form: an s above
// half the curve order serializes as its negation, so for such a value the
// DER output and the compact output encode different s bytes.
func (h *Handle) SerializeDER(sig *Signature) ([]byte, error) {
	if err := h.usable(0); err != nil {
		return nil, err
	}
	if sig == nil {
		return nil, ErrInvalidSignature
	}
	der := ecdsa.NewSignature(&sig.r, &sig.s).Serialize()
	if len(der) > derScratchSize {
		return nil, ErrSerializationOverflow
	}
	return der, nil
}

// SerializeCompact encodes the signature as the fixed 64-byte r||s pair.
func (h *Handle) SerializeCompact(sig *Signature) ([]byte, error) {
	if err := h.usable(0); err != nil {
		return nil, err
	}
	if sig == nil {
		return nil, ErrInvalidSignature
	}
	var rBytes, sBytes [32]byte
	sig.r.PutBytes(&rBytes)
	sig.s.PutBytes(&sBytes)
	out := make([]byte, CompactSigSize)
	copy(out[:32], rBytes[:])
	copy(out[32:], sBytes[:])
	return out, nil
}
