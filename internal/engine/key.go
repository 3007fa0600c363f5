package engine

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Serialized public key sizes, tag byte included.
const (
	CompressedPubKeySize   = 33
	UncompressedPubKeySize = 65
)

// SecretKeySize is the exact length of raw secret key material.
const SecretKeySize = 32

var (
	// ErrInvalidSecretKey is returned when secret bytes are zero or not
	// below the curve order.
	ErrInvalidSecretKey = errors.New("engine: secret key out of range")

	// ErrInvalidPublicKey is returned when bytes do not decode to a valid
	// curve point.
	ErrInvalidPublicKey = errors.New("engine: invalid public key encoding")
)

// PublicKey is an opaque parsed curve point. The underlying representation is
// never exposed; callers obtain bytes only through Handle.SerializePublicKey.
type PublicKey struct {
	point *secp256k1.PublicKey
}

// VerifySecretKey reports whether key is exactly 32 bytes encoding a scalar
// in [1, N-1], where N is the curve order.
func (h *Handle) VerifySecretKey(key []byte) bool {
	if h.usable(0) != nil {
		return false
	}
	if len(key) != SecretKeySize {
		return false
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(key)
	valid := !overflow && !s.IsZero()
	s.Zero()
	return valid
}

// DerivePublicKey computes the curve point for the given secret key. The
// secret bytes must already satisfy VerifySecretKey.
func (h *Handle) DerivePublicKey(key []byte) (*PublicKey, error) {
	if err := h.usable(0); err != nil {
		return nil, err
	}
	if !h.VerifySecretKey(key) {
		return nil, ErrInvalidSecretKey
	}
	priv := secp256k1.PrivKeyFromBytes(key)
	defer priv.Zero()
	return &PublicKey{point: priv.PubKey()}, nil
}

// ParsePublicKey decodes a serialized public key. The format is
// self-describing via the leading tag byte: 0x02/0x03 for the 33-byte
// compressed form, 0x04 for the 65-byte uncompressed form.
func (h *Handle) ParsePublicKey(data []byte) (*PublicKey, error) {
	if err := h.usable(0); err != nil {
		return nil, err
	}
	point, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}
	return &PublicKey{point: point}, nil
}

// SerializePublicKey encodes the point in compressed (33-byte) or
// uncompressed (65-byte) form. The result is freshly allocated on each call.
func (h *Handle) SerializePublicKey(pk *PublicKey, compressed bool) ([]byte, error) {
	if err := h.usable(0); err != nil {
		return nil, err
	}
	if pk == nil || pk.point == nil {
		return nil, ErrInvalidPublicKey
	}
	if compressed {
		return pk.point.SerializeCompressed(), nil
	}
	return pk.point.SerializeUncompressed(), nil
}
