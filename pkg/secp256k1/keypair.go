package secp256k1

import "errors"

// KeyPair aggregates one public and one private key. It performs no
// validation beyond requiring both references and owns no engine handle of
// its own; each inner key manages its own lifetime.
type KeyPair struct {
	PublicKey  *PublicKey
	PrivateKey *PrivateKey
}

// NewKeyPair wraps two previously validated keys. Both must be non-nil.
func NewKeyPair(pub *PublicKey, priv *PrivateKey) (*KeyPair, error) {
	if pub == nil || priv == nil {
		return nil, opError("NewKeyPair", errors.New("both keys must be non-nil"))
	}
	return &KeyPair{PublicKey: pub, PrivateKey: priv}, nil
}
