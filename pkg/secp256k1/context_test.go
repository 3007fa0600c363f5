package secp256k1_test

import (
	"encoding/hex"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keysig/secp256k1-go/pkg/secp256k1"
)

// failingRandom simulates an unseeded generator: it fails closed.
type failingRandom struct{}

func (failingRandom) Generate(int) ([]byte, error) {
	return nil, fmt.Errorf("%w: generator not seeded", secp256k1.ErrEntropyUnavailable)
}

// fixedRandom hands out predetermined byte sequences, one per call.
type fixedRandom struct {
	outputs [][]byte
}

func (r *fixedRandom) Generate(n int) ([]byte, error) {
	if len(r.outputs) == 0 {
		return nil, fmt.Errorf("%w: fixture exhausted", secp256k1.ErrEntropyUnavailable)
	}
	out := r.outputs[0]
	r.outputs = r.outputs[1:]
	if len(out) != n {
		return nil, fmt.Errorf("fixture size mismatch: want %d, have %d", n, len(out))
	}
	buf := make([]byte, n)
	copy(buf, out)
	return buf, nil
}

func newTestContext(t *testing.T) *secp256k1.Context {
	t.Helper()
	ctx, err := secp256k1.NewContext()
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx
}

func TestNewContext(t *testing.T) {
	ctx, err := secp256k1.NewContext()
	require.NoError(t, err)
	require.NotNil(t, ctx)

	require.NoError(t, ctx.Close())
	require.NoError(t, ctx.Close())

	_, err = ctx.GenerateKeyPair()
	assert.ErrorIs(t, err, secp256k1.ErrContextClosed)
}

func TestNewContextEntropyFailure(t *testing.T) {
	_, err := secp256k1.NewContextWithConfig(secp256k1.Config{Random: failingRandom{}})
	assert.ErrorIs(t, err, secp256k1.ErrEntropyUnavailable)
}

func TestGenerateKeyPair(t *testing.T) {
	ctx := newTestContext(t)

	pair, err := ctx.GenerateKeyPair()
	require.NoError(t, err)
	require.NotNil(t, pair.PublicKey)
	require.NotNil(t, pair.PrivateKey)

	secret := pair.PrivateKey.Bytes()
	require.Len(t, secret, secp256k1.PrivateKeySize)

	compressed, err := pair.PublicKey.Compressed()
	require.NoError(t, err)
	require.Len(t, compressed, secp256k1.CompressedPublicKeySize)
}

func TestSignAndVerify(t *testing.T) {
	ctx := newTestContext(t)

	pair, err := ctx.GenerateKeyPair()
	require.NoError(t, err)

	sig, err := ctx.Sign(pair.PrivateKey, []byte("abc"))
	require.NoError(t, err)

	assert.True(t, ctx.Verify(sig, pair.PublicKey, []byte("abc")))
	assert.False(t, ctx.Verify(sig, pair.PublicKey, []byte("abd")))
}

func TestVerifyWrongKey(t *testing.T) {
	ctx := newTestContext(t)

	signer, err := ctx.GenerateKeyPair()
	require.NoError(t, err)
	other, err := ctx.GenerateKeyPair()
	require.NoError(t, err)

	msg := []byte("pay 10 to bob")
	sig, err := ctx.Sign(signer.PrivateKey, msg)
	require.NoError(t, err)

	assert.True(t, ctx.Verify(sig, signer.PublicKey, msg))
	assert.False(t, ctx.Verify(sig, other.PublicKey, msg))
}

func TestKeyPairFromPrivateKeyKnownVector(t *testing.T) {
	ctx := newTestContext(t)

	// Well-known secp256k1 test vector.
	secret, err := hex.DecodeString("18e14a7b6a307f426a94f8114701e7c8e774e7f9a47e2c2035db29a206321725")
	require.NoError(t, err)

	pair, err := ctx.KeyPairFromPrivateKey(secret)
	require.NoError(t, err)

	compressed, err := pair.PublicKey.Compressed()
	require.NoError(t, err)
	assert.Equal(t,
		"0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352",
		hex.EncodeToString(compressed))

	uncompressed, err := pair.PublicKey.Uncompressed()
	require.NoError(t, err)
	assert.Equal(t,
		"0450863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352"+
			"2cd470243453a299fa9e77237716103abc11a1df38855ed6f2ee187e9c582ba6",
		hex.EncodeToString(uncompressed))
}

func TestKeyPairFromPrivateKeyRejectsInvalid(t *testing.T) {
	ctx := newTestContext(t)

	_, err := ctx.KeyPairFromPrivateKey(make([]byte, 32))
	assert.ErrorIs(t, err, secp256k1.ErrInvalidPrivateKey)

	_, err = ctx.KeyPairFromPrivateKey([]byte("short"))
	assert.ErrorIs(t, err, secp256k1.ErrInvalidPrivateKey)
}

// TestDerivedValuesSurviveContextClose checks the independent ownership rule:
// values derived from a context stay usable after that context is destroyed.
func TestDerivedValuesSurviveContextClose(t *testing.T) {
	ctx, err := secp256k1.NewContext()
	require.NoError(t, err)

	pair, err := ctx.GenerateKeyPair()
	require.NoError(t, err)

	msg := []byte("outlives its context")
	sig, err := ctx.Sign(pair.PrivateKey, msg)
	require.NoError(t, err)

	compressedBefore, err := pair.PublicKey.Compressed()
	require.NoError(t, err)
	compactBefore, err := sig.Compact()
	require.NoError(t, err)

	require.NoError(t, ctx.Close())

	// Serialization runs on the values' own cloned handles.
	compressedAfter, err := pair.PublicKey.Compressed()
	require.NoError(t, err)
	assert.Equal(t, compressedBefore, compressedAfter)

	uncompressed, err := pair.PublicKey.Uncompressed()
	require.NoError(t, err)
	require.Len(t, uncompressed, secp256k1.UncompressedPublicKeySize)

	compactAfter, err := sig.Compact()
	require.NoError(t, err)
	assert.Equal(t, compactBefore, compactAfter)

	der, err := sig.DEREncoded()
	require.NoError(t, err)
	require.NotEmpty(t, der)

	require.Len(t, pair.PrivateKey.Bytes(), secp256k1.PrivateKeySize)

	// A fresh context can keep signing and verifying with the same keys.
	ctx2 := newTestContext(t)
	sig2, err := ctx2.Sign(pair.PrivateKey, msg)
	require.NoError(t, err)
	assert.True(t, ctx2.Verify(sig2, pair.PublicKey, msg))
	assert.True(t, ctx2.Verify(sig, pair.PublicKey, msg))
}

func TestContextConcurrentUse(t *testing.T) {
	ctx := newTestContext(t)

	pair, err := ctx.GenerateKeyPair()
	require.NoError(t, err)

	const goroutines = 16
	var wg sync.WaitGroup
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			msg := []byte(fmt.Sprintf("message %d", n))
			sig, err := ctx.Sign(pair.PrivateKey, msg)
			if err != nil {
				errs[n] = err
				return
			}
			if !ctx.Verify(sig, pair.PublicKey, msg) {
				errs[n] = fmt.Errorf("goroutine %d: signature did not verify", n)
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
}

func TestGenerateKeyPairDeterministicWithFixedRandom(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	secret, err := hex.DecodeString("18e14a7b6a307f426a94f8114701e7c8e774e7f9a47e2c2035db29a206321725")
	require.NoError(t, err)

	cfg := secp256k1.Config{Random: &fixedRandom{outputs: [][]byte{seed, secret}}}
	ctx, err := secp256k1.NewContextWithConfig(cfg)
	require.NoError(t, err)
	defer func() { _ = ctx.Close() }()

	pair, err := ctx.GenerateKeyPair()
	require.NoError(t, err)
	assert.Equal(t, secret, pair.PrivateKey.Bytes())
}
