package secp256k1

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// RandomSource produces cryptographically secure random bytes. It fails
// closed: when the underlying generator cannot vouch for its output, Generate
// returns an error wrapping ErrEntropyUnavailable rather than degraded bytes.
type RandomSource interface {
	Generate(n int) ([]byte, error)
}

// SystemRandom is the default RandomSource, backed by the operating system
// CSPRNG via crypto/rand.
var SystemRandom RandomSource = systemRandom{}

type systemRandom struct{}

func (systemRandom) Generate(n int) ([]byte, error) {
	if n < 0 {
		return nil, opError("Generate", errors.New("byte count must be non-negative"))
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, opError("Generate", fmt.Errorf("%w: %v", ErrEntropyUnavailable, err))
	}
	return buf, nil
}
