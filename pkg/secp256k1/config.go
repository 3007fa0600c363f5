package secp256k1

import "github.com/keysig/secp256k1-go/pkg/secp256k1/logging"

// Config carries the knobs threaded through Context construction. The zero
// value selects sensible defaults, so most callers can use NewContext
// directly.
type Config struct {
	// Random supplies entropy for context randomization and private key
	// generation. Nil selects SystemRandom.
	Random RandomSource

	// Logger receives debug-level lifecycle events. Secret material is
	// never passed to it. Nil binds to the process default slog logger.
	Logger logging.Logger
}

func (c Config) random() RandomSource {
	if c.Random == nil {
		return SystemRandom
	}
	return c.Random
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.New(nil)
	}
	return c.Logger
}
