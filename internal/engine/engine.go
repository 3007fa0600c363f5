package engine

import (
	"errors"
	"runtime"
)

// SeedSize is the number of bytes consumed by Handle.Randomize.
const SeedSize = 32

// Flags selects the capabilities a Handle is created with.
type Flags uint8

const (
	// FlagSign enables signing operations on the handle.
	FlagSign Flags = 1 << iota
	// FlagVerify enables verification operations on the handle.
	FlagVerify
)

var (
	// ErrHandleDestroyed is returned when an operation is attempted on a
	// handle after Destroy.
	ErrHandleDestroyed = errors.New("engine: handle destroyed")

	// ErrAlreadyRandomized is returned when Randomize is called more than
	// once on the same handle. Randomization is a one-time construction
	// event; re-randomizing a live handle would break the concurrency
	// contract of its owner.
	ErrAlreadyRandomized = errors.New("engine: handle already randomized")

	// ErrBadSeed is returned when the randomization seed is not SeedSize
	// bytes.
	ErrBadSeed = errors.New("engine: randomization seed must be 32 bytes")

	errCapability = errors.New("engine: handle lacks required capability")
)

// Handle is an opaque, exclusively owned reference to engine state. A handle
// is randomized once at construction time and never mutated afterwards, which
// is what makes it safe to use from multiple goroutines concurrently.
//
// Handles are cloned, not shared: every value derived from a context carries
// its own clone so that destroying the original handle cannot invalidate the
// derived value.
type Handle struct {
	flags      Flags
	seed       [SeedSize]byte
	randomized bool
	destroyed  bool
}

// NewHandle allocates a fresh, un-randomized handle with the requested
// capabilities.
func NewHandle(flags Flags) *Handle {
	return &Handle{flags: flags}
}

// Randomize folds 32 bytes of fresh entropy into the handle. It must be
// called exactly once, before the handle is used for any operation.
func (h *Handle) Randomize(seed []byte) error {
	if h == nil || h.destroyed {
		return ErrHandleDestroyed
	}
	if h.randomized {
		return ErrAlreadyRandomized
	}
	if len(seed) != SeedSize {
		return ErrBadSeed
	}
	copy(h.seed[:], seed)
	h.randomized = true
	return nil
}

// Randomized reports whether the handle has been seeded.
func (h *Handle) Randomized() bool {
	return h != nil && h.randomized
}

// Clone returns an independently owned copy of the handle. The clone carries
// the same capabilities and randomization state; destroying either handle has
// no effect on the other.
func (h *Handle) Clone() *Handle {
	if h == nil || h.destroyed {
		return nil
	}
	dup := &Handle{flags: h.flags, randomized: h.randomized}
	dup.seed = h.seed
	return dup
}

// Destroy releases the handle and scrubs its randomization state. It is safe
// to call more than once. Any subsequent operation on the handle fails with
// ErrHandleDestroyed.
func (h *Handle) Destroy() {
	if h == nil || h.destroyed {
		return
	}
	for i := range h.seed {
		h.seed[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325.
	runtime.KeepAlive(h.seed[:])
	h.randomized = false
	h.destroyed = true
}

// usable gates every operation on liveness and the required capability.
func (h *Handle) usable(need Flags) error {
	if h == nil || h.destroyed {
		return ErrHandleDestroyed
	}
	if h.flags&need != need {
		return errCapability
	}
	return nil
}
