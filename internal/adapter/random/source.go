package random

import (
	crand "crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// entropy draws every value straight from the operating system, so there is
// no state to seed, predict or lock.
type entropy struct{}

func (entropy) Uint64() uint64 {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// NewSecure returns a generator fed by crypto/rand. Safe for concurrent use.
func NewSecure() *mrand.Rand {
	return mrand.New(entropy{})
}

// NewSeeded returns a reproducible generator for tests/DI.
func NewSeeded(seed1, seed2 uint64) *mrand.Rand {
	return mrand.New(mrand.NewPCG(seed1, seed2))
}
