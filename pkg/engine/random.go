package engine

import (
	cryptorand "crypto/rand"
	"math/rand/v2"
	"sync"
)

// Chooser is the uniform random source used by the augmenter and the walker.
// IntN returns a value in [0, n); callers never pass n <= 0.
type Chooser interface {
	IntN(n int) int
}

// lockedChooser serializes access to a math/rand generator so one Chooser can
// be shared by concurrent queries.
type lockedChooser struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (c *lockedChooser) IntN(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.IntN(n)
}

// NewSecureChooser returns a ChaCha8 generator seeded from crypto/rand.
func NewSecureChooser() Chooser {
	var seed [32]byte
	_, _ = cryptorand.Read(seed[:])
	return &lockedChooser{rng: rand.New(rand.NewChaCha8(seed))}
}

// NewSeededChooser returns a deterministic generator; equal seeds yield equal sequences.
func NewSeededChooser(seed uint64) Chooser {
	return &lockedChooser{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}
