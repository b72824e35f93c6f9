package generator

import (
	"math"
	"math/rand/v2"
	"sync"
)

// Source yields uniformly distributed floats in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
//
// Sources are not cryptographically secure and are not meant to be.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource returns the process-wide generator, randomly seeded and safe
// for concurrent use.
func DefaultSource() Source { return globalSource{} }

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// NewSource returns a deterministic source for seed. It is safe for
// concurrent use, though concurrent callers will interleave its sequence.
func NewSource(seed uint64) Source {
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Between draws an integer uniformly from the closed range [min, max].
// Fractional bounds are narrowed to the integers inside them.
func Between(src Source, min, max float64) int {
	lo := math.Ceil(min)
	hi := math.Floor(max)
	return int(math.Floor(src.Float64()*(hi-lo+1) + lo))
}
