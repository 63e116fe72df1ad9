package service

import (
	"math/rand"
	"sync"
)

// Rand is the source of randomness for weighted operator selection. It is
// injected into the distribution service so selection is deterministic
// under test with a seeded source.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// lockedRand guards a rand.Rand for concurrent registrations.
type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewLockedRand creates a concurrency-safe Rand from the given seed.
func NewLockedRand(seed int64) Rand {
	return &lockedRand{src: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}
