package hoops

import "math/rand"

// Rand is the source of randomness for spawning and decor.
// *rand.Rand satisfies it; tests inject scripted sequences.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded math/rand source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// between returns a uniform value in [lo, hi).
func between(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// pick returns a uniform index in [0, n).
func pick(rng Rand, n int) int {
	i := int(rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
