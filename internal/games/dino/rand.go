package dino

// Rand is the random source the session draws from. *math/rand.Rand
// satisfies it.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// between returns a uniform integer in [lo, hi].
func between(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
