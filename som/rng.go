package som

import "math/rand"

// A trainer consumes one *rand.Rand for its whole life: Init draws the
// bootstrap rows from it and Train keeps reading the same stream to pick
// observations, so one seed reproduces a complete fit. A trainer is not
// safe for concurrent use and neither is the stream it is handed.

// defaultRNGSeed seeds the stream behind NewRand(0) and a nil rng.
const defaultRNGSeed int64 = 1

// NewRand returns the stream a trainer draws from. A zero seed selects
// defaultRNGSeed, so the zero value of a seed flag still gives repeatable maps.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// orDefault substitutes the default deterministic stream for a nil rng.
func orDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return NewRand(0)
	}
	return rng
}

// sampleWithoutReplacement returns k distinct indices drawn uniformly from
// [0, n) using a partial Fisher–Yates shuffle. Requires 0 <= k <= n; the
// caller validates this, so the draw always terminates.
//
// Complexity: O(n) time and space.
func sampleWithoutReplacement(n, k int, rng *rand.Rand) []int {
	p := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	for i = 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		p[i], p[j] = p[j], p[i]
	}
	return p[:k:k]
}
