package wilson

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed == 0, so that an
// unconfigured run is still reproducible.
const DefaultSeed int64 = 1

// RandFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func RandFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using rng.
// A nil rng selects the default deterministic stream.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, rng *rand.Rand) {
	if len(a) <= 1 {
		return
	}
	if rng == nil {
		rng = RandFromSeed(0)
	}
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
