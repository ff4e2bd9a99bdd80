// Package terrain - RNG policy for overlay generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical overlays across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: overlay generation never mutates process-global random state,
//     so parallel searches and tests cannot cross-contaminate.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Generate owns its *rand.Rand for
//     the duration of one call; do not share one across goroutines.
package terrain

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}
