// Package terrain generates deterministic per-cell cost overlays for
// gridpath searches: a mapping Coord → multiplier that makes some regions of
// the grid more expensive to cross than others.
//
// What
//
//   - Overlay: an immutable-after-construction map from cell to cost
//     multiplier. Unmapped cells implicitly carry multiplier 1.
//   - Generate: the seeded two-pass generator.
//     Pass 1 ("ring"): every cell at Manhattan distance exactly 3 from the
//     start and goal anchors receives a random multiplier from {2,3,4,5}.
//     The ring breaks up the otherwise monotone cost gradient near the
//     endpoints, which keeps demo animations honest.
//     Pass 2 ("tiers"): four cost tiers (2,3,4,5) with target counts
//     (40,35,25,30) are scattered uniformly inside a bounded sub-region,
//     retrying up to 1000 attempts per tier. Cells already assigned, equal
//     to an anchor, or blocked are skipped.
//   - ColorOf: the renderer palette of the tiers (red/yellow/blue/green).
//
// Determinism
//
//	The generator takes an explicit seed (or *rand.Rand) and never touches
//	process-global random state. Identical seed, anchors, environment and
//	region always reproduce an identical overlay — tests rely on this.
//
// Soft placement budget
//
//	A tier that cannot reach its target count within its attempt budget is
//	not an error; the overlay simply carries fewer cells of that tier. Small
//	or crowded regions make this expected, not exceptional.
//
// Complexity
//
//   - Generate: O(ring + attempts) ≈ O(1) for the fixed default parameters.
//   - CostAt:   O(1).
//
// Errors
//
//   - ErrNilEnvironment if the environment pointer is nil.
//   - ErrEmptyRegion    if the placement region covers no cells.
package terrain
