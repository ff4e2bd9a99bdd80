// Package grid provides the primitive types shared by every gridpath
// component: integer coordinates, inclusive rectangular regions, and the
// immutable obstacle Environment that search engines plan around.
//
// What
//
//   - Coord: an (X, Y) pair with value equality, usable as a map key.
//     Offers Manhattan and Euclidean distance helpers.
//   - Rect: an inclusive axis-aligned region, used to bound terrain placement.
//   - Environment: a read-only set of blocked cells inside a W×H boundary.
//     Cells outside the boundary count as blocked, so planners can never
//     walk off the map.
//   - DefaultMap: the canonical 51×31 demo map — boundary walls plus three
//     interior wall segments — used by examples and integration tests.
//
// Why
//
//   - Every search variant, cost model and terrain generator speaks the same
//     coordinate vocabulary; keeping it in one leaf package avoids cycles.
//   - The Environment is deep-copied at construction and never mutated, so a
//     single instance may be shared by any number of concurrent searches.
//
// Complexity
//
//   - Blocked / InBounds: O(1) (map lookup + bounds compare).
//   - NewEnvironment:     O(n) over the blocked-cell list.
//
// Errors
//
//   - ErrEmptyGrid   if width or height is not positive.
//   - ErrOutOfBounds if a blocked cell lies outside the boundary.
package grid
