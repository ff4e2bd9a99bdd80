// Package terrain defines the Overlay type, tier constants, and sentinel
// errors for the terrain subpackage of github.com/katalvlaran/gridpath.
package terrain

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for overlay generation.
var (
	// ErrNilEnvironment is returned when a nil environment pointer is passed.
	ErrNilEnvironment = errors.New("terrain: environment is nil")
	// ErrEmptyRegion is returned when the placement region covers no cells.
	ErrEmptyRegion = errors.New("terrain: placement region is empty")
	// ErrBadMultiplier is returned for a hand-built overlay cell whose
	// multiplier is below 1.
	ErrBadMultiplier = errors.New("terrain: cost multiplier must be at least 1")
)

const (
	// DefaultSeed seeds the generator when callers pass seed == 0.
	// The value matches the original demo configuration and is otherwise
	// arbitrary but stable, keeping reproducible defaults.
	DefaultSeed int64 = 42

	// RingDistance is the exact Manhattan distance of the perturbation ring
	// placed around each anchor.
	RingDistance = 3

	// attemptBudget bounds the sampling attempts per tier before giving up
	// on the remaining placements (a soft condition, not an error).
	attemptBudget = 1000
)

// tierValues are the cost multipliers drawn for ring cells, ascending.
var tierValues = [...]int{2, 3, 4, 5}

// tierTargets pairs each scattered tier with its placement target,
// in generation order.
var tierTargets = [...]struct {
	cost  int
	count int
}{
	{cost: 2, count: 40},
	{cost: 3, count: 35},
	{cost: 4, count: 25},
	{cost: 5, count: 30},
}

// DefaultRegion returns the placement sub-rectangle used by the shipped
// demo map: x ∈ [8,42], y ∈ [3,27], clear of the boundary walls.
func DefaultRegion() grid.Rect {
	return grid.Rect{MinX: 8, MinY: 3, MaxX: 42, MaxY: 27}
}

// Overlay maps cells to positive integer cost multipliers. It is immutable
// after Generate returns; unmapped cells carry multiplier 1. A nil *Overlay
// is valid and behaves as the all-ones overlay.
type Overlay struct {
	cost map[grid.Coord]int
}

// CostAt returns the multiplier at c, defaulting to 1 for unmapped cells.
// Complexity: O(1).
func (o *Overlay) CostAt(c grid.Coord) int {
	if o == nil {
		return 1
	}
	if v, ok := o.cost[c]; ok {
		return v
	}

	return 1
}

// Tier returns the explicit multiplier at c and whether one was assigned.
func (o *Overlay) Tier(c grid.Coord) (int, bool) {
	if o == nil {
		return 0, false
	}
	v, ok := o.cost[c]

	return v, ok
}

// Len returns the number of explicitly assigned cells.
func (o *Overlay) Len() int {
	if o == nil {
		return 0
	}

	return len(o.cost)
}

// Tiers returns a copy of the full Coord → multiplier mapping, for renderers
// that color terrain cells. Mutating the copy does not affect the overlay.
func (o *Overlay) Tiers() map[grid.Coord]int {
	if o == nil {
		return map[grid.Coord]int{}
	}
	out := make(map[grid.Coord]int, len(o.cost))
	for c, v := range o.cost {
		out[c] = v
	}

	return out
}

// CountByTier returns how many cells carry each explicit multiplier.
func (o *Overlay) CountByTier() map[int]int {
	counts := make(map[int]int, len(tierValues))
	if o == nil {
		return counts
	}
	for _, v := range o.cost {
		counts[v]++
	}

	return counts
}

// ColorOf returns the renderer color conventionally associated with a tier:
// 2→red, 3→yellow, 4→blue, 5→green; anything else is the gray default.
func ColorOf(tier int) string {
	switch tier {
	case 2:
		return "red"
	case 3:
		return "yellow"
	case 4:
		return "blue"
	case 5:
		return "green"
	default:
		return "gray"
	}
}
