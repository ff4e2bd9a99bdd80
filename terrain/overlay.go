package terrain

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// NewOverlay builds an Overlay from an explicit Coord → multiplier mapping,
// for callers that script exact terrain layouts (fixtures, editors). The map
// is copied; multipliers of 1 are dropped (they equal the default) and any
// multiplier below 1 is ErrBadMultiplier.
func NewOverlay(cost map[grid.Coord]int) (*Overlay, error) {
	o := &Overlay{cost: make(map[grid.Coord]int, len(cost))}
	for c, v := range cost {
		if v < 1 {
			return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadMultiplier, v, c.X, c.Y)
		}
		if v == 1 {
			continue
		}
		o.cost[c] = v
	}

	return o, nil
}

// Generate builds a deterministic Overlay for the given anchors, environment
// and placement region, seeding its own RNG (seed==0 falls back to
// DefaultSeed). Two passes run in a fixed order:
//
//  1. Ring pass — every cell at Manhattan distance exactly RingDistance from
//     start, then from goal, draws a multiplier uniformly from {2,3,4,5}.
//  2. Tier pass — tiers (2,3,4,5) place (40,35,25,30) cells by uniform
//     sampling inside region, skipping assigned/anchor/blocked cells, with
//     at most 1000 attempts per tier (shortfall is accepted silently).
//
// Identical arguments always yield an identical overlay.
// Complexity: O(RingDistance² + Σ attempts).
func Generate(seed int64, start, goal grid.Coord, env *grid.Environment, region grid.Rect) (*Overlay, error) {
	return GenerateWithRNG(rngFromSeed(seed), start, goal, env, region)
}

// GenerateWithRNG is Generate with a caller-owned RNG, for callers that
// manage their own seed streams. rng==nil falls back to the default seed.
func GenerateWithRNG(rng *rand.Rand, start, goal grid.Coord, env *grid.Environment, region grid.Rect) (*Overlay, error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}
	if region.Empty() {
		return nil, ErrEmptyRegion
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	o := &Overlay{cost: make(map[grid.Coord]int)}
	o.placeRing(rng, start, start, goal, env)
	o.placeRing(rng, goal, start, goal, env)
	o.scatterTiers(rng, start, goal, env, region)

	return o, nil
}

// placeRing assigns a random multiplier to every free cell at Manhattan
// distance exactly RingDistance from center. Iteration order over the
// (dx,dy) square is fixed, which keeps the RNG stream reproducible.
func (o *Overlay) placeRing(rng *rand.Rand, center, start, goal grid.Coord, env *grid.Environment) {
	var node grid.Coord
	for dx := -RingDistance; dx <= RingDistance; dx++ {
		for dy := -RingDistance; dy <= RingDistance; dy++ {
			if absInt(dx)+absInt(dy) != RingDistance {
				continue
			}
			node = center.Add(dx, dy)
			if env.Blocked(node) || node == start || node == goal {
				continue
			}
			o.cost[node] = tierValues[rng.Intn(len(tierValues))]
		}
	}
}

// scatterTiers places each tier's target count of cells by rejection
// sampling inside region. The attempt budget makes undersized or crowded
// regions terminate with a partial placement instead of spinning.
func (o *Overlay) scatterTiers(rng *rand.Rand, start, goal grid.Coord, env *grid.Environment, region grid.Rect) {
	var node grid.Coord
	for _, tier := range tierTargets {
		placed, attempts := 0, 0
		for placed < tier.count && attempts < attemptBudget {
			attempts++
			node = grid.Coord{
				X: region.MinX + rng.Intn(region.Width()),
				Y: region.MinY + rng.Intn(region.Height()),
			}
			if _, taken := o.cost[node]; taken {
				continue
			}
			if node == start || node == goal || env.Blocked(node) {
				continue
			}
			o.cost[node] = tier.cost
			placed++
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
