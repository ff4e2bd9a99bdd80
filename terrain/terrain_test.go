package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/terrain"
)

var (
	demoStart = grid.Coord{X: 5, Y: 5}
	demoGoal  = grid.Coord{X: 45, Y: 25}
)

func demoOverlay(t *testing.T, seed int64) *terrain.Overlay {
	t.Helper()
	o, err := terrain.Generate(seed, demoStart, demoGoal, grid.DefaultMap(), terrain.DefaultRegion())
	require.NoError(t, err)

	return o
}

func TestGenerate_Validation(t *testing.T) {
	_, err := terrain.Generate(1, demoStart, demoGoal, nil, terrain.DefaultRegion())
	assert.ErrorIs(t, err, terrain.ErrNilEnvironment)

	empty := grid.Rect{MinX: 5, MinY: 5, MaxX: 4, MaxY: 9}
	_, err = terrain.Generate(1, demoStart, demoGoal, grid.DefaultMap(), empty)
	assert.ErrorIs(t, err, terrain.ErrEmptyRegion)
}

// TestGenerate_Deterministic: identical seed, anchors, environment and region
// must reproduce an identical Coord → multiplier mapping.
func TestGenerate_Deterministic(t *testing.T) {
	a := demoOverlay(t, 7)
	b := demoOverlay(t, 7)
	assert.Equal(t, a.Tiers(), b.Tiers())

	// seed 0 falls back to DefaultSeed
	zero := demoOverlay(t, 0)
	def := demoOverlay(t, terrain.DefaultSeed)
	assert.Equal(t, def.Tiers(), zero.Tiers())

	// a different seed produces a different layout
	other := demoOverlay(t, 8)
	assert.NotEqual(t, a.Tiers(), other.Tiers())
}

// TestGenerate_RingCoverage: on the demo map every cell at Manhattan distance
// exactly 3 from each anchor is free, so all 12 per anchor must be assigned,
// each with a multiplier in {2,3,4,5}.
func TestGenerate_RingCoverage(t *testing.T) {
	o := demoOverlay(t, 42)

	for _, anchor := range []grid.Coord{demoStart, demoGoal} {
		count := 0
		for dx := -terrain.RingDistance; dx <= terrain.RingDistance; dx++ {
			for dy := -terrain.RingDistance; dy <= terrain.RingDistance; dy++ {
				node := anchor.Add(dx, dy)
				if anchor.ManhattanTo(node) != terrain.RingDistance {
					continue
				}
				count++
				tier, ok := o.Tier(node)
				require.True(t, ok, "ring cell %v unassigned", node)
				assert.GreaterOrEqual(t, tier, 2)
				assert.LessOrEqual(t, tier, 5)
			}
		}
		assert.Equal(t, 12, count)
	}
}

// TestGenerate_PlacementRules: nothing on anchors or obstacles; every
// assigned cell is either in the placement region or on an anchor ring;
// the scatter pass fills its full tier targets on the roomy demo map.
func TestGenerate_PlacementRules(t *testing.T) {
	env := grid.DefaultMap()
	region := terrain.DefaultRegion()
	o := demoOverlay(t, 42)

	_, startAssigned := o.Tier(demoStart)
	_, goalAssigned := o.Tier(demoGoal)
	assert.False(t, startAssigned, "start must never carry a multiplier")
	assert.False(t, goalAssigned, "goal must never carry a multiplier")

	for c, tier := range o.Tiers() {
		assert.False(t, env.Blocked(c), "blocked cell %v assigned", c)
		assert.GreaterOrEqual(t, tier, 2)
		assert.LessOrEqual(t, tier, 5)
		onRing := c.ManhattanTo(demoStart) == terrain.RingDistance ||
			c.ManhattanTo(demoGoal) == terrain.RingDistance
		assert.True(t, region.Contains(c) || onRing, "cell %v outside region and rings", c)
	}

	// 24 ring cells + full tier targets 40+35+25+30
	assert.Equal(t, 24+130, o.Len())
}

// TestGenerate_BudgetIsSoft: a region far too small for the tier targets
// yields a partial overlay, not an error.
func TestGenerate_BudgetIsSoft(t *testing.T) {
	env, err := grid.NewEnvironment(60, 60, nil)
	require.NoError(t, err)

	tiny := grid.Rect{MinX: 50, MinY: 50, MaxX: 52, MaxY: 52} // 9 cells
	o, err := terrain.Generate(3, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 58, Y: 1}, env, tiny)
	require.NoError(t, err)

	scattered := 0
	for c := range o.Tiers() {
		if tiny.Contains(c) {
			scattered++
		}
	}
	assert.LessOrEqual(t, scattered, 9)
	assert.Greater(t, scattered, 0)
}

func TestNewOverlay(t *testing.T) {
	o, err := terrain.NewOverlay(map[grid.Coord]int{
		{X: 1, Y: 1}: 5,
		{X: 2, Y: 2}: 1, // default multiplier, dropped
	})
	require.NoError(t, err)
	assert.Equal(t, 5, o.CostAt(grid.Coord{X: 1, Y: 1}))
	assert.Equal(t, 1, o.CostAt(grid.Coord{X: 2, Y: 2}))
	assert.Equal(t, 1, o.Len())

	_, err = terrain.NewOverlay(map[grid.Coord]int{{X: 0, Y: 0}: 0})
	assert.ErrorIs(t, err, terrain.ErrBadMultiplier)
}

// TestOverlay_NilSafe: a nil overlay behaves as the all-ones overlay.
func TestOverlay_NilSafe(t *testing.T) {
	var o *terrain.Overlay
	assert.Equal(t, 1, o.CostAt(grid.Coord{X: 3, Y: 3}))
	assert.Equal(t, 0, o.Len())
	assert.Empty(t, o.Tiers())
	_, ok := o.Tier(grid.Coord{})
	assert.False(t, ok)
}

func TestColorOf(t *testing.T) {
	assert.Equal(t, "red", terrain.ColorOf(2))
	assert.Equal(t, "yellow", terrain.ColorOf(3))
	assert.Equal(t, "blue", terrain.ColorOf(4))
	assert.Equal(t, "green", terrain.ColorOf(5))
	assert.Equal(t, "gray", terrain.ColorOf(1))
	assert.Equal(t, "gray", terrain.ColorOf(9))
}

// TestGenerate_CountByTier: scatter counts never exceed target + ring spill.
func TestGenerate_CountByTier(t *testing.T) {
	o := demoOverlay(t, 42)
	counts := o.CountByTier()

	targets := map[int]int{2: 40, 3: 35, 4: 25, 5: 30}
	total := 0
	for tier, n := range counts {
		// at most the scatter target plus the 24 ring cells
		assert.LessOrEqual(t, n, targets[tier]+24, "tier %d over-placed", tier)
		total += n
	}
	assert.Equal(t, o.Len(), total)
}
