package move

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/terrain"
)

// Model is a validated bundle of topology, cost function and terrain overlay.
// A Model is immutable and safe to share across searches; the zero value is
// not valid — use NewModel.
type Model struct {
	conn    Connectivity
	cost    CostModel
	overlay *terrain.Overlay
}

// NewModel validates and builds a movement model. overlay may be nil, which
// behaves as an all-ones overlay (every multiplier 1).
// Returns ErrBadConnectivity / ErrBadCostModel for unknown enum values and
// ErrConnectivityMismatch when UnitCost or TerrainOnly is paired with Conn8.
func NewModel(conn Connectivity, cost CostModel, overlay *terrain.Overlay) (Model, error) {
	if conn.offsets() == nil {
		return Model{}, ErrBadConnectivity
	}
	switch cost {
	case UnitCost, TerrainOnly:
		if conn != Conn4 {
			return Model{}, ErrConnectivityMismatch
		}
	case DistanceTerrain:
		// any connectivity
	default:
		return Model{}, ErrBadCostModel
	}

	return Model{conn: conn, cost: cost, overlay: overlay}, nil
}

// Connectivity returns the model's neighbor topology.
func (m Model) Connectivity() Connectivity { return m.conn }

// CostModel returns the model's edge-cost function selector.
func (m Model) CostModel() CostModel { return m.cost }

// Overlay returns the terrain overlay the model charges against (may be nil).
func (m Model) Overlay() *terrain.Overlay { return m.overlay }

// Neighbors returns the cells adjacent to c under the model's topology, in
// the model's fixed offset order. Collision filtering is left to StepCost so
// blocked neighbors still appear here (with infinite step cost).
// Complexity: O(1) — at most eight appends.
func (m Model) Neighbors(c grid.Coord) []grid.Coord {
	offs := m.conn.offsets()
	out := make([]grid.Coord, 0, len(offs))
	for _, d := range offs {
		out = append(out, c.Add(d[0], d[1]))
	}

	return out
}

// StepCost returns the cost of moving from one cell to an adjacent cell
// under the model, or +Inf when the move collides with env.
// Complexity: O(1).
func (m Model) StepCost(env *grid.Environment, from, to grid.Coord) float64 {
	if Collides(env, from, to) {
		return math.Inf(1)
	}
	switch m.cost {
	case UnitCost:
		return 1
	case TerrainOnly:
		return float64(m.overlay.CostAt(to))
	default: // DistanceTerrain
		return from.EuclideanTo(to) * float64(m.overlay.CostAt(to))
	}
}

// Collides reports whether the move from → to is blocked by env: true when
// either endpoint is blocked, and for a diagonal move additionally when both
// orthogonal corner cells flanking it are blocked (the corner-cutting rule).
// Complexity: O(1).
func Collides(env *grid.Environment, from, to grid.Coord) bool {
	if env.Blocked(from) || env.Blocked(to) {
		return true
	}
	if from.X != to.X && from.Y != to.Y {
		c1 := grid.Coord{X: from.X, Y: to.Y}
		c2 := grid.Coord{X: to.X, Y: from.Y}
		if env.Blocked(c1) && env.Blocked(c2) {
			return true
		}
	}

	return false
}
