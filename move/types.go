// Package move defines core types, options, and sentinel errors
// for the move subpackage of github.com/katalvlaran/gridpath.
package move

import "errors"

// Sentinel errors for model construction.
var (
	// ErrBadConnectivity indicates an unknown Connectivity value.
	ErrBadConnectivity = errors.New("move: unknown connectivity")
	// ErrBadCostModel indicates an unknown CostModel value.
	ErrBadCostModel = errors.New("move: unknown cost model")
	// ErrConnectivityMismatch indicates a cost model that requires
	// 4-directional topology was paired with 8-directional connectivity.
	ErrConnectivityMismatch = errors.New("move: cost model requires 4-directional connectivity")
)

// Connectivity selects neighbor topology: orthogonal (Conn4) or including
// diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional moves: N, S, W, E.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional moves: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// conn4Offsets and conn8Offsets are the fixed neighbor-generation orders.
// The order is part of the observable contract: visitation traces and
// tie-broken paths are reproducible only because it never changes.
var (
	conn4Offsets = [][2]int{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}
	conn8Offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// offsets returns the offset table for c, or nil for an invalid value.
func (c Connectivity) offsets() [][2]int {
	switch c {
	case Conn4:
		return conn4Offsets
	case Conn8:
		return conn8Offsets
	default:
		return nil
	}
}

// CostModel selects the edge-cost function of a Model.
type CostModel int

const (
	// UnitCost charges 1 for any unblocked move. Requires Conn4.
	UnitCost CostModel = iota
	// TerrainOnly charges the terrain multiplier at the destination,
	// ignoring move geometry. Requires Conn4.
	TerrainOnly
	// DistanceTerrain charges Euclidean step length × terrain multiplier
	// at the destination. Valid with Conn4 or Conn8.
	DistanceTerrain
)
