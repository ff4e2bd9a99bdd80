// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the environment must span at least one column and one row.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a blocked cell lies outside the environment boundary.
	ErrOutOfBounds = errors.New("grid: blocked cell outside environment bounds")
)

// Coord is a single grid cell. Coords compare by value and may be used as
// map keys; this is the unit every gridpath package operates on.
type Coord struct {
	X, Y int
}

// Add returns the coordinate displaced by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// ManhattanTo returns |c.X−o.X| + |c.Y−o.Y|.
func (c Coord) ManhattanTo(o Coord) int {
	return absInt(c.X-o.X) + absInt(c.Y-o.Y)
}

// EuclideanTo returns the straight-line distance between c and o.
func (c Coord) EuclideanTo(o Coord) float64 {
	return math.Hypot(float64(c.X-o.X), float64(c.Y-o.Y))
}

// absInt avoids the float round-trip of math.Abs for coordinate deltas.
func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Rect is an inclusive axis-aligned region [MinX..MaxX] × [MinY..MaxY].
// Terrain generation samples cells uniformly from such a region.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether c lies inside r (bounds inclusive).
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}

// Width returns the number of columns covered by r.
func (r Rect) Width() int { return r.MaxX - r.MinX + 1 }

// Height returns the number of rows covered by r.
func (r Rect) Height() int { return r.MaxY - r.MinY + 1 }

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.MaxX < r.MinX || r.MaxY < r.MinY }
