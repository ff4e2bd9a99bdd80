package grid

import "fmt"

// Environment is an immutable occupancy map: a W×H boundary plus a set of
// blocked cells. It is deep-copied at construction and never mutated, so one
// Environment may be shared (read-only) across concurrent searches.
type Environment struct {
	width, height int
	blocked       map[Coord]struct{}
}

// NewEnvironment builds an Environment of the given dimensions with the
// listed blocked cells. The slice is copied; callers keep ownership.
// Returns ErrEmptyGrid for non-positive dimensions and ErrOutOfBounds if any
// blocked cell falls outside the boundary.
// Complexity: O(len(blocked)) time and memory.
func NewEnvironment(width, height int, blocked []Coord) (*Environment, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	e := &Environment{
		width:   width,
		height:  height,
		blocked: make(map[Coord]struct{}, len(blocked)),
	}
	for _, c := range blocked {
		if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
			return nil, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, c.X, c.Y, width, height)
		}
		e.blocked[c] = struct{}{}
	}

	return e, nil
}

// Width returns the number of columns.
func (e *Environment) Width() int { return e.width }

// Height returns the number of rows.
func (e *Environment) Height() int { return e.height }

// InBounds reports whether c lies within the environment boundary.
// Complexity: O(1).
func (e *Environment) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < e.width && c.Y >= 0 && c.Y < e.height
}

// Blocked reports whether c is impassable. Cells outside the boundary are
// treated as blocked, so collision checks never admit off-map moves.
// Complexity: O(1).
func (e *Environment) Blocked(c Coord) bool {
	if !e.InBounds(c) {
		return true
	}
	_, hit := e.blocked[c]

	return hit
}

// BlockedCount returns the number of explicitly blocked cells
// (boundary-exterior cells are not counted).
func (e *Environment) BlockedCount() int { return len(e.blocked) }

// DefaultMap returns the canonical 51×31 demo environment: a full boundary
// wall plus three interior wall segments. Start (5,5) and goal (45,25) of the
// shipped examples are free cells on this map.
func DefaultMap() *Environment {
	const w, h = 51, 31
	blocked := make([]Coord, 0, 2*(w+h)+64)

	// boundary walls
	for x := 0; x < w; x++ {
		blocked = append(blocked, Coord{X: x, Y: 0}, Coord{X: x, Y: h - 1})
	}
	for y := 0; y < h; y++ {
		blocked = append(blocked, Coord{X: 0, Y: y}, Coord{X: w - 1, Y: y})
	}

	// interior walls
	for x := 10; x <= 20; x++ {
		blocked = append(blocked, Coord{X: x, Y: 15})
	}
	for y := 0; y < 15; y++ {
		blocked = append(blocked, Coord{X: 20, Y: y})
	}
	for y := 15; y < 30; y++ {
		blocked = append(blocked, Coord{X: 30, Y: y})
	}
	for y := 0; y < 16; y++ {
		blocked = append(blocked, Coord{X: 40, Y: y})
	}

	e, err := NewEnvironment(w, h, blocked)
	if err != nil {
		// all cells above are inside the 51×31 boundary
		panic(err)
	}

	return e
}
