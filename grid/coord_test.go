package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// TestCoord_Distances checks the two distance helpers on a handful of pairs.
func TestCoord_Distances(t *testing.T) {
	cases := []struct {
		name      string
		a, b      grid.Coord
		manhattan int
		euclidean float64
	}{
		{"Same", grid.Coord{X: 3, Y: 4}, grid.Coord{X: 3, Y: 4}, 0, 0},
		{"Orthogonal", grid.Coord{X: 0, Y: 0}, grid.Coord{X: 5, Y: 0}, 5, 5},
		{"Diagonal", grid.Coord{X: 0, Y: 0}, grid.Coord{X: 1, Y: 1}, 2, math.Sqrt2},
		{"Negative", grid.Coord{X: -2, Y: 3}, grid.Coord{X: 1, Y: -1}, 7, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.ManhattanTo(tc.b); got != tc.manhattan {
				t.Errorf("ManhattanTo = %d; want %d", got, tc.manhattan)
			}
			if got := tc.a.EuclideanTo(tc.b); math.Abs(got-tc.euclidean) > 1e-12 {
				t.Errorf("EuclideanTo = %v; want %v", got, tc.euclidean)
			}
		})
	}
}

// TestCoord_Add verifies displacement in all quadrants.
func TestCoord_Add(t *testing.T) {
	c := grid.Coord{X: 2, Y: 3}
	if got := c.Add(1, -2); got != (grid.Coord{X: 3, Y: 1}) {
		t.Errorf("Add(1,-2) = %v; want (3,1)", got)
	}
	if got := c.Add(0, 0); got != c {
		t.Errorf("Add(0,0) = %v; want %v", got, c)
	}
}

// TestRect covers Contains (inclusive bounds), dimensions, and Empty.
func TestRect(t *testing.T) {
	r := grid.Rect{MinX: 8, MinY: 3, MaxX: 42, MaxY: 27}

	inside := []grid.Coord{{X: 8, Y: 3}, {X: 42, Y: 27}, {X: 20, Y: 15}}
	for _, c := range inside {
		if !r.Contains(c) {
			t.Errorf("Contains(%v) = false; want true", c)
		}
	}
	outside := []grid.Coord{{X: 7, Y: 3}, {X: 43, Y: 27}, {X: 8, Y: 2}, {X: 42, Y: 28}}
	for _, c := range outside {
		if r.Contains(c) {
			t.Errorf("Contains(%v) = true; want false", c)
		}
	}

	if r.Width() != 35 || r.Height() != 25 {
		t.Errorf("dimensions = %d×%d; want 35×25", r.Width(), r.Height())
	}
	if r.Empty() {
		t.Error("Empty() = true for a non-empty rect")
	}
	if !(grid.Rect{MinX: 5, MinY: 5, MaxX: 4, MaxY: 9}).Empty() {
		t.Error("Empty() = false for an inverted rect")
	}
}
