package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// extractPath walks parent links from goal back to the self-loop sentinel at
// start and returns the route in goal→start order. The start maps to itself,
// which is how the root of the search tree is marked.
//
// Returns ErrMissingParent if goal was never assigned a parent, or if a
// broken link is met mid-walk — both indicate an engine logic error and are
// surfaced loudly instead of returning a partial path.
func extractPath(parent map[grid.Coord]grid.Coord, start, goal grid.Coord) ([]grid.Coord, error) {
	if _, ok := parent[goal]; !ok {
		return nil, fmt.Errorf("%w: goal (%d,%d)", ErrMissingParent, goal.X, goal.Y)
	}

	path := []grid.Coord{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			return nil, fmt.Errorf("%w: broken link at (%d,%d)", ErrMissingParent, cur.X, cur.Y)
		}
		cur = prev
		path = append(path, cur)
	}

	return path, nil
}
