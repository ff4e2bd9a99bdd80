package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/move"
)

// DFS runs a depth-first traversal from start to goal: 4-directional moves,
// unit cost, no priority comparisons. It is deliberately a distinct code
// path from Search — an explicit LIFO stack with eager visited-marking on
// push shares only neighbor generation and collision checks with the
// best-first engine.
//
// The Cost map records depth (number of moves from start), kept for
// renderers that annotate cells; the first route found is returned, which is
// generally not the shortest. Options: WithContext and WithMaxExpansions
// apply; heuristic and weight options are ignored.
func DFS(env *grid.Environment, start, goal grid.Coord, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if env == nil {
		return nil, ErrNilEnvironment
	}
	if env.Blocked(start) {
		return nil, fmt.Errorf("%w: start (%d,%d)", ErrInvalidEndpoint, start.X, start.Y)
	}
	if env.Blocked(goal) {
		return nil, fmt.Errorf("%w: goal (%d,%d)", ErrInvalidEndpoint, goal.X, goal.Y)
	}

	// unit-cost Conn4 model; constant arguments cannot fail validation
	model, _ := move.NewModel(move.Conn4, move.UnitCost, nil)

	g := map[grid.Coord]float64{start: 0}
	parent := map[grid.Coord]grid.Coord{start: start}
	seen := map[grid.Coord]struct{}{start: {}}
	stack := []grid.Coord{start}
	res := &Result{Cost: g, Weight: 0}

	var (
		s     grid.Coord
		found bool
	)
	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}
		if o.MaxExpansions > 0 && res.Expansions >= o.MaxExpansions {
			break
		}

		s = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.Visited = append(res.Visited, s)
		res.Expansions++

		if s == goal {
			found = true
			break
		}

		for _, n := range model.Neighbors(s) {
			if _, ok := seen[n]; ok {
				continue
			}
			if move.Collides(env, s, n) {
				continue
			}
			// marking on push keeps each cell off the stack more than once
			seen[n] = struct{}{}
			parent[n] = s
			g[n] = g[s] + 1
			stack = append(stack, n)
		}
	}

	res.Found = found
	if !found {
		return res, nil
	}

	path, err := extractPath(parent, start, goal)
	if err != nil {
		return nil, err
	}
	res.Path = path

	return res, nil
}
