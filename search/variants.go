package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/move"
	"github.com/katalvlaran/gridpath/terrain"
)

// weightEps absorbs accumulated float error in the anytime weight sweep so a
// nominal final weight of 1 is not skipped.
const weightEps = 1e-9

// Dijkstra runs the pure shortest-path variant: 4-directional topology,
// terrain-only edge cost, priority g(n). overlay may be nil for a uniform
// grid. Equivalent to Search with weight 0 on the same model.
func Dijkstra(env *grid.Environment, overlay *terrain.Overlay, start, goal grid.Coord, opts ...Option) (*Result, error) {
	model, err := move.NewModel(move.Conn4, move.TerrainOnly, overlay)
	if err != nil {
		return nil, err
	}

	return Search(env, model, start, goal, withForced(opts, WithWeight(0))...)
}

// AStar runs the heuristic variant: 8-directional topology and
// distance-weighted terrain cost. The default is standard A* (weight 1,
// Euclidean heuristic); pass WithWeight(w) for Weighted A* (w > 1) or for
// the w=0 Dijkstra degenerate case, and WithHeuristic to switch estimates.
func AStar(env *grid.Environment, overlay *terrain.Overlay, start, goal grid.Coord, opts ...Option) (*Result, error) {
	model, err := move.NewModel(move.Conn8, move.DistanceTerrain, overlay)
	if err != nil {
		return nil, err
	}

	return Search(env, model, start, goal, opts...)
}

// BFS runs breadth-first search: 4-directional topology, unit cost, FIFO
// frontier. A plain slice queue replaces the min-priority container — with a
// monotone insertion order the two are behaviorally identical, and the queue
// is the natural structure. Options: WithContext and WithMaxExpansions
// apply; heuristic and weight options are ignored.
func BFS(env *grid.Environment, start, goal grid.Coord, opts ...Option) (*Result, error) {
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
	queue := []grid.Coord{start}
	res := &Result{Cost: g, Weight: 0}

	var (
		s     grid.Coord
		found bool
	)
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}
		if o.MaxExpansions > 0 && res.Expansions >= o.MaxExpansions {
			break
		}

		s = queue[0]
		queue = queue[1:]
		res.Visited = append(res.Visited, s)
		res.Expansions++

		if s == goal {
			found = true
			break
		}

		for _, n := range model.Neighbors(s) {
			if _, discovered := g[n]; discovered {
				continue
			}
			if move.Collides(env, s, n) {
				continue
			}
			g[n] = g[s] + 1
			parent[n] = s
			queue = append(queue, n)
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

// SearchAnytime runs the repeated Weighted-A* sweep: one full, independent
// search per weight, from maxWeight down to 1 in fixed decrements, each with
// a fresh search state. The returned slice holds one Result per weight in
// sweep order (Result.Weight identifies the run), so callers can observe the
// quality/speed trade-off curve. The final run (weight 1) is standard A*.
//
// Returns ErrBadWeight for maxWeight < 1 and ErrBadStep for step ≤ 0.
func SearchAnytime(env *grid.Environment, overlay *terrain.Overlay, start, goal grid.Coord, maxWeight, step float64, opts ...Option) ([]*Result, error) {
	if maxWeight < 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadWeight, maxWeight)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadStep, step)
	}

	var results []*Result
	for w := maxWeight; w >= 1-weightEps; w -= step {
		res, err := AStar(env, overlay, start, goal, withForced(opts, WithWeight(w))...)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	return results, nil
}

// withForced appends forced options after the caller's, so the variant's
// fixed parameters win without mutating the caller's slice.
func withForced(opts []Option, forced ...Option) []Option {
	out := make([]Option, 0, len(opts)+len(forced))
	out = append(out, opts...)
	out = append(out, forced...)

	return out
}
