package search

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/move"
)

// staleEps tolerates float noise when comparing a popped priority against
// the cell's recomputed best priority during lazy deletion.
const staleEps = 1e-9

// Search runs the generalized best-first expansion from start to goal on env
// under the given movement model, applying any number of functional Options.
//
// The priority function is g(n) + Weight·h(n); varying Weight, the model's
// connectivity and its cost model realizes Dijkstra (weight 0), standard A*
// (weight 1) and Weighted A* (weight > 1). See the variant constructors in
// variants.go for the canonical combinations.
//
// An unreachable goal is not an error: the returned Result has Found=false
// and carries the full visitation trace and cost map as evidence. A cancelled
// context returns the partial Result together with the context error.
//
// Returns ErrNilEnvironment, ErrInvalidEndpoint or ErrOptionViolation for
// invalid input, and ErrMissingParent only on an internal invariant failure.
func Search(env *grid.Environment, model move.Model, start, goal grid.Coord, opts ...Option) (*Result, error) {
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

	r := &runner{
		env:    env,
		model:  model,
		start:  start,
		goal:   goal,
		opts:   o,
		g:      make(map[grid.Coord]float64),
		parent: make(map[grid.Coord]grid.Coord),
		open:   make(openPQ, 0, 64),
		res:    &Result{Cost: nil, Weight: o.Weight},
	}
	r.init()

	return r.run()
}

// runner holds the mutable state of a single Search invocation. It is
// created fresh per call and discarded afterwards; nothing here is shared
// between searches.
type runner struct {
	env    *grid.Environment
	model  move.Model
	start  grid.Coord
	goal   grid.Coord
	opts   Options
	g      map[grid.Coord]float64
	parent map[grid.Coord]grid.Coord
	open   openPQ
	res    *Result
}

// init seeds the search state: g[start]=0, the self-loop parent sentinel,
// and the start entry in the open set.
func (r *runner) init() {
	r.g[r.start] = 0
	r.parent[r.start] = r.start
	heap.Init(&r.open)
	heap.Push(&r.open, openItem{node: r.start, priority: r.priorityOf(r.start)})
}

// priorityOf computes g(c) + Weight·h(c) from the authoritative g map.
func (r *runner) priorityOf(c grid.Coord) float64 {
	return r.g[c] + r.opts.Weight*heuristicValue(r.opts.Heuristic, c, r.goal)
}

// run drives the expansion loop to completion and assembles the Result.
func (r *runner) run() (*Result, error) {
	var (
		item  openItem
		s     grid.Coord
		found bool
	)

loop:
	for r.open.Len() > 0 {
		// cancellation check (once per expansion)
		select {
		case <-r.opts.Ctx.Done():
			r.finish(false)
			return r.res, r.opts.Ctx.Err()
		default:
		}

		// expansion-count cutoff reports exhaustion, never success
		if r.opts.MaxExpansions > 0 && r.res.Expansions >= r.opts.MaxExpansions {
			break loop
		}

		item = heap.Pop(&r.open).(openItem)
		s = item.node

		// lazy deletion: a better g for s was recorded after this entry was
		// pushed, so the entry is stale and must be skipped, not re-expanded
		if item.priority > r.priorityOf(s)+staleEps {
			continue
		}

		// finalize s: its place in the visitation trace is now fixed
		r.res.Visited = append(r.res.Visited, s)
		r.res.Expansions++

		if s == r.goal {
			found = true
			break loop
		}

		r.relax(s)
	}

	r.finish(found)
	if !found {
		return r.res, nil
	}

	path, err := extractPath(r.parent, r.start, r.goal)
	if err != nil {
		return nil, err
	}
	r.res.Path = path

	return r.res, nil
}

// relax examines every neighbor of s under the model topology and records
// any strictly better route, pushing a fresh open entry per improvement.
func (r *runner) relax(s grid.Coord) {
	var (
		step    float64
		newCost float64
		best    float64
		known   bool
	)
	for _, n := range r.model.Neighbors(s) {
		step = r.model.StepCost(r.env, s, n)
		if math.IsInf(step, 1) {
			continue
		}
		newCost = r.g[s] + step
		best, known = r.g[n]
		if !known {
			best = math.Inf(1)
		}
		if newCost < best {
			r.g[n] = newCost
			r.parent[n] = s
			heap.Push(&r.open, openItem{node: n, priority: r.priorityOf(n)})
		}
	}
}

// finish snapshots the g map into the Result and records the outcome state.
func (r *runner) finish(found bool) {
	r.res.Found = found
	r.res.Cost = r.g
}
