// Package search defines core types, functional options, and sentinel errors
// for the search subpackage of github.com/katalvlaran/gridpath.
package search

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilEnvironment is returned if a nil environment pointer is passed.
	ErrNilEnvironment = errors.New("search: environment is nil")

	// ErrInvalidEndpoint is returned when start or goal lies inside the
	// environment's blocked set; rejected before any expansion runs.
	ErrInvalidEndpoint = errors.New("search: endpoint lies inside an obstacle")

	// ErrMissingParent signals an engine invariant violation: path extraction
	// was reached for a goal that has no recorded parent. This is a logic
	// error in the engine, never a user input error.
	ErrMissingParent = errors.New("search: goal has no recorded parent")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBadWeight is returned by SearchAnytime when maxWeight < 1.
	ErrBadWeight = errors.New("search: anytime max weight must be at least 1")

	// ErrBadStep is returned by SearchAnytime for a non-positive decrement.
	ErrBadStep = errors.New("search: anytime weight decrement must be positive")
)

// HeuristicKind selects the goal-distance estimate used by the engine.
type HeuristicKind int

const (
	// Euclidean estimates remaining cost as straight-line distance to goal.
	Euclidean HeuristicKind = iota
	// Manhattan estimates remaining cost as |dx| + |dy| to goal.
	Manhattan
)

// valid reports whether k is a known heuristic kind.
func (k HeuristicKind) valid() bool {
	return k == Euclidean || k == Manhattan
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative weight), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters customizing a single search invocation.
type Options struct {
	// Ctx allows cancellation and deadlines; a cancelled context stops the
	// expansion loop and the run reports exhaustion, not success.
	Ctx context.Context

	// Heuristic selects the goal-distance estimate (default Euclidean).
	// Ignored by BFS and DFS, which use no heuristic.
	Heuristic HeuristicKind

	// Weight scales the heuristic in priority(n) = g(n) + Weight·h(n).
	// 0 degenerates to Dijkstra ordering, 1 is standard A*, >1 trades
	// optimality for speed with a suboptimality bound of Weight×optimal.
	Weight float64

	// MaxExpansions, if > 0, bounds the number of finalized nodes; hitting
	// the bound terminates the loop and reports exhaustion rather than
	// success. 0 disables the cutoff.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Euclidean heuristic at weight 1 (standard A*)
//   - no expansion cutoff.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Heuristic:     Euclidean,
		Weight:        1,
		MaxExpansions: 0,
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic selects the heuristic kind; an unknown kind is an
// ErrOptionViolation.
func WithHeuristic(kind HeuristicKind) Option {
	return func(o *Options) {
		if !kind.valid() {
			o.err = fmt.Errorf("%w: unknown heuristic kind %d", ErrOptionViolation, kind)
			return
		}
		o.Heuristic = kind
	}
}

// WithWeight sets the heuristic weight w ∈ [0, ∞); negative values are an
// ErrOptionViolation.
func WithWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 || math.IsNaN(w) {
			o.err = fmt.Errorf("%w: weight must be non-negative, got %v", ErrOptionViolation, w)
			return
		}
		o.Weight = w
	}
}

// WithMaxExpansions bounds the number of finalized nodes.
//
//	n > 0:  stop after n expansions and report exhaustion
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result holds the outcome of one search run:
//   - Path: the route in goal→start order (see StartToGoal for the reverse);
//     nil when Found is false.
//   - Visited: cells in the exact order they were finalized — the visitation
//     trace consumed by rendering layers, never reordered.
//   - Cost: final cost-to-come (g) values for every discovered cell.
//   - Found: whether the goal was finalized; false means the search exhausted
//     its frontier (or hit a cutoff) and Visited/Cost remain as evidence of
//     what was explored.
//   - Expansions: number of finalized cells (== len(Visited)).
//   - Weight: the heuristic weight this run used; identifies runs in anytime
//     sweeps.
type Result struct {
	Path       []grid.Coord
	Visited    []grid.Coord
	Cost       map[grid.Coord]float64
	Found      bool
	Expansions int
	Weight     float64
}

// TotalCost returns the cost-to-come at the goal end of the path, or +Inf
// when the search did not reach the goal.
func (r *Result) TotalCost() float64 {
	if !r.Found || len(r.Path) == 0 {
		return math.Inf(1)
	}

	return r.Cost[r.Path[0]]
}

// StartToGoal returns a reversed copy of Path (start→goal order).
// Returns nil when the search did not find a path.
func (r *Result) StartToGoal() []grid.Coord {
	if r.Path == nil {
		return nil
	}
	out := make([]grid.Coord, len(r.Path))
	for i, c := range r.Path {
		out[len(r.Path)-1-i] = c
	}

	return out
}
