// Package search provides the generalized best-first expansion engine over
// 2D occupancy grids, realizing Dijkstra, BFS, A* and Weighted A* from one
// loop — plus a dedicated stack-based DFS and an anytime weighted sweep.
//
// What
//
//   - Search(env, model, start, goal, opts...): the single expansion loop.
//     Pops the minimum-priority open entry, skips stale duplicates lazily,
//     finalizes the cell into the visitation trace, and relaxes neighbors
//     under the move.Model. Priority is g(n) + Weight·h(n).
//   - Variant constructors select the canonical combinations:
//     Dijkstra       — Conn4, terrain-only cost, weight 0
//     BFS            — Conn4, unit cost, FIFO frontier
//     DFS            — Conn4, unit cost, explicit LIFO stack
//     AStar          — Conn8, distance×terrain cost, weight 1 default;
//     WithWeight(w) gives Weighted A* (w>1) or the w=0
//     Dijkstra degenerate case
//     SearchAnytime  — repeated independent AStar runs at descending weights
//   - Every run returns a Result: Path (goal→start), Visited (finalize
//     order), Cost (cost-to-come map), Found, Expansions, Weight.
//
// Why
//
//	The classical grid-search algorithms differ only in their priority
//	function and movement model; keeping one loop parameterized by both
//	(instead of a subclass per algorithm) makes the shared bookkeeping —
//	cost-to-come, parent links, visitation order — obviously identical
//	across variants. DFS is structurally different (no cost comparisons,
//	eager visited-marking) and stays a separate code path on purpose.
//
// Determinism
//
//	Neighbor offsets are generated in a fixed order and the heap breaks ties
//	by push order, so identical inputs reproduce identical visitation traces
//	and paths.
//
// Optimality
//
//	With an admissible, consistent heuristic and Weight ≤ 1, the returned
//	path cost is minimal. Weight > 1 bounds suboptimality by Weight× the
//	optimal cost while typically expanding far fewer cells.
//
// Exhaustion vs. errors
//
//	An unreachable goal is NOT an error: Found=false with the full Visited
//	and Cost state as evidence. The same applies to the WithMaxExpansions
//	cutoff. A cancelled context returns the partial Result alongside the
//	context error. Invalid inputs (blocked endpoints, nil environment, bad
//	options) fail before any expansion runs.
//
// Complexity (N = expanded cells, E = examined edges ≤ 8N)
//
//   - Time:   O((N + E) log N)  best-first variants (heap operations)
//   - Time:   O(N + E)          BFS and DFS
//   - Memory: O(N)              g/parent maps, frontier, trace
//
// Usage
//
//	env := grid.DefaultMap()
//	overlay, _ := terrain.Generate(terrain.DefaultSeed,
//	    grid.Coord{X: 5, Y: 5}, grid.Coord{X: 45, Y: 25},
//	    env, terrain.DefaultRegion())
//
//	res, err := search.AStar(env, overlay,
//	    grid.Coord{X: 5, Y: 5}, grid.Coord{X: 45, Y: 25},
//	    search.WithWeight(2.5),
//	    search.WithHeuristic(search.Euclidean),
//	)
//	if err != nil {
//	    // ErrNilEnvironment, ErrInvalidEndpoint, ErrOptionViolation, ...
//	}
//	if !res.Found {
//	    // goal unreachable; res.Visited / res.Cost show what was explored
//	}
//
// Errors
//
//   - ErrNilEnvironment   if the environment pointer is nil.
//   - ErrInvalidEndpoint  if start or goal is blocked (checked up front).
//   - ErrOptionViolation  for invalid options (negative weight, bad kind).
//   - ErrBadWeight        if SearchAnytime is given maxWeight < 1.
//   - ErrBadStep          if SearchAnytime is given step ≤ 0.
//   - ErrMissingParent    engine invariant violation during path extraction;
//     indicates a bug, never bad user input.
package search
