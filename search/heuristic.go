package search

import "github.com/katalvlaran/gridpath/grid"

// heuristicValue estimates the remaining cost from n to goal under kind.
// Both estimates are admissible for unit-multiplier terrain; with weight ≤ 1
// they never overestimate the true remaining cost, which is what the
// optimality guarantee of the engine rests on.
func heuristicValue(kind HeuristicKind, n, goal grid.Coord) float64 {
	if kind == Manhattan {
		return float64(n.ManhattanTo(goal))
	}

	return n.EuclideanTo(goal)
}
