package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/terrain"
)

// ExampleBFS finds a fewest-hop route across an open 7×7 grid.
// The start and goal are four columns apart, so the minimal path holds
// five cells at depth four.
func ExampleBFS() {
	env, err := grid.NewEnvironment(7, 7, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.BFS(env, grid.Coord{X: 1, Y: 3}, grid.Coord{X: 5, Y: 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("found=%v hops=%d cost=%.0f\n", res.Found, len(res.Path)-1, res.TotalCost())
	// Output:
	// found=true hops=4 cost=4
}

// ExampleDijkstra routes around an expensive terrain corridor. Crossing the
// three cost-5 cells head-on would cost 16; the one-row detour costs 6.
func ExampleDijkstra() {
	env, err := grid.NewEnvironment(7, 7, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	overlay, err := terrain.NewOverlay(map[grid.Coord]int{
		{X: 2, Y: 3}: 5,
		{X: 3, Y: 3}: 5,
		{X: 4, Y: 3}: 5,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.Dijkstra(env, overlay, grid.Coord{X: 1, Y: 3}, grid.Coord{X: 5, Y: 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("found=%v cost=%.0f\n", res.Found, res.TotalCost())
	// Output:
	// found=true cost=6
}

// ExampleSearchAnytime sweeps the inflation weight from 2 down to 1 in
// halves, yielding one independent run per weight.
func ExampleSearchAnytime() {
	env, err := grid.NewEnvironment(20, 20, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	results, err := search.SearchAnytime(env, nil, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 18, Y: 18}, 2, 0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, res := range results {
		fmt.Printf("w=%g found=%v\n", res.Weight, res.Found)
	}
	// Output:
	// w=2 found=true
	// w=1.5 found=true
	// w=1 found=true
}
