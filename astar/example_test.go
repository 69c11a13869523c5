package astar_test

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lattice/astar"
	"github.com/katalvlaran/lattice/cord"
)

// ExampleSearch routes around a short wall on an open lattice, using the
// Manhattan distance as an admissible heuristic.
//
//	S . # . E
//	. . # . .
//	. . . . .
func ExampleSearch() {
	wall := map[cord.Cord[int]]bool{cord.New(2, 0): true, cord.New(2, 1): true}
	bounds := cord.Bounds[int]{Min: cord.New(0, 0), Max: cord.New(4, 2)}
	start, end := cord.New(0, 0), cord.New(4, 0)

	neighbors := func(c cord.Cord[int]) iter.Seq[cord.Cord[int]] {
		return func(yield func(cord.Cord[int]) bool) {
			for n := range c.Neumann(1) {
				if bounds.Contains(n) && !wall[n] && !yield(n) {
					return
				}
			}
		}
	}

	res, err := astar.Search(start, astar.Goal(end), neighbors,
		func(c cord.Cord[int]) int { return c.Manhattan(end) },
		func(_, _ cord.Cord[int]) int { return 1 },
		astar.WithPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("distance:", res.Distance)
	fmt.Println("path:", res.Path)
	// Output:
	// distance: 8
	// path: [[0, 0] [1, 0] [1, 1] [1, 2] [2, 2] [3, 2] [3, 1] [3, 0] [4, 0]]
}

// ExampleSteps counts hops on a small directed graph.
func ExampleSteps() {
	edges := map[string][]string{"a": {"b", "c"}, "b": {"d"}, "c": {"d"}, "d": {"e"}}
	res, _ := astar.Steps("a", astar.Goal("e"), func(n string) iter.Seq[string] {
		return func(yield func(string) bool) {
			for _, m := range edges[n] {
				if !yield(m) {
					return
				}
			}
		}
	}, astar.WithPath())
	fmt.Println(res.Distance, res.Path)
	// Output:
	// 3 [a b d e]
}
