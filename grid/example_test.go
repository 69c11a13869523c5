package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lattice/grid"
)

// ExampleGrid_ShortestPath walks a small maze from S to E and draws the route.
func ExampleGrid_ShortestPath() {
	g, _ := grid.ParseString("S..#....\n.#.#.##.\n.#...#E.\n")
	s, _ := g.Find('S')
	e, _ := g.Find('E')

	res, err := g.ShortestPath(s, e)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("steps:", res.Distance)
	fmt.Print(g.Render(res.Path))

	// Output:
	// steps: 14
	// OOO#OOOO
	// .#O#O##O
	// .#OOO#OO
}

// ExampleGrid_Components counts islands of land ('~' is water) under
// both connectivities.
func ExampleGrid_Components() {
	const chart = "x~~x\n~x~~\n~~~x\n"
	four, _ := grid.ParseString(chart, grid.WithWalls("~"))
	eight, _ := grid.ParseString(chart, grid.WithWalls("~"), grid.WithConn(grid.Conn8))

	fmt.Println(four.Conn, len(four.Components()))
	fmt.Println(eight.Conn, len(eight.Components()))

	// Output:
	// conn4 4
	// conn8 3
}
