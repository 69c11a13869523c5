// Package lattice is a toolkit for searching N-dimensional integer lattices
// and the graphs hiding inside text grids.
//
// Packages:
//
//	cord/            Cord[T], an N-d integer coordinate: arithmetic, Moore and
//	                 von Neumann neighborhoods, interpolation, extents, offsets
//	product/         odometer iterator over the Cartesian product of ranges
//	astar/           A* / Dijkstra over caller-supplied neighbor functions
//	floydwarshall/   all-pairs distances over a sparse pair-keyed table
//	floodfill/       reachable set from a start node, explicit stack
//	tour/            shortest route through every point (Held–Karp)
//	dir/             2-D screen directions and quarter turns
//	parse/           signed integers out of puzzle text
//	grid/            text grids: shortest paths, islands, bridges, tours
//	cmd/lattice      command-line front end for grid
//
// Quick example:
//
//	S..#
//	.#..
//	...E
//
//	g, _ := grid.ParseString("S..#\n.#..\n...E\n")
//	res, _ := g.ShortestPath(cord.New(0, 0), cord.New(3, 2)) // res.Distance == 5
//
// The algorithm packages never log and never block: every call owns its
// working state and returns errors wrapping package sentinels.
package lattice
