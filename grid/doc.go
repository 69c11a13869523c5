// Package grid reads a rectangular text map and answers lattice questions
// about it: shortest walks, flooded regions, islands and bridges.
//
// What:
//
//   - Grid parses lines of runes; wall runes block movement, everything
//     else is open. Positions are cord.Cord[int] with axis 0 = x (column)
//     and axis 1 = y (row, growing downwards).
//   - Blocked cells live in a bitset indexed by row-major offset.
//   - Conn4 steps through the von Neumann neighborhood of radius 1,
//     Conn8 through the Moore neighborhood.
//
// How:
//
//   - ShortestPath: A* with Manhattan (Conn4) or Chebyshev (Conn8) heuristic.
//   - Reachable, Components: flood fill over open cells.
//   - Bridge: A* with 0/1 weights, entering a wall cell costs one.
//   - PathDistances: pairwise walks between points of interest that do not
//     pass through a third point, closed with Floyd–Warshall.
//
// Complexity:
//
//   - Parse:         O(W×H) time and memory.
//   - ShortestPath:  O(W×H×log(W×H)) worst case.
//   - Components:    O(W×H×d), d = 4 or 8.
//   - Bridge:        O(W×H×log(W×H)).
//   - PathDistances: O(P²×W×H×log(W×H) + P³) for P points.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds, ErrBlocked: an endpoint is outside or on a wall.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no walk exists between the endpoints.
package grid
