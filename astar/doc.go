// Package astar implements A* shortest-path search over implicit graphs.
//
// The graph is never materialised: the caller supplies a start node, a goal
// predicate, a neighbor function and two cost functions. Any comparable type
// can be a node, which makes cord.Cord points a natural fit.
//
// Inputs:
//
//   - isGoal(n):     search stops at the first settled node satisfying it.
//   - neighbors(n):  nodes reachable from n in one step.
//   - heuristic(n):  lower bound of the remaining distance; must never
//     overestimate and must never be negative. A zero heuristic turns the
//     search into Dijkstra (see Dijkstra).
//   - weight(u, v):  cost of the step u→v; must never be negative. A weight of
//     one everywhere gives unweighted shortest paths (see Steps).
//
// Frontier and tie-break:
//
//	Nodes wait in a binary min-heap ordered by g+h, where g is the best known
//	distance from start. Equal priorities are served in insertion order, so
//	the result is deterministic for deterministic neighbor functions. A node
//	is pushed only when its best known distance is set or strictly improved;
//	older heap entries for it are skipped when popped (lazy decrease-key).
//
// Errors (sentinel):
//
//   - ErrNilFunc:           a required callback is nil.
//   - ErrNoPath:            the frontier emptied without reaching a goal.
//   - ErrNegativeWeight:    weight returned a negative or NaN value.
//   - ErrNegativeHeuristic: heuristic returned a negative or NaN value.
//
// Negative and NaN values are rejected before they take part in any arithmetic.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for consistent heuristics.
//   - Space: O(V + E) for the distance map, predecessor map and heap.
//
// Termination is guaranteed on finite graphs. On unbounded lattices the
// neighbor function or goal predicate has to bound the search.
//
// All state belongs to a single Search call, so independent searches may run
// in parallel.
package astar
