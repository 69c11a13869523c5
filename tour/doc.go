// Package tour finds the shortest route through every point of a distance
// table: the route starts at the first point, visits each other point once
// and, with WithReturn, comes back to the start.
//
// What:
//
//   - Shortest runs Held–Karp dynamic programming over subsets of points.
//   - Distances come from a floydwarshall.Table, so legs are shortest walks
//     and passing through an already visited point costs nothing extra.
//
// Complexity:
//
//   - Time:   O(n²·2ⁿ), Memory: O(n·2ⁿ) for n points.
//   - n is capped at MaxPoints.
//
// Errors:
//
//   - ErrNoPoints: the point list is empty.
//   - ErrTooManyPoints: more than MaxPoints points.
//   - ErrDuplicatePoint: a point is listed twice.
//   - ErrIncomplete: no route visits every point (some leg is missing).
package tour
