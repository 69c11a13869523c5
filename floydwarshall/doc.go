// Package floydwarshall computes all-pairs shortest distances over a small,
// explicit set of nodes.
//
// Contract:
//
//   - Distances live in a sparse Table keyed by ordered node pairs. A missing
//     pair means "no known edge" and reads as Inf, the largest value of the
//     distance type.
//   - Run relaxes every pair through every intermediate node, loop order
//     k → j → i over the keys slice, mutating the caller's table in place.
//   - Additions saturate at Inf instead of wrapping, and Inf never takes part
//     in a relaxation, so unreachable pairs stay at Inf.
//   - Run does not assume the graph is connected and does not seed the
//     diagonal: dist[i,i] is whatever the cheapest cycle through i costs,
//     or Inf. Seed Set(i, i, 0) when a zero diagonal is wanted.
//
// After Run, dist[i,j] <= dist[i,k] + dist[k,j] holds for every triple of keys.
//
// Complexity: Time O(n³) map operations, extra space O(n²) for the filled table.
package floydwarshall
