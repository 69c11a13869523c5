// Package floodfill collects every node reachable from a start node.
//
// The neighbor function decides what belongs to the region: it should yield
// only nodes the caller wants included (open cells, same-colour pixels, ...).
// Traversal uses an explicit stack, so region size is not limited by the
// goroutine stack, and every node is expanded at most once however many
// neighbors point at it.
//
// Complexity: O(V + E) time, O(V) memory.
package floodfill

import "iter"

// Result is the region found by Fill.
type Result[N comparable] struct {
	// Visited holds every node of the region, start included.
	Visited map[N]struct{}

	// Order lists the nodes in the order they joined the region.
	Order []N
}

// Len returns the number of nodes in the region.
func (r *Result[N]) Len() int { return len(r.Order) }

// Contains reports whether n is part of the region.
func (r *Result[N]) Contains(n N) bool {
	_, ok := r.Visited[n]
	return ok
}

// Fill returns the region reachable from start through neighbors.
func Fill[N comparable](start N, neighbors func(N) iter.Seq[N]) *Result[N] {
	res := &Result[N]{
		Visited: map[N]struct{}{start: {}},
		Order:   []N{start},
	}
	stack := []N{start}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for m := range neighbors(n) {
			if _, seen := res.Visited[m]; seen {
				continue
			}
			// first insertion is the only time m gets pushed
			res.Visited[m] = struct{}{}
			res.Order = append(res.Order, m)
			stack = append(stack, m)
		}
	}

	return res
}
