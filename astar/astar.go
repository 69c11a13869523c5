package astar

import (
	"container/heap"
	"fmt"
	"iter"
)

// Search finds the shortest path from start to the first node satisfying
// isGoal. See the package documentation for the contract of each callback.
//
// Returns ErrNoPath when no goal is reachable, ErrNegativeWeight or
// ErrNegativeHeuristic (wrapped with the offending nodes) when a callback
// breaks its contract, and ErrNilFunc for nil callbacks.
func Search[N comparable, D Number](
	start N,
	isGoal func(N) bool,
	neighbors func(N) iter.Seq[N],
	heuristic func(N) D,
	weight func(from, to N) D,
	opts ...Option,
) (Result[N, D], error) {
	// 1) Validate callbacks.
	if isGoal == nil || neighbors == nil || heuristic == nil || weight == nil {
		return Result[N, D]{}, ErrNilFunc
	}

	// 2) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Run.
	r := &runner[N, D]{
		isGoal:    isGoal,
		neighbors: neighbors,
		heuristic: heuristic,
		weight:    weight,
		dist:      make(map[N]D),
	}
	if cfg.ReturnPath {
		r.prev = make(map[N]N)
	}

	return r.run(start)
}

// Dijkstra is Search with a zero heuristic.
func Dijkstra[N comparable, D Number](
	start N,
	isGoal func(N) bool,
	neighbors func(N) iter.Seq[N],
	weight func(from, to N) D,
	opts ...Option,
) (Result[N, D], error) {
	return Search(start, isGoal, neighbors, func(N) D { return 0 }, weight, opts...)
}

// Steps is Search on an unweighted graph: every edge costs one and the
// distance is the number of steps.
func Steps[N comparable](
	start N,
	isGoal func(N) bool,
	neighbors func(N) iter.Seq[N],
	opts ...Option,
) (Result[N, int], error) {
	return Dijkstra(start, isGoal, neighbors, func(N, N) int { return 1 }, opts...)
}

// Goal returns a predicate matching exactly end.
func Goal[N comparable](end N) func(N) bool {
	return func(n N) bool { return n == end }
}

// runner holds the mutable state of a single search.
type runner[N comparable, D Number] struct {
	isGoal    func(N) bool
	neighbors func(N) iter.Seq[N]
	heuristic func(N) D
	weight    func(from, to N) D

	dist map[N]D // best known distance from start
	prev map[N]N // predecessor on the best path; nil without WithPath
	pq   frontier[N, D]
	seq  uint64 // insertion counter for FIFO tie-breaks

	expanded int
}

func (r *runner[N, D]) run(start N) (Result[N, D], error) {
	r.dist[start] = 0
	if err := r.push(start, 0); err != nil {
		return Result[N, D]{}, err
	}

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*entry[N, D])
		u := item.node

		// Skip entries superseded by a shorter distance.
		if item.g > r.dist[u] {
			continue
		}
		r.expanded++

		if r.isGoal(u) {
			return Result[N, D]{
				Goal:     u,
				Distance: item.g,
				Path:     r.path(u),
				Expanded: r.expanded,
			}, nil
		}

		if err := r.relax(u, item.g); err != nil {
			return Result[N, D]{}, err
		}
	}

	return Result[N, D]{Expanded: r.expanded}, ErrNoPath
}

// relax offers every neighbor of u a path through u of length g+w.
func (r *runner[N, D]) relax(u N, g D) error {
	for v := range r.neighbors(u) {
		w := r.weight(u, v)
		if invalid(w) {
			return fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, u, v, w)
		}
		cand := g + w

		// Only a strictly shorter path re-opens a node.
		if old, seen := r.dist[v]; seen && cand >= old {
			continue
		}
		r.dist[v] = cand
		if r.prev != nil {
			r.prev[v] = u
		}
		if err := r.push(v, cand); err != nil {
			return err
		}
	}

	return nil
}

// push queues n with distance g, prioritised by g plus its heuristic.
func (r *runner[N, D]) push(n N, g D) error {
	h := r.heuristic(n)
	if invalid(h) {
		return fmt.Errorf("%w: node %v heuristic=%v", ErrNegativeHeuristic, n, h)
	}
	heap.Push(&r.pq, &entry[N, D]{node: n, g: g, f: g + h, seq: r.seq})
	r.seq++

	return nil
}

// path walks predecessors back from end. A node without a predecessor is the
// start.
func (r *runner[N, D]) path(end N) []N {
	if r.prev == nil {
		return nil
	}
	out := []N{end}
	for cur := end; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		out = append(out, p)
		cur = p
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// invalid reports a negative or NaN distance. NaN fails every comparison, so
// it would slip past a plain sign check and poison the frontier order.
func invalid[D Number](x D) bool {
	return x < 0 || x != x
}
