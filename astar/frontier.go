package astar

// entry is one frontier slot. Several entries may exist for the same node;
// only the one whose g matches the best known distance is live.
type entry[N comparable, D Number] struct {
	node N
	g    D      // distance from start when pushed
	f    D      // g + heuristic(node)
	seq  uint64 // insertion order, breaks ties between equal f
}

// frontier is a min-heap of *entry ordered by f, then by seq.
type frontier[N comparable, D Number] []*entry[N, D]

func (pq frontier[N, D]) Len() int { return len(pq) }

func (pq frontier[N, D]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontier[N, D]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an *entry.
func (pq *frontier[N, D]) Push(x any) { *pq = append(*pq, x.(*entry[N, D])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *frontier[N, D]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
