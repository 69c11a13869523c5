package floydwarshall

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lattice/internal/numeric"
)

// Sentinel errors returned by Run.
var (
	// ErrNilTable indicates a nil distance table.
	ErrNilTable = errors.New("floydwarshall: distance table is nil")

	// ErrDuplicateKey indicates that a node appears twice in the key set.
	ErrDuplicateKey = errors.New("floydwarshall: duplicate node key")
)

// Pair is an ordered (from, to) node pair.
type Pair[N comparable] struct {
	From, To N
}

// Table maps node pairs to distances. Missing pairs are infinitely far apart.
type Table[N comparable, D constraints.Integer] map[Pair[N]]D

// NewTable returns an empty Table.
func NewTable[N comparable, D constraints.Integer]() Table[N, D] {
	return make(Table[N, D])
}

// Inf returns the sentinel used for "no path": the largest value of D.
func Inf[D constraints.Integer]() D {
	return numeric.LimitsOf[D]().Max
}

// Set records the distance from → to.
func (t Table[N, D]) Set(from, to N, d D) {
	t[Pair[N]{From: from, To: to}] = d
}

// SetBoth records d in both directions.
func (t Table[N, D]) SetBoth(a, b N, d D) {
	t.Set(a, b, d)
	t.Set(b, a, d)
}

// Get returns the distance from → to and whether it is finite.
// Missing pairs return Inf and false.
func (t Table[N, D]) Get(from, to N) (D, bool) {
	inf := Inf[D]()
	d, ok := t[Pair[N]{From: from, To: to}]
	if !ok || d == inf {
		return inf, false
	}

	return d, true
}

// Run closes dist over keys: afterwards dist[i,j] is the shortest distance
// from i to j through any sequence of keys, or Inf. Every pair of keys has an
// entry on return.
func Run[N comparable, D constraints.Integer](keys []N, dist Table[N, D]) error {
	// 1) Validate inputs.
	if dist == nil {
		return ErrNilTable
	}
	seen := make(map[N]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		seen[k] = struct{}{}
	}

	// 2) Fill missing pairs with Inf so every read below is a plain lookup.
	lim := numeric.LimitsOf[D]()
	for _, i := range keys {
		for _, j := range keys {
			p := Pair[N]{From: i, To: j}
			if _, ok := dist[p]; !ok {
				dist[p] = lim.Max
			}
		}
	}

	// 3) Relax in fixed k → j → i order.
	var ik, kj, ij D
	for _, k := range keys {
		for _, j := range keys {
			kj = dist[Pair[N]{From: k, To: j}]
			if kj == lim.Max { // k cannot reach j
				continue
			}
			for _, i := range keys {
				ik = dist[Pair[N]{From: i, To: k}]
				if ik == lim.Max { // i cannot reach k
					continue
				}
				ij = dist[Pair[N]{From: i, To: j}]
				if cand := lim.Add(ik, kj); cand < ij {
					dist[Pair[N]{From: i, To: j}] = cand
				}
			}
		}
	}

	return nil
}
