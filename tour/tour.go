package tour

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lattice/floydwarshall"
	"github.com/katalvlaran/lattice/internal/numeric"
)

// MaxPoints bounds the subset table at 2^MaxPoints rows.
const MaxPoints = 16

// Sentinel errors returned by Shortest.
var (
	ErrNoPoints       = errors.New("tour: no points")
	ErrTooManyPoints  = errors.New("tour: too many points")
	ErrDuplicatePoint = errors.New("tour: duplicate point")
	ErrIncomplete     = errors.New("tour: no route visits every point")
)

// Options configures Shortest.
//
// Return – if true, the route ends back at the first point.
type Options struct {
	Return bool
}

// Option represents a functional option for Shortest.
type Option func(*Options)

// WithReturn closes the route into a cycle.
func WithReturn() Option {
	return func(o *Options) {
		o.Return = true
	}
}

// DefaultOptions returns an open route.
func DefaultOptions() Options {
	return Options{Return: false}
}

// Result holds the best route.
type Result[N comparable, D constraints.Integer] struct {
	// Order lists the points in visiting order, starting with points[0].
	// With WithReturn the start is repeated at the end.
	Order []N

	// Cost is the summed length of the legs.
	Cost D
}

// Shortest returns the cheapest route through points using the legs in dist.
// Missing legs, or legs at floydwarshall.Inf, cannot be taken.
func Shortest[N comparable, D constraints.Integer](points []N, dist floydwarshall.Table[N, D], opts ...Option) (Result[N, D], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate input.
	n := len(points)
	switch {
	case n == 0:
		return Result[N, D]{}, ErrNoPoints
	case n > MaxPoints:
		return Result[N, D]{}, fmt.Errorf("%w: %d > %d", ErrTooManyPoints, n, MaxPoints)
	}
	seen := make(map[N]struct{}, n)
	for _, p := range points {
		if _, dup := seen[p]; dup {
			return Result[N, D]{}, fmt.Errorf("%w: %v", ErrDuplicatePoint, p)
		}
		seen[p] = struct{}{}
	}
	if n == 1 {
		order := []N{points[0]}
		if cfg.Return {
			order = append(order, points[0])
		}
		return Result[N, D]{Order: order}, nil
	}

	// 2) Copy legs into a dense matrix; inf marks a missing leg.
	lim := numeric.LimitsOf[D]()
	inf := lim.Max
	leg := make([]D, n*n)
	for i, a := range points {
		for j, b := range points {
			d, ok := dist.Get(a, b)
			if !ok {
				d = inf
			}
			leg[i*n+j] = d
		}
	}

	// 3) cost[mask*n+j]: cheapest route from 0 through mask ending at j.
	full := 1<<n - 1
	cost := make([]D, (full+1)*n)
	parent := make([]int8, (full+1)*n)
	for i := range cost {
		cost[i] = inf
		parent[i] = -1
	}
	cost[1*n+0] = 0

	for mask := 1; mask <= full; mask += 2 { // masks containing point 0
		for j := 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ 1<<j
			for k := 0; k < n; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				c, l := cost[prev*n+k], leg[k*n+j]
				if c == inf || l == inf {
					continue
				}
				if cand := lim.Add(c, l); cand < cost[mask*n+j] {
					cost[mask*n+j] = cand
					parent[mask*n+j] = int8(k)
				}
			}
		}
	}

	// 4) Pick the best last point, adding the way home if requested.
	best, last := inf, -1
	for j := 1; j < n; j++ {
		c := cost[full*n+j]
		if c == inf {
			continue
		}
		if cfg.Return {
			back := leg[j*n+0]
			if back == inf {
				continue
			}
			c = lim.Add(c, back)
		}
		if c < best {
			best, last = c, j
		}
	}
	if last < 0 {
		return Result[N, D]{}, ErrIncomplete
	}

	// 5) Reconstruct.
	order := make([]N, n, n+1)
	mask, j := full, last
	for i := n - 1; i >= 1; i-- {
		order[i] = points[j]
		p := int(parent[mask*n+j])
		mask ^= 1 << j
		j = p
	}
	order[0] = points[0]
	if cfg.Return {
		order = append(order, points[0])
	}

	return Result[N, D]{Order: order, Cost: best}, nil
}
