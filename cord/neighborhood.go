package cord

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/lattice/internal/numeric"
	"github.com/katalvlaran/lattice/product"
)

// Neighborhood is the Moore neighborhood of a center: every point whose
// distance on each axis is at most the radius, the center excluded.
//
// A Neighborhood is a plain value; All can be called any number of times.
type Neighborhood[T Scalar] struct {
	center Cord[T]
	radius T
	spans  [MaxDim]product.Span[T]
	length int
}

// Moore returns the Moore neighborhood of c with the given radius.
//
// For a center far from the limits of T the neighborhood has exactly
// (2r+1)^Dim - 1 points. Near those limits the box is clipped rather than
// wrapped. Panics with ErrRadiusRange if radius is negative or does not fit T.
func (c Cord[T]) Moore(radius int) Neighborhood[T] {
	if radius < 0 {
		panic(fmt.Errorf("%w: %d", ErrRadiusRange, radius))
	}
	r := numeric.MustFromInt[T](radius, ErrRadiusRange)
	lim := numeric.LimitsOf[T]()

	n := Neighborhood[T]{center: c, radius: r, length: 1}
	for i := 0; i < int(c.dim); i++ {
		s := product.Span[T]{Lo: lim.Min, Hi: lim.Max}
		if c.v[i] >= lim.Min+r {
			s.Lo = c.v[i] - r
		}
		if c.v[i] <= lim.Max-r {
			s.Hi = c.v[i] + r
		}
		n.spans[i] = s
		n.length = numeric.MulLen(n.length, s.Len())
	}
	// the center itself is always inside the box
	if n.length < math.MaxInt {
		n.length--
	}

	return n
}

// Center returns the point the neighborhood surrounds.
func (n Neighborhood[T]) Center() Cord[T] { return n.center }

// Radius returns the per-axis radius.
func (n Neighborhood[T]) Radius() T { return n.radius }

// Len returns the number of points All yields. O(1).
//
// Away from the limits of T this is (2r+1)^Dim - 1. A box clipped at those
// limits holds fewer points, and Len counts only the clipped box. A count
// that int cannot hold saturates at math.MaxInt.
func (n Neighborhood[T]) Len() int { return n.length }

// All yields the neighborhood lexicographically, axis 0 varying slowest.
func (n Neighborhood[T]) All() iter.Seq[Cord[T]] {
	return func(yield func(Cord[T]) bool) {
		it := product.New(n.spans[:n.center.dim]...)
		for it.Next() {
			p := n.center
			copy(p.v[:], it.Values())
			if p == n.center {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Neumann yields every point within Manhattan distance radius of c, c
// excluded, in the same order as Moore. The distance test is done in uint64,
// so it stays exact for points near the limits of T. The sequence is
// restartable.
// Panics with ErrRadiusRange like Moore.
func (c Cord[T]) Neumann(radius int) iter.Seq[Cord[T]] {
	moore := c.Moore(radius)

	return func(yield func(Cord[T]) bool) {
		for p := range moore.All() {
			if c.dist(p) > uint64(moore.radius) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}
