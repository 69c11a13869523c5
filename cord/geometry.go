package cord

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lattice/internal/numeric"
	"github.com/katalvlaran/lattice/product"
)

// Interpolate yields every lattice point of the box whose opposite corners are
// c and o, both included, lexicographically. Argument order does not matter.
func (c Cord[T]) Interpolate(o Cord[T]) iter.Seq[Cord[T]] {
	lo, hi := c.Extents(o)
	spans := make([]product.Span[T], c.dim)
	for i := range spans {
		spans[i] = product.Span[T]{Lo: lo.v[i], Hi: hi.v[i]}
	}

	return func(yield func(Cord[T]) bool) {
		it := product.New(spans...)
		for it.Next() {
			p := c
			copy(p.v[:], it.Values())
			if !yield(p) {
				return
			}
		}
	}
}

// ExtentsOf folds Extents over seq and returns the componentwise minimum and
// maximum. ok is false when seq is empty.
func ExtentsOf[T Scalar](seq iter.Seq[Cord[T]]) (lo, hi Cord[T], ok bool) {
	for c := range seq {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo, _ = lo.Extents(c)
		_, hi = hi.Extents(c)
	}

	return lo, hi, ok
}

// FromOffset maps a flat row-major index back to a point, given the width of
// each axis. Axis 0 varies fastest; the width of the last axis only sets the
// dimension. Components are filled from the highest axis down to axis 0.
//
//	// x x
//	// x x
//	// x x
//	FromOffset[int](3, 2, 3) == New(1, 1)
//
// Panics with ErrBadWidth for a non-positive width, ErrOffsetRange for a
// negative offset or a component T cannot hold, ErrDimRange for a bad
// number of widths.
func FromOffset[T Scalar](offset int, widths ...int) Cord[T] {
	out := Zero[T](len(widths))
	if offset < 0 {
		panic(fmt.Errorf("%w: %d", ErrOffsetRange, offset))
	}
	stride := 1
	for axis, w := range widths {
		if w <= 0 {
			panic(fmt.Errorf("%w: axis %d width %d", ErrBadWidth, axis, w))
		}
		if axis < len(widths)-1 {
			stride *= w
		}
	}
	for axis := len(widths) - 1; axis > 0; axis-- {
		q := offset / stride
		offset -= q * stride
		out.v[axis] = numeric.MustFromInt[T](q, ErrOffsetRange)
		stride /= widths[axis-1]
	}
	out.v[0] = numeric.MustFromInt[T](offset, ErrOffsetRange)

	return out
}

// Offset is the inverse of FromOffset. Panics with ErrOffsetRange if a
// component is negative.
func (c Cord[T]) Offset(widths ...int) int {
	if len(widths) != int(c.dim) {
		panic(fmt.Errorf("%w: %d widths for %d axes", ErrDimMismatch, len(widths), c.dim))
	}
	offset, stride := 0, 1
	for axis := 0; axis < int(c.dim); axis++ {
		if widths[axis] <= 0 {
			panic(fmt.Errorf("%w: axis %d width %d", ErrBadWidth, axis, widths[axis]))
		}
		if c.v[axis] < 0 {
			panic(fmt.Errorf("%w: %v", ErrOffsetRange, c))
		}
		offset += int(c.v[axis]) * stride
		stride *= widths[axis]
	}

	return offset
}
