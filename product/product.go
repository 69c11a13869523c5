package product

import (
	"iter"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lattice/internal/numeric"
)

// Span is an inclusive integer range [Lo, Hi]. A span with Lo > Hi is empty.
type Span[T constraints.Integer] struct {
	Lo, Hi T
}

// Len returns the number of integers in s, saturating at math.MaxInt when
// int cannot hold the count (int64{MinInt64, MaxInt64}, for one).
func (s Span[T]) Len() int {
	if s.Lo > s.Hi {
		return 0
	}
	// widened so int8{-128,127} does not wrap
	w := numeric.Dist(s.Hi, s.Lo)
	if w >= math.MaxInt {
		return math.MaxInt
	}

	return int(w) + 1
}

// cursor is the live iterator over one Span. It never increments past Hi, so a
// span ending at the type's maximum does not overflow.
type cursor[T constraints.Integer] struct {
	next T
	hi   T
	done bool
}

func newCursor[T constraints.Integer](s Span[T]) cursor[T] {
	return cursor[T]{next: s.Lo, hi: s.Hi, done: s.Lo > s.Hi}
}

func (c *cursor[T]) step() (T, bool) {
	if c.done {
		var zero T
		return zero, false
	}
	v := c.next
	if v == c.hi {
		c.done = true
	} else {
		c.next++
	}

	return v, true
}

// Iterator yields the Cartesian product of its spans in lexicographic order.
type Iterator[T constraints.Integer] struct {
	current []T         // tuple returned by Values
	reset   []cursor[T] // fresh cursor per axis, copied over live on carry
	live    []cursor[T] // cursor being consumed per axis
	length  int

	started  bool
	finished bool
}

// New builds an Iterator over spans. With no spans, or with any empty span,
// the product is empty.
func New[T constraints.Integer](spans ...Span[T]) *Iterator[T] {
	it := &Iterator[T]{
		current: make([]T, len(spans)),
		reset:   make([]cursor[T], len(spans)),
		live:    make([]cursor[T], len(spans)),
		length:  0,
	}
	if len(spans) > 0 {
		it.length = 1
	}
	for i, s := range spans {
		it.reset[i] = newCursor(s)
		it.live[i] = it.reset[i]
		it.length = numeric.MulLen(it.length, s.Len())
	}

	return it
}

// Len returns the total number of tuples the iterator produces from the start,
// regardless of how many have been consumed. Saturates at math.MaxInt.
func (it *Iterator[T]) Len() int { return it.length }

// Next advances to the next tuple and reports whether one exists.
func (it *Iterator[T]) Next() bool {
	if it.finished {
		return false
	}
	if !it.started {
		return it.prime()
	}

	// Odometer step: bump the least significant axis, carrying leftward.
	for axis := len(it.live) - 1; axis >= 0; axis-- {
		if v, ok := it.live[axis].step(); ok {
			it.current[axis] = v
			return true
		}
		if axis == 0 {
			break
		}
		it.live[axis] = it.reset[axis]
		it.current[axis], _ = it.live[axis].step()
	}
	it.finished = true

	return false
}

// prime pulls the first value of every axis.
func (it *Iterator[T]) prime() bool {
	it.started = true
	if len(it.live) == 0 {
		it.finished = true
		return false
	}
	for axis := range it.live {
		v, ok := it.live[axis].step()
		if !ok {
			it.finished = true
			return false
		}
		it.current[axis] = v
	}

	return true
}

// Values returns the current tuple. The slice is owned by the iterator and is
// overwritten by the next call to Next.
func (it *Iterator[T]) Values() []T { return it.current }

// Seq adapts the iterator to range-over-func. It consumes the iterator; the
// yielded slice is reused between iterations.
func (it *Iterator[T]) Seq() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for it.Next() {
			if !yield(it.current) {
				return
			}
		}
	}
}
