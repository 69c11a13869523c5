package cord

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/katalvlaran/lattice/internal/numeric"
)

// New returns the Cord with the given components.
// Panics with ErrDimRange unless 1 <= len(xs) <= MaxDim.
func New[T Scalar](xs ...T) Cord[T] {
	c := Zero[T](len(xs))
	copy(c.v[:], xs)

	return c
}

// Zero returns the origin of a dim-dimensional lattice.
// Panics with ErrDimRange unless 1 <= dim <= MaxDim.
func Zero[T Scalar](dim int) Cord[T] {
	if dim < 1 || dim > MaxDim {
		panic(fmt.Errorf("%w: %d (max %d)", ErrDimRange, dim, MaxDim))
	}

	return Cord[T]{dim: uint8(dim)}
}

// Dim returns the number of components.
func (c Cord[T]) Dim() int { return int(c.dim) }

// At returns component i.
func (c Cord[T]) At(i int) T {
	c.mustAxis(i)
	return c.v[i]
}

// With returns a copy of c with component i set to x.
func (c Cord[T]) With(i int, x T) Cord[T] {
	c.mustAxis(i)
	c.v[i] = x

	return c
}

// Slice returns the components as a fresh slice.
func (c Cord[T]) Slice() []T {
	out := make([]T, c.dim)
	copy(out, c.v[:c.dim])

	return out
}

// Apply combines c and o component-wise with fn.
func (c Cord[T]) Apply(o Cord[T], fn func(a, b T) T) Cord[T] {
	c.mustMatch(o)
	for i := 0; i < int(c.dim); i++ {
		c.v[i] = fn(c.v[i], o.v[i])
	}

	return c
}

// Add returns c+o component-wise. Overflow wraps.
func (c Cord[T]) Add(o Cord[T]) Cord[T] {
	c.mustMatch(o)
	for i := 0; i < int(c.dim); i++ {
		c.v[i] += o.v[i]
	}

	return c
}

// Sub returns c-o component-wise. Overflow wraps.
func (c Cord[T]) Sub(o Cord[T]) Cord[T] {
	c.mustMatch(o)
	for i := 0; i < int(c.dim); i++ {
		c.v[i] -= o.v[i]
	}

	return c
}

// Mul scales every component by k. Overflow wraps.
func (c Cord[T]) Mul(k T) Cord[T] {
	for i := 0; i < int(c.dim); i++ {
		c.v[i] *= k
	}

	return c
}

// Div divides every component by k, truncating toward zero.
// Panics if k is zero.
func (c Cord[T]) Div(k T) Cord[T] {
	for i := 0; i < int(c.dim); i++ {
		c.v[i] /= k
	}

	return c
}

// Manhattan returns the sum over all axes of |c[i]-o[i]|, saturating at the
// maximum of T when the true distance does not fit.
func (c Cord[T]) Manhattan(o Cord[T]) T {
	d := c.dist(o)
	if hi := numeric.LimitsOf[T]().Max; d > uint64(hi) {
		return hi
	}

	return T(d)
}

// dist is the exact Manhattan distance in uint64, saturating at
// math.MaxUint64.
func (c Cord[T]) dist(o Cord[T]) uint64 {
	c.mustMatch(o)
	var sum uint64
	for i := 0; i < int(c.dim); i++ {
		sum = numeric.SatAdd(sum, numeric.Dist(c.v[i], o.v[i]))
	}

	return sum
}

// Extents returns the componentwise minimum and maximum of c and o.
func (c Cord[T]) Extents(o Cord[T]) (lo, hi Cord[T]) {
	c.mustMatch(o)
	lo, hi = c, c
	for i := 0; i < int(c.dim); i++ {
		lo.v[i] = min(c.v[i], o.v[i])
		hi.v[i] = max(c.v[i], o.v[i])
	}

	return lo, hi
}

// Compare orders a and b lexicographically, axis 0 first.
// It returns -1, 0 or +1 like cmp.Compare.
func Compare[T Scalar](a, b Cord[T]) int {
	a.mustMatch(b)
	for i := 0; i < int(a.dim); i++ {
		if r := cmp.Compare(a.v[i], b.v[i]); r != 0 {
			return r
		}
	}

	return 0
}

// Less reports whether a sorts before b under Compare.
func Less[T Scalar](a, b Cord[T]) bool { return Compare(a, b) < 0 }

// String renders c as "[x, y, ...]".
func (c Cord[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < int(c.dim); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, c.v[i])
	}
	sb.WriteByte(']')

	return sb.String()
}

func (c Cord[T]) mustMatch(o Cord[T]) {
	if c.dim != o.dim {
		panic(fmt.Errorf("%w: %d vs %d", ErrDimMismatch, c.dim, o.dim))
	}
}

func (c Cord[T]) mustAxis(i int) {
	if i < 0 || i >= int(c.dim) {
		panic(fmt.Errorf("%w: %d of %d", ErrAxisRange, i, c.dim))
	}
}
