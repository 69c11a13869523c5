// Package numeric holds the few integer helpers the lattice packages share:
// checked conversion from int, type limits and saturating arithmetic.
//
// Go has no generic way to ask an integer type for its range, so LimitsOf
// derives it from the type's size and signedness.
package numeric

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ErrRange indicates a value that the target integer type cannot represent.
var ErrRange = errors.New("numeric: value out of range for target type")

// Limits is the inclusive range of an integer type.
type Limits[T constraints.Integer] struct {
	Min, Max T
}

// LimitsOf returns the representable range of T. O(1).
func LimitsOf[T constraints.Integer]() Limits[T] {
	var zero T
	if ^zero > zero {
		// unsigned: all bits set is the maximum, zero the minimum
		return Limits[T]{Min: zero, Max: ^zero}
	}
	bits := unsafe.Sizeof(zero) * 8
	hi := T(uint64(1)<<(bits-1) - 1)

	return Limits[T]{Min: -hi - 1, Max: hi}
}

// Add returns a+b clamped to [l.Min, l.Max].
func (l Limits[T]) Add(a, b T) T {
	if b > 0 && a > l.Max-b {
		return l.Max
	}
	if b < 0 && a < l.Min-b {
		return l.Min
	}

	return a + b
}

// FromInt converts n to T, failing with ErrRange instead of truncating.
func FromInt[T constraints.Integer](n int) (T, error) {
	v := T(n)
	// A lossless conversion round-trips and keeps its sign.
	if int64(v) != int64(n) || (v < 0) != (n < 0) {
		return 0, fmt.Errorf("%w: %d", ErrRange, n)
	}

	return v, nil
}

// MustFromInt is FromInt that panics on a range violation. The panic value is
// an error wrapping both ErrRange and ctx.
func MustFromInt[T constraints.Integer](n int, ctx error) T {
	v, err := FromInt[T](n)
	if err != nil {
		panic(fmt.Errorf("%w: %w", ctx, err))
	}

	return v
}

// Dist returns |a-b| widened to uint64. Exact for every integer type,
// including int64 operands of opposite sign.
func Dist[T constraints.Integer](a, b T) uint64 {
	// Sign-extending both operands keeps the difference exact modulo 2^64,
	// and |a-b| always fits.
	if a >= b {
		return uint64(a) - uint64(b)
	}

	return uint64(b) - uint64(a)
}

// AbsDiff returns |a-b| clamped to the maximum of T. It is safe for unsigned
// types and for signed operands whose difference T cannot hold.
func AbsDiff[T constraints.Integer](a, b T) T {
	d := Dist(a, b)
	if hi := LimitsOf[T]().Max; d > uint64(hi) {
		return hi
	}

	return T(d)
}

// SatAdd returns a+b, or math.MaxUint64 if the sum overflows.
func SatAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}

	return a + b
}

// MulLen multiplies two non-negative lengths, saturating at math.MaxInt.
func MulLen(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}

	return a * b
}
