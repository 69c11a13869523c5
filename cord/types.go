package cord

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// MaxDim is the largest number of components a Cord can hold.
const MaxDim = 4

// Scalar is the component type of a Cord: any signed or unsigned integer.
type Scalar interface {
	constraints.Integer
}

// Sentinel errors. Cord is a value type used in tight loops, so misuse panics
// with an error wrapping one of these instead of returning it.
var (
	// ErrDimRange indicates a dimension outside 1..MaxDim.
	ErrDimRange = errors.New("cord: dimension out of range")

	// ErrDimMismatch indicates a binary operation on Cords of different dimension.
	ErrDimMismatch = errors.New("cord: dimension mismatch")

	// ErrAxisRange indicates an axis index outside 0..Dim()-1.
	ErrAxisRange = errors.New("cord: axis out of range")

	// ErrRadiusRange indicates a negative radius or one the component type cannot hold.
	ErrRadiusRange = errors.New("cord: radius not representable")

	// ErrOffsetRange indicates a negative offset or a component the type cannot hold.
	ErrOffsetRange = errors.New("cord: offset not representable")

	// ErrBadWidth indicates a non-positive axis width.
	ErrBadWidth = errors.New("cord: axis width must be positive")
)

// Cord is a point on a Dim()-dimensional integer lattice.
// The zero value has no dimensions; build Cords with New or Zero.
type Cord[T Scalar] struct {
	v   [MaxDim]T
	dim uint8
}

// Bounds is an axis-aligned box given by its inclusive corners.
type Bounds[T Scalar] struct {
	Min, Max Cord[T]
}

// Contains reports whether c lies inside b on every axis.
func (b Bounds[T]) Contains(c Cord[T]) bool {
	b.Min.mustMatch(c)
	b.Max.mustMatch(c)
	for i := 0; i < int(c.dim); i++ {
		if c.v[i] < b.Min.v[i] || c.v[i] > b.Max.v[i] {
			return false
		}
	}

	return true
}
