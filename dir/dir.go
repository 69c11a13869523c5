// Package dir provides the four screen directions of a 2-D grid and quarter
// turns between them.
//
// Screen orientation is assumed throughout: Right increases x (axis 0) and
// Down increases y (axis 1).
package dir

import (
	"errors"
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lattice/cord"
)

// ErrBadVelocity is returned by FromVelocity for anything other than a unit
// step along one axis.
var ErrBadVelocity = errors.New("dir: velocity is not a unit axis step")

// Dir is a direction; its value counts clockwise quarter turns from Right.
type Dir uint8

const (
	Right Dir = iota
	Down
	Left
	Up
)

// Rotation is a quarter turn.
type Rotation uint8

const (
	// CounterClockwise turns left.
	CounterClockwise Rotation = iota
	// Clockwise turns right.
	Clockwise
)

// All yields Right, Down, Left, Up.
func All() iter.Seq[Dir] {
	return func(yield func(Dir) bool) {
		for d := Right; d <= Up; d++ {
			if !yield(d) {
				return
			}
		}
	}
}

// Rotate returns d turned a quarter in the given rotation.
func (d Dir) Rotate(r Rotation) Dir {
	if r == Clockwise {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// Opposite returns d turned half way round.
func (d Dir) Opposite() Dir { return (d + 2) % 4 }

// Velocity returns the unit step of d.
func (d Dir) Velocity() cord.Cord[int] { return VelocityOf[int](d) }

// VelocityOf is Velocity for any signed component type.
func VelocityOf[T constraints.Signed](d Dir) cord.Cord[T] {
	switch d % 4 {
	case Right:
		return cord.New[T](1, 0)
	case Down:
		return cord.New[T](0, 1)
	case Left:
		return cord.New[T](-1, 0)
	default:
		return cord.New[T](0, -1)
	}
}

// FromVelocity maps a unit step back to its direction.
func FromVelocity[T constraints.Signed](v cord.Cord[T]) (Dir, error) {
	if v.Dim() == 2 {
		for d := range All() {
			if VelocityOf[T](d) == v {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrBadVelocity, v)
}

// RotateVelocity turns a 2-D velocity a quarter without going through Dir,
// so it works for any magnitude.
func RotateVelocity[T constraints.Signed](v cord.Cord[T], r Rotation) cord.Cord[T] {
	x, y := v.At(0), v.At(1)
	if r == Clockwise {
		// (1,0) → (0,1) → (-1,0) → (0,-1)
		return cord.New(-y, x)
	}
	// (1,0) → (0,-1) → (-1,0) → (0,1)
	return cord.New(y, -x)
}

func (d Dir) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	}
	return fmt.Sprintf("Dir(%d)", uint8(d))
}

func (r Rotation) String() string {
	if r == Clockwise {
		return "clockwise"
	}
	return "counter-clockwise"
}
