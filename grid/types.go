package grid

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lattice/cord"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrBlocked indicates a path endpoint on a wall cell.
	ErrBlocked = errors.New("grid: position is blocked")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("grid: component index out of range")
	// ErrNoPath indicates no walk exists between two positions or components.
	ErrNoPath = errors.New("grid: no path")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Pos is a grid position.
type Pos = cord.Cord[int]

// Options contains tunable parameters for parsing.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Walls lists the runes that block movement.
	Walls string
}

// Option represents a functional option for Parse.
type Option func(*Options)

// WithConn sets the connectivity.
func WithConn(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithWalls sets the blocking runes. An empty string means no walls.
func WithWalls(runes string) Option {
	return func(o *Options) {
		o.Walls = runes
	}
}

// DefaultOptions returns Conn4 with '#' as the only wall.
func DefaultOptions() Options {
	return Options{
		Conn:  Conn4,
		Walls: "#",
	}
}

// Grid is an immutable rectangular map.
type Grid struct {
	Width, Height int
	Conn          Connectivity

	cells   [][]rune       // cells[y][x]
	blocked *bitset.BitSet // bit y*Width+x set for wall cells
	bounds  cord.Bounds[int]
}
