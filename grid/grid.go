package grid

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lattice/cord"
)

// Parse reads a grid, one row per line. Trailing blank lines are ignored;
// every other row must have the same number of runes.
func Parse(r io.Reader, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Collect rows.
	var rows [][]rune
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		rows = append(rows, []rune(strings.TrimRight(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	// 2) Validate shape.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	// 3) Mark walls.
	g := &Grid{
		Width:   w,
		Height:  h,
		Conn:    cfg.Conn,
		cells:   rows,
		blocked: bitset.New(uint(w * h)),
		bounds:  cord.Bounds[int]{Min: cord.New(0, 0), Max: cord.New(w-1, h-1)},
	}
	for y, row := range rows {
		for x, r := range row {
			if strings.ContainsRune(cfg.Walls, r) {
				g.blocked.Set(uint(g.offset(cord.New(x, y))))
			}
		}
	}

	return g, nil
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...Option) (*Grid, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Bounds returns the inclusive corners (0,0) and (Width-1,Height-1).
func (g *Grid) Bounds() cord.Bounds[int] { return g.bounds }

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Dim() == 2 && g.bounds.Contains(p)
}

// At returns the rune at p, or false outside the grid.
func (g *Grid) At(p Pos) (rune, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.At(1)][p.At(0)], true
}

// Blocked reports whether p is a wall. Positions outside the grid are blocked.
func (g *Grid) Blocked(p Pos) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.blocked.Test(uint(g.offset(p)))
}

// OpenCount returns the number of cells that are not walls.
func (g *Grid) OpenCount() int {
	return g.Width*g.Height - int(g.blocked.Count())
}

// Neighbors yields the open in-bounds cells adjacent to p.
func (g *Grid) Neighbors(p Pos) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for n := range g.adjacent(p) {
			if !g.Blocked(n) && !yield(n) {
				return
			}
		}
	}
}

// Find returns the first cell holding r in reading order.
func (g *Grid) Find(r rune) (Pos, bool) {
	for p, c := range g.Cells() {
		if c == r {
			return p, true
		}
	}
	return Pos{}, false
}

// FindAll returns every cell holding r in reading order.
func (g *Grid) FindAll(r rune) []Pos {
	var out []Pos
	for p, c := range g.Cells() {
		if c == r {
			out = append(out, p)
		}
	}
	return out
}

// Cells yields every position with its rune in reading order.
func (g *Grid) Cells() iter.Seq2[Pos, rune] {
	return func(yield func(Pos, rune) bool) {
		for i := 0; i < g.Width*g.Height; i++ {
			p := g.pos(i)
			if !yield(p, g.cells[p.At(1)][p.At(0)]) {
				return
			}
		}
	}
}

// adjacent yields in-bounds cells next to p under g.Conn, walls included.
func (g *Grid) adjacent(p Pos) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		var ring iter.Seq[Pos]
		if g.Conn == Conn8 {
			ring = p.Moore(1).All()
		} else {
			ring = p.Neumann(1)
		}
		for n := range ring {
			if g.bounds.Contains(n) && !yield(n) {
				return
			}
		}
	}
}

// offset maps p to its row-major index y*Width + x.
func (g *Grid) offset(p Pos) int {
	return p.Offset(g.Width, g.Height)
}

// pos is the inverse of offset.
func (g *Grid) pos(offset int) Pos {
	return cord.FromOffset[int](offset, g.Width, g.Height)
}

// check validates a path endpoint.
func (g *Grid) check(p Pos) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if g.Blocked(p) {
		return fmt.Errorf("%w: %v", ErrBlocked, p)
	}
	return nil
}
