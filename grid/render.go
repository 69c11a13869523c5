package grid

import "strings"

// Painter returns the text drawn for one cell. onPath reports whether the
// cell lies on the overlay path.
type Painter func(p Pos, r rune, blocked, onPath bool) string

// PlainPainter draws open path cells as 'O', walls opened by a bridge as
// '+', and everything else as parsed.
func PlainPainter(_ Pos, r rune, blocked, onPath bool) string {
	switch {
	case onPath && blocked:
		return "+"
	case onPath:
		return "O"
	}
	return string(r)
}

// Render draws the grid with path overlaid by PlainPainter.
func (g *Grid) Render(path []Pos) string {
	return g.RenderFunc(path, PlainPainter)
}

// RenderFunc draws the grid one row per line, asking paint for each cell.
// Path positions outside the grid are ignored.
func (g *Grid) RenderFunc(path []Pos, paint Painter) string {
	on := g.mark(nil)
	for _, p := range path {
		if g.InBounds(p) {
			on.Set(uint(g.offset(p)))
		}
	}

	var sb strings.Builder
	for p, r := range g.Cells() {
		off := uint(g.offset(p))
		sb.WriteString(paint(p, r, g.blocked.Test(off), on.Test(off)))
		if p.At(0) == g.Width-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
