package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lattice/grid"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorAmber = lipgloss.Color("220")
	colorDim   = lipgloss.Color("240")

	stylePath   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleBridge = lipgloss.NewStyle().Bold(true).Foreground(colorAmber)
	styleWall   = lipgloss.NewStyle().Foreground(colorDim)
)

// colorPainter keeps the parsed runes and colours the path over them.
func colorPainter(_ grid.Pos, r rune, blocked, onPath bool) string {
	s := string(r)
	switch {
	case onPath && blocked:
		return styleBridge.Render(s)
	case onPath:
		return stylePath.Render(s)
	case blocked:
		return styleWall.Render(s)
	}
	return s
}

// render draws g with path in the configured style.
func render(g *grid.Grid, path []grid.Pos, cfg Config) string {
	if cfg.Color {
		return g.RenderFunc(path, colorPainter)
	}
	return g.Render(path)
}
