package grid

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lattice/cord"
)

// openField builds an n×n grid with a vertical wall that has one gap.
func openField(n int) string {
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x == n/2 && y != n-1 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func BenchmarkShortestPath(b *testing.B) {
	g, err := ParseString(openField(200))
	if err != nil {
		b.Fatal(err)
	}
	from, to := cord.New(0, 0), cord.New(199, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.ShortestPath(from, to); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComponents(b *testing.B) {
	g, err := ParseString(openField(200))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components()
	}
}
