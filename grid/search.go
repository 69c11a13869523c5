package grid

import (
	"errors"
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lattice/astar"
	"github.com/katalvlaran/lattice/floodfill"
	"github.com/katalvlaran/lattice/floydwarshall"
	"github.com/katalvlaran/lattice/internal/numeric"
	"github.com/katalvlaran/lattice/tour"
)

// ShortestPath returns the fewest-steps walk from one open cell to another.
// The result carries the step count, the path from..to inclusive and the
// number of expanded cells.
func (g *Grid) ShortestPath(from, to Pos) (astar.Result[Pos, int], error) {
	if err := g.check(from); err != nil {
		return astar.Result[Pos, int]{}, err
	}
	if err := g.check(to); err != nil {
		return astar.Result[Pos, int]{}, err
	}

	res, err := astar.Search(from, astar.Goal(to), g.Neighbors, g.heuristic(to),
		func(Pos, Pos) int { return 1 }, astar.WithPath())
	if errors.Is(err, astar.ErrNoPath) {
		return res, fmt.Errorf("%w: %v -> %v", ErrNoPath, from, to)
	}
	return res, err
}

// heuristic is an admissible estimate of the steps left to goal.
func (g *Grid) heuristic(goal Pos) func(Pos) int {
	if g.Conn == Conn8 {
		return func(p Pos) int {
			return max(
				numeric.AbsDiff(p.At(0), goal.At(0)),
				numeric.AbsDiff(p.At(1), goal.At(1)),
			)
		}
	}
	return func(p Pos) int { return p.Manhattan(goal) }
}

// Reachable returns the open region containing from. A blocked or
// out-of-bounds start yields a region holding only that position.
func (g *Grid) Reachable(from Pos) *floodfill.Result[Pos] {
	if g.Blocked(from) {
		return floodfill.Fill(from, func(Pos) iter.Seq[Pos] { return func(func(Pos) bool) {} })
	}
	return floodfill.Fill(from, g.Neighbors)
}

// Components finds every connected region of open cells. Regions are
// ordered by their first cell in reading order; cells within a region are
// in flood order starting from that cell.
func (g *Grid) Components() [][]Pos {
	seen := g.blocked.Clone()
	var comps [][]Pos

	for i, ok := seen.NextClear(0); ok && i < uint(g.Width*g.Height); i, ok = seen.NextClear(i + 1) {
		region := g.Reachable(g.pos(int(i)))
		for _, p := range region.Order {
			seen.Set(uint(g.offset(p)))
		}
		comps = append(comps, region.Order)
	}
	return comps
}

// Bridge finds the fewest wall cells to open so that component src touches
// component dst, indices as returned by Components. The path runs from the
// last cell of src to the first cell of dst; cost counts its wall cells.
func (g *Grid) Bridge(src, dst int) (path []Pos, cost int, err error) {
	// 1) Validate component indices.
	comps := g.Components()
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, fmt.Errorf("%w: %d, %d of %d", ErrComponentIndex, src, dst, len(comps))
	}
	srcSet := g.mark(comps[src])
	dstSet := g.mark(comps[dst])

	// 2) 0/1 weights: moving onto open ground is free, breaking a wall costs 1.
	// Any cell of src is as good a start as the whole set, src being free to cross.
	res, err := astar.Dijkstra(comps[src][0],
		func(p Pos) bool { return dstSet.Test(uint(g.offset(p))) },
		g.adjacent,
		func(_, to Pos) int {
			if g.Blocked(to) {
				return 1
			}
			return 0
		},
		astar.WithPath(),
	)
	if errors.Is(err, astar.ErrNoPath) {
		return nil, 0, fmt.Errorf("%w: component %d -> %d", ErrNoPath, src, dst)
	}
	if err != nil {
		return nil, 0, err
	}

	// 3) Trim the free walk inside src.
	first := 0
	for i, p := range res.Path {
		if srcSet.Test(uint(g.offset(p))) {
			first = i
		}
	}
	return res.Path[first:], res.Distance, nil
}

// PathDistances returns the walking distance between every ordered pair of
// points. Unreachable pairs are absent (Get reports false). Points must be
// open, in bounds and distinct.
func (g *Grid) PathDistances(points []Pos) (floydwarshall.Table[Pos, int], error) {
	// 1) Validate points.
	poi := make(map[Pos]struct{}, len(points))
	for _, p := range points {
		if err := g.check(p); err != nil {
			return nil, err
		}
		poi[p] = struct{}{}
	}

	// 2) Seed direct walks: those that do not step on a third point.
	dist := floydwarshall.NewTable[Pos, int]()
	for _, from := range points {
		dist.Set(from, from, 0)
		for _, to := range points {
			if from == to {
				continue
			}
			avoid := func(p Pos) iter.Seq[Pos] {
				return func(yield func(Pos) bool) {
					for n := range g.Neighbors(p) {
						if _, other := poi[n]; other && n != to {
							continue
						}
						if !yield(n) {
							return
						}
					}
				}
			}
			res, err := astar.Search(from, astar.Goal(to), avoid, g.heuristic(to),
				func(Pos, Pos) int { return 1 })
			if errors.Is(err, astar.ErrNoPath) {
				continue
			}
			if err != nil {
				return nil, err
			}
			dist.Set(from, to, res.Distance)
		}
	}

	// 3) Close over intermediate points.
	if err := floydwarshall.Run(points, dist); err != nil {
		return nil, err
	}
	return dist, nil
}

// Tour returns the shortest walk that starts at points[0] and visits every
// point, built on PathDistances.
func (g *Grid) Tour(points []Pos, opts ...tour.Option) (tour.Result[Pos, int], error) {
	dist, err := g.PathDistances(points)
	if err != nil {
		return tour.Result[Pos, int]{}, err
	}
	res, err := tour.Shortest(points, dist, opts...)
	if errors.Is(err, tour.ErrIncomplete) {
		return res, fmt.Errorf("%w: %w", ErrNoPath, err)
	}
	return res, err
}

// mark returns a bitset with the offsets of ps set.
func (g *Grid) mark(ps []Pos) *bitset.BitSet {
	b := bitset.New(uint(g.Width * g.Height))
	for _, p := range ps {
		b.Set(uint(g.offset(p)))
	}
	return b
}
