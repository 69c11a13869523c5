package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lattice/grid"
	"github.com/katalvlaran/lattice/parse"
	"github.com/katalvlaran/lattice/tour"
)

// session is what every command starts from: the parsed grid plus the
// merged config, logger and output stream.
type session struct {
	grid   *grid.Grid
	cfg    Config
	logger *log.Logger
	out    io.Writer
}

func openSession(cmd *cobra.Command, path string) (*session, error) {
	ctx := cmd.Context()
	s := &session{
		cfg:    configFromContext(ctx),
		logger: loggerFromContext(ctx),
		out:    cmd.OutOrStdout(),
	}

	text, err := parse.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts, err := s.cfg.gridOptions()
	if err != nil {
		return nil, err
	}
	if s.grid, err = grid.ParseString(text, opts...); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.logger.Debug("grid loaded", "file", path, "width", s.grid.Width, "height", s.grid.Height,
		"open", s.grid.OpenCount(), "conn", s.grid.Conn)
	return s, nil
}

// find locates the cell marked by the single rune in m.
func (s *session) find(m string) (grid.Pos, error) {
	r, err := marker(m)
	if err != nil {
		return grid.Pos{}, err
	}
	p, ok := s.grid.Find(r)
	if !ok {
		return grid.Pos{}, fmt.Errorf("marker %q not found in grid", r)
	}
	return p, nil
}

func newPathCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "path FILE",
		Short: "Print the fewest-steps walk between two markers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			if from == "" {
				from = s.cfg.Start
			}
			if to == "" {
				to = s.cfg.End
			}
			start, err := s.find(from)
			if err != nil {
				return err
			}
			end, err := s.find(to)
			if err != nil {
				return err
			}

			prog := newProgress(s.logger)
			res, err := s.grid.ShortestPath(start, end)
			if err != nil {
				return err
			}
			prog.done("search finished", "expanded", res.Expanded)

			fmt.Fprintf(s.out, "steps: %d\n", res.Distance)
			fmt.Fprint(s.out, render(s.grid, res.Path, s.cfg))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start marker (default from config)")
	cmd.Flags().StringVar(&to, "to", "", "end marker (default from config)")
	return cmd
}

func newFillCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "fill FILE",
		Short: "Print the size of the open region around a marker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			if from == "" {
				from = s.cfg.Start
			}
			start, err := s.find(from)
			if err != nil {
				return err
			}

			region := s.grid.Reachable(start)
			fmt.Fprintf(s.out, "cells: %d\n", region.Len())
			if s.grid.Blocked(start) {
				s.logger.Warn("start marker sits on a wall", "pos", start)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start marker (default from config)")
	return cmd
}

func newComponentsCmd() *cobra.Command {
	var bridge string

	cmd := &cobra.Command{
		Use:   "components FILE",
		Short: "List islands of open cells, optionally bridging two of them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}

			comps := s.grid.Components()
			fmt.Fprintf(s.out, "components: %d\n", len(comps))
			for i, c := range comps {
				fmt.Fprintf(s.out, "%d: %d cells from %v\n", i, len(c), c[0])
			}
			if bridge == "" {
				return nil
			}

			ids, err := parse.Ints[int](bridge)
			if err != nil {
				return err
			}
			if len(ids) != 2 {
				return fmt.Errorf("%w: --bridge wants two component indices, got %q", ErrConfig, bridge)
			}
			path, cost, err := s.grid.Bridge(ids[0], ids[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "bridge %d-%d: %d walls\n", ids[0], ids[1], cost)
			fmt.Fprint(s.out, render(s.grid, path, s.cfg))
			return nil
		},
	}
	cmd.Flags().StringVar(&bridge, "bridge", "", "bridge two components, e.g. 0,1")
	return cmd
}

func newDistancesCmd() *cobra.Command {
	var (
		points    string
		withTour  bool
		roundTrip bool
	)

	cmd := &cobra.Command{
		Use:   "distances FILE",
		Short: "Print walking distances between every pair of marker runes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			if points == "" {
				points = s.cfg.Start + s.cfg.End
			}

			var (
				marks []rune
				pts   []grid.Pos
			)
			for _, r := range points {
				p, err := s.find(string(r))
				if err != nil {
					return err
				}
				marks = append(marks, r)
				pts = append(pts, p)
			}

			prog := newProgress(s.logger)
			dist, err := s.grid.PathDistances(pts)
			if err != nil {
				return err
			}
			prog.done("distances computed", "points", len(pts))

			for i := range pts {
				for j := range pts {
					if i == j {
						continue
					}
					if d, ok := dist.Get(pts[i], pts[j]); ok {
						fmt.Fprintf(s.out, "%c %c %d\n", marks[i], marks[j], d)
					} else {
						fmt.Fprintf(s.out, "%c %c unreachable\n", marks[i], marks[j])
					}
				}
			}
			if !withTour && !roundTrip {
				return nil
			}

			var opts []tour.Option
			if roundTrip {
				opts = append(opts, tour.WithReturn())
			}
			route, err := tour.Shortest(pts, dist, opts...)
			if err != nil {
				return err
			}
			byPos := make(map[grid.Pos]rune, len(pts))
			for i, p := range pts {
				byPos[p] = marks[i]
			}
			order := make([]rune, 0, len(route.Order))
			for _, p := range route.Order {
				order = append(order, byPos[p])
			}
			fmt.Fprintf(s.out, "tour %s: %d\n", string(order), route.Cost)
			return nil
		},
	}
	cmd.Flags().StringVar(&points, "points", "", "marker runes, e.g. 0123 (default start and end)")
	cmd.Flags().BoolVar(&withTour, "tour", false, "also print the shortest route from the first marker through all others")
	cmd.Flags().BoolVar(&roundTrip, "return", false, "like --tour, but the route returns to the first marker")
	return cmd
}
