package astar

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Search.
var (
	// ErrNilFunc indicates that a required callback was nil.
	ErrNilFunc = errors.New("astar: nil callback")

	// ErrNoPath indicates that no goal node is reachable from start.
	ErrNoPath = errors.New("astar: no path to goal")

	// ErrNegativeWeight indicates that the weight function returned a negative
	// or NaN value.
	ErrNegativeWeight = errors.New("astar: negative or NaN edge weight")

	// ErrNegativeHeuristic indicates that the heuristic returned a negative or
	// NaN value.
	ErrNegativeHeuristic = errors.New("astar: negative or NaN heuristic")
)

// Number is the distance type: any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Options configures Search.
//
// ReturnPath – if true, Result.Path holds the nodes from start to goal.
type Options struct {
	ReturnPath bool
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithPath requests path reconstruction. Without it Search keeps no
// predecessor map and Result.Path is nil.
func WithPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns the defaults: no path reconstruction.
func DefaultOptions() Options {
	return Options{ReturnPath: false}
}

// Result is the outcome of a successful search.
type Result[N comparable, D Number] struct {
	// Goal is the node that satisfied the goal predicate.
	Goal N

	// Distance is the length of the shortest path from start to Goal.
	Distance D

	// Path lists the nodes from start to Goal inclusive. Nil unless WithPath.
	Path []N

	// Expanded counts the nodes settled by the search, Goal included.
	Expanded int
}
