// Package cord provides Cord, a small immutable point on an N-dimensional
// integer lattice, together with the geometry every grid search needs.
//
// What:
//
//   - Component-wise arithmetic (Add, Sub) and scalar scaling (Mul, Div).
//   - Manhattan distance, saturating at the maximum of T.
//   - Moore neighborhoods (hypercube of a radius) and Neumann neighborhoods
//     (hyper-diamond of a radius), produced lazily as iter.Seq values.
//   - Interpolate: every lattice point in the box spanned by two corners.
//   - Extents / ExtentsOf: componentwise min and max of points.
//   - FromOffset / Offset: row-major mapping between a flat index and a point.
//
// Dimensions:
//
//	Go has no const generics, so the dimension is part of the value. A Cord
//	holds 1..MaxDim components; unused slots stay zero, which keeps ==,
//	map keys and hashing structural. Mixing dimensions in a binary operation
//	panics with ErrDimMismatch.
//
// Ordering:
//
//	Neighborhoods and interpolation enumerate lexicographically with axis 0
//	varying slowest. Compare uses the same order.
//
// Overflow:
//
//	Add, Sub, Mul and Div follow Go's wrap-around integer semantics.
//	Manhattan does not wrap: a distance T cannot hold saturates at its
//	maximum, and Neumann filters on the exact distance. Neighborhood boxes
//	are clipped to the range of T instead of wrapping, so a uint Cord at
//	the origin has no neighbors below zero. Casting a radius or offset that
//	T cannot hold panics with ErrRadiusRange or ErrOffsetRange.
//
// Example:
//
//	c := cord.New(3, 4)
//	for n := range c.Neumann(1) {
//	    fmt.Println(n) // [2, 4] [3, 3] [3, 5] [4, 4]
//	}
package cord
