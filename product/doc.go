// Package product enumerates the Cartesian product of N inclusive integer
// ranges without materialising it.
//
// What:
//
//   - Span describes one axis as an inclusive range [Lo, Hi].
//   - Iterator walks every combination of axis values in lexicographic order,
//     axis 0 varying slowest, exactly like the digits of an odometer.
//
// How:
//
//   - The iterator keeps the current tuple, one live cursor per axis and one
//     saved cursor per axis used to restart an exhausted inner axis.
//   - When the last axis runs out its cursor is restored from the saved copy
//     and the carry moves one axis to the left. Running out of axis 0 ends
//     the sequence.
//
// Complexity:
//
//   - New:  O(N) time and memory.
//   - Next: amortised O(1), worst case O(N) on a full carry.
//   - Len:  O(1), the product length is computed once by New.
//
// An Iterator is single-pass and not safe for concurrent use. Build a new one
// to start over.
package product
