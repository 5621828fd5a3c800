// Package matrix provides a dense, row-major integer matrix.
//
// The matrix package provides:
//
//   - Dense, a value-semantics container whose zero value is the empty matrix.
//   - Bounds-checked accessors (At, Set) that return ErrOutOfRange instead of
//     panicking, including on any access to an empty matrix.
//   - In-place element-wise Add and a fresh-result Mul, both reporting shape
//     conflicts as *DimensionError.
//   - Clone / Assign (deep copy) and Move (ownership transfer, source left empty).
//   - An allocation guard (WithMaxElements) that maps oversized shapes to
//     ErrAllocation.
//
// Text rendering (WriteTo, String) prints one row per line with values
// separated by single spaces.
//
// See the examples in this package for usage patterns.
package matrix
