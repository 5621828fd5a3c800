// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines the package-level sentinel errors used across the matrix
// package plus the single typed error (DimensionError) that carries the
// operand sizes of a failed shape check. Tests MUST match via errors.Is /
// errors.As. No public method panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with matrixErrorf/denseErrorf;
// callers still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero is legal on either axis and yields the empty matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when explicit initial values are not rectangular.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds,
	// or that any element of an empty matrix was addressed.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAllocation signals that a requested shape cannot be allocated:
	// rows*cols overflows int or exceeds the configured element limit.
	ErrAllocation = errors.New("matrix: unable to allocate")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// Axis names reported by DimensionError.
const (
	AxisRows = "rows"
	AxisCols = "cols"
	AxisMul  = "inner"
)

// DimensionError reports the two conflicting sizes of a failed shape check.
// Axis is AxisRows or AxisCols for Add and AxisMul for Mul (Lhs = a.Cols,
// Rhs = b.Rows). It unwraps to ErrDimensionMismatch.
type DimensionError struct {
	Axis string
	Lhs  int
	Rhs  int
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: %s lhs=%d, rhs=%d", ErrDimensionMismatch, e.Axis, e.Lhs, e.Rhs)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// matrixErrorf wraps an underlying error with the given operation tag.
// Keep `tag` to the op* constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
