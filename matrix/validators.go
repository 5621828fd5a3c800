// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and index checks.
//  - Keep kernels minimal by delegating guard logic here.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Shape validators return *DimensionError so callers can report both sizes.

package matrix

import (
	"fmt"
	"math/bits"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Rows are compared before columns; the first differing axis is reported.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r {
		return &DimensionError{Axis: AxisRows, Lhs: a.r, Rhs: b.r}
	}
	if a.c != b.c {
		return &DimensionError{Axis: AxisCols, Lhs: a.c, Rhs: b.c}
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return &DimensionError{Axis: AxisMul, Lhs: a.c, Rhs: b.r}
	}

	return nil
}

// ValidateIndex ensures (row, col) addresses an element of m.
// An empty matrix (zero rows or zero columns) has no addressable element.
// Complexity: O(1).
func ValidateIndex(m *Dense, row, col int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.IsEmpty() {
		return ErrOutOfRange
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return ErrOutOfRange
	}

	return nil
}

// validateAlloc checks that a rows×cols buffer is representable and within limit.
// Returns the element count on success.
func validateAlloc(rows, cols, limit int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, ErrInvalidDimensions
	}
	hi, n := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || n > uint64(limit) {
		return 0, ErrAllocation
	}

	return int(n), nil
}
