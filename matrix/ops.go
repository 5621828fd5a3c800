// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the two arithmetic kernels of Dense: in-place Add and fresh Mul.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 for Add, i→k→j for Mul).
//   - Integer arithmetic uses native int semantics; overflow wraps and is not guarded.

package matrix

// ---------- operation tags (grep-able error context) ----------

const (
	opNew      = "NewDense"
	opFromRows = "NewFromRows"
	opAdd      = "Add"
	opMul      = "Mul"
)

// Add performs in-place element-wise addition m += other.
// Implementation:
//   - Stage 1: ValidateSameShape (rows first, then cols) BEFORE any write.
//   - Stage 2: single flat loop over the row-major buffers.
//
// Behavior highlights:
//   - On error m is untouched.
//   - other may be m itself (doubling); other is never mutated otherwise.
//
// Errors:
//   - *DimensionError (unwraps to ErrDimensionMismatch), ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Add(other *Dense) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opAdd, err)
	}
	for k := range m.data {
		m.data[k] += other.data[k]
	}

	return nil
}

// Mul performs standard matrix multiplication C = m × other and returns C.
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == other.Rows).
//   - Stage 2: allocate C (m.Rows × other.Cols) under the element cap.
//   - Stage 3: i→k→j accumulation with row-major strides.
//
// Behavior highlights:
//   - Neither operand is mutated; the caller decides whether to replace m.
//   - Multiplying by empty operands of compatible shape yields a zero or empty matrix.
//
// Errors:
//   - *DimensionError (inner mismatch), ErrAllocation, ErrNilMatrix.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) Mul(other *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := m.r, m.c, other.c
	res, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var av, rowA, rowB, rowR int
	for i := 0; i < rows; i++ {
		rowA = i * inner
		rowR = i * cols
		for k := 0; k < inner; k++ {
			av = m.data[rowA+k]
			if av == 0 {
				continue // skip zero row contributions
			}
			rowB = k * cols
			for j := 0; j < cols; j++ {
				res.data[rowR+j] += av * other.data[rowB+j]
			}
		}
	}

	return res, nil
}
