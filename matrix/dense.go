// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major integer buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Give Dense value semantics: Clone/Assign copy, Move transfers ownership.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Assign: O(r*c); Move: O(1).

package matrix

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtSep     = " "
	_fmtRowEnd  = "\n"
	_fmtIntBase = 10
)

// Dense is a concrete row-major matrix of int values.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is the empty matrix (0×0). A matrix with zero rows or zero
// columns is empty: it has no addressable element.
type Dense struct {
	r, c int   // row and column counts (>= 0)
	data []int // contiguous row-major storage (len == r*c)
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and an allocation guard.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: reject rows*cols that overflows or exceeds the element cap (ErrAllocation).
//   - Stage 3: allocate zero-filled buffer.
//
// Behavior highlights:
//   - rows==0 or cols==0 is legal and yields an empty matrix with no storage.
//   - No panics on user errors; returns sentinel errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	n, err := validateAlloc(rows, cols, o.maxElements)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Dense{r: rows, c: cols, data: make([]int, n)}, nil
}

// NewFromRows builds a Dense from explicit initial values.
// Every row must have the same length; a nil or empty slice yields the empty matrix.
//
// Errors: ErrBadShape (ragged input), ErrAllocation (element cap).
// Complexity: O(r*c).
func NewFromRows(rows [][]int, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}
	cols := len(rows[0])
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, matrixErrorf(opFromRows, ErrBadShape)
		}
	}
	m, err := NewDense(len(rows), cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i := range rows {
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2).
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether m has no addressable element (zero rows or zero columns).
func (m *Dense) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare sentinel; public methods wrap with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, err
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrOutOfRange when the matrix is empty or an index is out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) with the same checks as At.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy of m; the result shares no storage with m.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c}
	if len(m.data) > 0 {
		out.data = make([]int, len(m.data))
		copy(out.data, m.data)
	}

	return out
}

// Assign replaces the contents of m with a deep copy of src.
// Self-assignment is a no-op.
// Complexity: O(r*c).
func (m *Dense) Assign(src *Dense) {
	if m == src {
		return
	}
	*m = *src.Clone()
}

// Move transfers m's storage to a new Dense and leaves m empty (0×0).
// Complexity: O(1).
func (m *Dense) Move() *Dense {
	out := &Dense{r: m.r, c: m.c, data: m.data}
	*m = Dense{}

	return out
}

// Equal reports whether m and other have the same shape and elements.
// All empty matrices of the same shape compare equal.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// WriteTo renders m as r lines of c space-separated integers, each line
// newline-terminated with no trailing space. An empty matrix writes nothing.
// Implements io.WriterTo.
//
// Complexity: O(r*c).
func (m *Dense) WriteTo(w io.Writer) (int64, error) {
	if m.IsEmpty() {
		return 0, nil
	}
	bw := bufio.NewWriter(w)
	var (
		n   int64
		buf []byte
	)
	for i := 0; i < m.r; i++ {
		buf = buf[:0]
		base := i * m.c // base offset for row i
		for j := 0; j < m.c; j++ {
			if j > 0 {
				buf = append(buf, _fmtSep...)
			}
			buf = strconv.AppendInt(buf, int64(m.data[base+j]), _fmtIntBase)
		}
		buf = append(buf, _fmtRowEnd...)
		k, err := bw.Write(buf)
		n += int64(k)
		if err != nil {
			return n, err
		}
	}

	return n, bw.Flush()
}

// String implements fmt.Stringer using the WriteTo layout.
func (m *Dense) String() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb) // strings.Builder never fails

	return sb.String()
}
