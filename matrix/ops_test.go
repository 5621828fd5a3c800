// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/matrixsh/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd_ElementWise(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]int{{10, 20, 30}, {-4, -5, -6}})
	require.NoError(t, a.Add(b))
	require.Equal(t, [][]int{{11, 22, 33}, {0, 0, 0}}, Snapshot(t, a))
	// Right operand is untouched.
	require.Equal(t, [][]int{{10, 20, 30}, {-4, -5, -6}}, Snapshot(t, b))
}

func TestAdd_SelfTwiceScalesByFour(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, a.Add(a))
	require.Equal(t, [][]int{{2, 4}, {6, 8}}, Snapshot(t, a))
	require.NoError(t, a.Add(a))
	require.Equal(t, [][]int{{4, 8}, {12, 16}}, Snapshot(t, a))
}

func TestAdd_EmptyOperands(t *testing.T) {
	t.Parallel()

	var a, b matrix.Dense
	require.NoError(t, a.Add(&b))
	require.True(t, a.IsEmpty())
}

func TestAdd_DimensionMismatch_NoMutation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     [][]int
		axis     string
		lhs, rhs int
	}{
		{"rows differ", [][]int{{1, 2}}, [][]int{{1, 2}, {3, 4}}, matrix.AxisRows, 1, 2},
		{"cols differ", [][]int{{1, 2}, {3, 4}}, [][]int{{1, 2, 3}, {4, 5, 6}}, matrix.AxisCols, 2, 3},
		{"rows reported first", [][]int{{1, 2, 3}}, [][]int{{1}, {2}}, matrix.AxisRows, 1, 2},
		{"empty vs 1x1", nil, [][]int{{5}}, matrix.AxisRows, 0, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := MustFromRows(t, tc.a)
			b := MustFromRows(t, tc.b)
			before := a.Clone()

			err := a.Add(b)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			var de *matrix.DimensionError
			require.True(t, errors.As(err, &de))
			require.Equal(t, tc.axis, de.Axis)
			require.Equal(t, tc.lhs, de.Lhs)
			require.Equal(t, tc.rhs, de.Rhs)
			require.True(t, a.Equal(before))
		})
	}
}

func TestMul_Product(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]int{{2, 0}, {1, 2}})
	c, err := a.Mul(b)
	require.NoError(t, err)
	// [[1*2+2*1, 1*0+2*2], [3*2+4*1, 3*0+4*2]]
	require.Equal(t, [][]int{{4, 4}, {10, 8}}, Snapshot(t, c))
	// Operands untouched.
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, Snapshot(t, a))
	require.Equal(t, [][]int{{2, 0}, {1, 2}}, Snapshot(t, b))
}

func TestMul_RectangularShape(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})    // 2x3
	b := MustFromRows(t, [][]int{{7, 8}, {9, 10}, {11, 12}}) // 3x2
	c, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())
	require.Equal(t, [][]int{{58, 64}, {139, 154}}, Snapshot(t, c))

	d, err := b.Mul(a)
	require.NoError(t, err)
	require.Equal(t, 3, d.Rows())
	require.Equal(t, 3, d.Cols())
	require.Equal(t, 39, MustAt(t, d, 0, 0)) // 7*1 + 8*4
}

func TestMul_IdentityPreserves(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, -2, 3}, {4, 5, -6}})
	right, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	left, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	ar, err := a.Mul(right)
	require.NoError(t, err)
	require.True(t, ar.Equal(a))

	la, err := left.Mul(a)
	require.NoError(t, err)
	require.True(t, la.Equal(a))
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	_, err := a.Mul(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	var de *matrix.DimensionError
	require.ErrorAs(t, err, &de)
	require.Equal(t, matrix.AxisMul, de.Axis)
	require.Equal(t, 3, de.Lhs)
	require.Equal(t, 2, de.Rhs)
}

func TestMul_EmptyInnerDimension(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 0)
	b := MustDense(t, 0, 3)
	c, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0, 0}, {0, 0, 0}}, Snapshot(t, c))

	var e1, e2 matrix.Dense
	c, err = e1.Mul(&e2)
	require.NoError(t, err)
	require.True(t, c.IsEmpty())
}

func TestMul_ResultOverCap(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 3, 1)
	b := MustDense(t, 1, 3)
	_, err := a.Mul(b, matrix.WithMaxElements(8))
	require.ErrorIs(t, err, matrix.ErrAllocation)
}

func TestMul_WrapsOnOverflow(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{math.MaxInt}})
	b := MustFromRows(t, [][]int{{2}})
	c, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, -2, MustAt(t, c, 0, 0))
}
