// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels and accessors.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matrixsh/matrix"
	"github.com/stretchr/testify/require"
)

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) int {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// Snapshot returns the matrix content as [][]int for whole-matrix comparisons.
func Snapshot(t *testing.T, m *matrix.Dense) [][]int {
	t.Helper()
	out := make([][]int, m.Rows())
	for i := range out {
		out[i] = make([]int, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}
