// SPDX-License-Identifier: MIT

package interpreter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixsh/matrix"
)

func TestRecoveredError_AllocationPanic(t *testing.T) {
	t.Parallel()

	var r any
	func() {
		defer func() { r = recover() }()
		n := -1
		_ = make([]int, n)
	}()
	require.NotNil(t, r)

	err := recoveredError(r)
	require.ErrorIs(t, err, matrix.ErrAllocation)
	require.Equal(t, "Unable to allocate memory", Message(err))
}

func TestRecoveredError_OtherPanic(t *testing.T) {
	t.Parallel()

	err := recoveredError("unexpected")
	require.ErrorIs(t, err, ErrPanic)
	require.Contains(t, Message(err), "unexpected")
}
