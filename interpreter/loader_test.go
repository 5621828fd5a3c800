// SPDX-License-Identifier: MIT

package interpreter_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixsh/interpreter"
	"github.com/katalvlaran/matrixsh/matrix"
)

// memFs returns an in-memory filesystem holding files.
func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(body), 0o644))
	}
	return fs
}

func TestDecode_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		rows, cols int
		printed    string
	}{
		{"2x2 lines", "2 2\n1 2\n3 4\n", 2, 2, "1 2\n3 4\n"},
		{"flat whitespace", "2 3 1 2 3\t4\n5 6", 2, 3, "1 2 3\n4 5 6\n"},
		{"negatives", "1 2\n-7 +8", 1, 2, "-7 8\n"},
		{"empty", "0 0", 0, 0, ""},
		{"empty with cols", "0 3\n", 0, 3, ""},
		{"trailing values ignored", "1 1 5 6 7", 1, 1, "5\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := interpreter.Decode(strings.NewReader(tc.body))
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			require.Equal(t, tc.printed, m.String())
		})
	}
}

func TestDecode_InvalidFormat(t *testing.T) {
	t.Parallel()

	for name, body := range map[string]string{
		"empty file":       "",
		"one header value": "3",
		"text header":      "two 2",
		"negative rows":    "-1 2",
		"truncated":        "2 2\n1 2\n3",
		"bad value":        "1 2\n1 x",
		"float value":      "1 1\n1.5",
	} {
		_, err := interpreter.Decode(strings.NewReader(body))
		require.ErrorIsf(t, err, interpreter.ErrInvalidFile, "case %s", name)
	}
}

func TestDecode_AllocationLimit(t *testing.T) {
	t.Parallel()

	_, err := interpreter.Decode(strings.NewReader("100 100"), matrix.WithMaxElements(10))
	require.ErrorIs(t, err, matrix.ErrAllocation)
}

func TestLoader_OpenAndBaseDir(t *testing.T) {
	t.Parallel()

	fs := memFs(t, map[string]string{"/data/a.txt": "1 1\n9\n"})

	l := interpreter.NewLoader(fs, "/data")
	m, err := l.Load("a.txt")
	require.NoError(t, err)
	require.Equal(t, "9\n", m.String())

	m, err = l.Load("/data/a.txt")
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())

	_, err = l.Load("missing.txt")
	require.ErrorIs(t, err, interpreter.ErrOpenFile)
	var te *interpreter.TokenError
	require.ErrorAs(t, err, &te)
	require.Equal(t, "missing.txt", te.Token)
}
