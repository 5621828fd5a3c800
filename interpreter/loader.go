// SPDX-License-Identifier: MIT

package interpreter

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"

	"github.com/katalvlaran/matrixsh/matrix"
)

// Loader reads matrix files for the `load` command.
//
// File format (whitespace and newlines are interchangeable):
//
//	n m
//	v_0_0 ... v_0_(m-1)
//	...
//
// "0 0" is the empty matrix and no values follow. A shape with exactly one
// zero axis is accepted as an empty matrix of that shape. Values beyond n*m
// are ignored.
type Loader struct {
	fs      afero.Fs
	baseDir string
	opts    []matrix.Option
}

// NewLoader returns a Loader over fs. Relative names are resolved against
// baseDir when it is non-empty. opts apply to every allocated matrix.
func NewLoader(fs afero.Fs, baseDir string, opts ...matrix.Option) *Loader {
	return &Loader{fs: fs, baseDir: baseDir, opts: opts}
}

// resolve maps a user-supplied file name onto the loader's filesystem.
func (l *Loader) resolve(name string) string {
	if l.baseDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.baseDir, name)
}

// Load opens name and decodes one matrix from it. The file is closed before
// Load returns on every path.
//
// Errors: *TokenError{ErrOpenFile} when the file cannot be opened,
// ErrInvalidFile for malformed content, matrix.ErrAllocation for oversized shapes.
func (l *Loader) Load(name string) (*matrix.Dense, error) {
	f, err := l.fs.Open(l.resolve(name))
	if err != nil {
		return nil, &TokenError{Err: ErrOpenFile, Token: name, Cause: err}
	}
	defer f.Close()

	return Decode(f, l.opts...)
}

// Decode reads the header and n*m row-major values from r.
// Nothing partially read is returned on failure.
func Decode(r io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("header rows: %w", err)
	}
	m, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("header cols: %w", err)
	}
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("header %d %d: %w", n, m, ErrInvalidFile)
	}

	out, err := matrix.NewDense(n, m, opts...)
	if err != nil {
		return nil, err
	}
	for k := 0; k < n*m; k++ {
		v, err := nextInt(sc)
		if err != nil {
			return nil, fmt.Errorf("value %d of %d: %w", k+1, n*m, err)
		}
		_ = out.Set(k/m, k%m, v) // in bounds by construction
	}

	return out, nil
}

// nextInt scans one whitespace-separated token and parses it as int.
// End of input, a read failure and a non-integer token all map to ErrInvalidFile.
func nextInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidFile, err)
		}
		return 0, fmt.Errorf("%w: unexpected end of file", ErrInvalidFile)
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidFile, sc.Text())
	}
	return v, nil
}
