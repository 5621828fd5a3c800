// SPDX-License-Identifier: MIT

package interpreter

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/katalvlaran/matrixsh/internal/logging"
	"github.com/katalvlaran/matrixsh/matrix"
)

// Option configures a Dispatcher or Session.
type Option func(*settings)

// settings is the resolved configuration shared by Dispatcher and Session.
type settings struct {
	logger     log.FieldLogger
	fs         afero.Fs
	baseDir    string
	matrixOpts []matrix.Option
}

// WithLogger routes diagnostics to l. The default discards them.
func WithLogger(l log.FieldLogger) Option {
	return func(s *settings) { s.logger = l }
}

// WithFs sets the filesystem `load` reads from. The default is the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(s *settings) { s.fs = fs }
}

// WithBaseDir resolves relative `load` paths against dir.
func WithBaseDir(dir string) Option {
	return func(s *settings) { s.baseDir = dir }
}

// WithMatrixOptions applies opts to every matrix the interpreter allocates.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(s *settings) { s.matrixOpts = append(s.matrixOpts, opts...) }
}

func gatherSettings(opts ...Option) settings {
	s := settings{logger: logging.Discard(), fs: afero.NewOsFs()}
	for _, fn := range opts {
		if fn != nil {
			fn(&s)
		}
	}
	return s
}
