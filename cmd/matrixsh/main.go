// Command matrixsh is an interactive interpreter over ten integer matrix
// registers. Commands are read from stdin, results are written to stdout and
// diagnostics to stderr.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/matrixsh/interpreter"
	"github.com/katalvlaran/matrixsh/internal/config"
	"github.com/katalvlaran/matrixsh/internal/logging"
	"github.com/katalvlaran/matrixsh/matrix"
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:]) // ExitOnError handles failures

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "matrixsh: config: %v\n", err)
		os.Exit(2)
	}

	logger := logging.New(cfg.Log, os.Stderr)

	s := interpreter.NewSession(os.Stdin, os.Stdout,
		interpreter.WithLogger(logger),
		interpreter.WithFs(afero.NewOsFs()),
		interpreter.WithBaseDir(cfg.Load.BaseDir),
		interpreter.WithMatrixOptions(matrix.WithMaxElements(cfg.Limits.MaxElements)),
	)
	if err := s.Run(); err != nil {
		logger.WithError(err).Error("session aborted")
	}
}
