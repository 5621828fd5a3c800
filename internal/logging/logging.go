// Package logging builds the logrus logger used for diagnostics.
//
// Diagnostics never go to stdout: stdout carries only command results.
package logging

import (
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/matrixsh/internal/config"
)

// New returns a logger writing to w with the configured level and formatter.
// An unparsable level falls back to warn and is reported through the logger.
func New(cfg config.LogConfig, w io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(w)

	if cfg.Format == config.FormatJSON {
		l.SetFormatter(&log.JSONFormatter{})
	} else {
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	if level, err := log.ParseLevel(cfg.Level); err == nil {
		l.SetLevel(level)
	} else {
		l.SetLevel(log.WarnLevel)
		l.Warnf("invalid log level %s, defaulting to warn", cfg.Level)
	}

	return l
}

// Discard returns a logger that drops everything; used by tests and library callers.
func Discard() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	l.SetLevel(log.PanicLevel)
	return l
}
