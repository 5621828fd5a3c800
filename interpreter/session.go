// SPDX-License-Identifier: MIT

package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/matrixsh/matrix"
)

// Session reads commands line by line and owns the register bank for its
// whole lifetime. A failed command prints one line and never ends the session.
type Session struct {
	in   *bufio.Reader
	out  io.Writer
	bank Bank
	disp *Dispatcher
	log  log.FieldLogger
}

// NewSession returns a Session reading from in and writing results and
// error lines to out. All registers start empty.
func NewSession(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := gatherSettings(opts...)
	sess := &Session{
		in:  bufio.NewReader(in),
		out: out,
		log: s.logger.WithField("session", uuid.NewString()),
	}
	s.logger = sess.log
	sess.disp = newDispatcher(&sess.bank, out, s)
	return sess
}

// Bank exposes the registers, mainly for inspection in tests.
func (s *Session) Bank() *Bank { return &s.bank }

// Run processes input until end of stream or `exit`; both return nil.
// A final line without a trailing newline is still executed. Only a read
// failure other than io.EOF is returned.
func (s *Session) Run() error {
	lines := 0
	for {
		line, err := s.in.ReadString('\n')
		if line != "" {
			lines++
			if s.Step(line) {
				s.log.WithField("lines", lines).Info("exit requested")
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			s.log.WithField("lines", lines).Info("end of input")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
}

// Step executes one input line and reports whether the session must stop.
// Errors are written to the output as one line each.
func (s *Session) Step(line string) (stop bool) {
	err := s.execute(Tokenize(line))
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrExit):
		return true
	}
	s.log.WithError(err).Debug("command failed")
	if _, werr := io.WriteString(s.out, Message(err)+"\n"); werr != nil {
		s.log.WithError(werr).Warn("write error line")
	}
	return false
}

// execute runs the dispatcher and converts a panic into an error so one bad
// command cannot take the session down.
func (s *Session) execute(tokens []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError(r)
		}
	}()
	return s.disp.Execute(tokens)
}

// recoveredError maps a recovered panic value onto an error. Allocation
// panics from the runtime become matrix.ErrAllocation.
func recoveredError(r any) error {
	if re, ok := r.(runtime.Error); ok && isAllocPanic(re.Error()) {
		return fmt.Errorf("%w: %v", matrix.ErrAllocation, re)
	}
	return fmt.Errorf("%w: %v", ErrPanic, r)
}

func isAllocPanic(msg string) bool {
	return strings.Contains(msg, "makeslice") || strings.Contains(msg, "out of memory")
}
