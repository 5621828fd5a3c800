// SPDX-License-Identifier: MIT
// Package interpreter: sentinel error set and user-facing rendering.
// Every failure of one input line is returned as a wrapped sentinel and
// turned into exactly one output line by Message. ErrExit is not a failure:
// it is the control signal that ends a session.

package interpreter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matrixsh/matrix"
)

var (
	// ErrInvalidFormat covers a wrong token count or a malformed numeric token.
	ErrInvalidFormat = errors.New("interpreter: invalid command format")

	// ErrUnknownCommand is returned when the first token names no command.
	ErrUnknownCommand = errors.New("interpreter: unknown command")

	// ErrNotRegister is returned when a register token is not <any char><digit>.
	ErrNotRegister = errors.New("interpreter: not a register")

	// ErrOpenFile is returned when a load file cannot be opened.
	ErrOpenFile = errors.New("interpreter: unable to open file")

	// ErrInvalidFile is returned for a missing/unparsable header, a negative
	// dimension or fewer values than the header announces.
	ErrInvalidFile = errors.New("interpreter: invalid file format")

	// ErrPanic marks a command that panicked and was recovered by the session.
	ErrPanic = errors.New("interpreter: command failed")

	// ErrExit asks the session to stop reading input. Caught only by Session.
	ErrExit = errors.New("interpreter: exit requested")
)

// User-facing message literals.
const (
	msgInvalidFormat  = "Invalid command format"
	msgUnknownCommand = "Unknown command: '%s'"
	msgNotRegister    = "'%s' is not a register"
	msgOpenFile       = "Unable to open file '%s'"
	msgInvalidFile    = "Invalid file format"
	msgOutOfBounds    = "Requested element is out of bounds"
	msgDimension      = "Dimension mismatch: lhs=%d, rhs=%d"
	msgAllocation     = "Unable to allocate memory"
)

// TokenError ties a sentinel to the offending input token.
// Cause, when set, is the underlying error (e.g. the os error of a failed open).
type TokenError struct {
	Err   error
	Token string
	Cause error
}

// Error implements error.
func (e *TokenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v %q: %v", e.Err, e.Token, e.Cause)
	}
	return fmt.Sprintf("%v %q", e.Err, e.Token)
}

// Unwrap exposes both the sentinel and the cause.
func (e *TokenError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// commandErrorf wraps an error with the name of the command that produced it.
func commandErrorf(cmd string, err error) error {
	return fmt.Errorf("%s: %w", cmd, err)
}

// Message renders err as the single line printed for a failed command.
// Resource exhaustion is checked first so it keeps its fixed text whatever
// else is wrapped with it.
func Message(err error) string {
	var (
		de *matrix.DimensionError
		te *TokenError
	)
	switch {
	case errors.Is(err, matrix.ErrAllocation):
		return msgAllocation
	case errors.As(err, &de):
		return fmt.Sprintf(msgDimension, de.Lhs, de.Rhs)
	case errors.Is(err, matrix.ErrOutOfRange):
		return msgOutOfBounds
	case errors.As(err, &te) && errors.Is(te.Err, ErrUnknownCommand):
		return fmt.Sprintf(msgUnknownCommand, te.Token)
	case errors.As(err, &te) && errors.Is(te.Err, ErrNotRegister):
		return fmt.Sprintf(msgNotRegister, te.Token)
	case errors.As(err, &te) && errors.Is(te.Err, ErrOpenFile):
		return fmt.Sprintf(msgOpenFile, te.Token)
	case errors.Is(err, ErrInvalidFile):
		return msgInvalidFile
	case errors.Is(err, ErrInvalidFormat):
		return msgInvalidFormat
	default:
		return err.Error()
	}
}
