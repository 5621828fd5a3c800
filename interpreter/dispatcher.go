// SPDX-License-Identifier: MIT

package interpreter

import (
	"io"
	"strconv"

	"github.com/agnivade/levenshtein"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/matrixsh/matrix"
)

// Command names.
const (
	CmdExit  = "exit"
	CmdLoad  = "load"
	CmdPrint = "print"
	CmdElem  = "elem"
	CmdAdd   = "add"
	CmdMul   = "mul"
)

// maxSuggestDistance bounds the edit distance of an unknown-command hint.
const maxSuggestDistance = 2

// handler runs one command; args excludes the command name.
type handler func(d *Dispatcher, args []string) error

// command pairs the total token count (name included) with its handler.
type command struct {
	tokens int
	run    handler
}

// commands is the fixed instruction set.
var commands = map[string]command{
	CmdExit:  {tokens: 1, run: (*Dispatcher).exit},
	CmdLoad:  {tokens: 3, run: (*Dispatcher).load},
	CmdPrint: {tokens: 2, run: (*Dispatcher).print},
	CmdElem:  {tokens: 4, run: (*Dispatcher).elem},
	CmdAdd:   {tokens: 3, run: (*Dispatcher).add},
	CmdMul:   {tokens: 3, run: (*Dispatcher).mul},
}

// commandOrder lists command names deterministically for suggestions.
var commandOrder = []string{CmdExit, CmdLoad, CmdPrint, CmdElem, CmdAdd, CmdMul}

// Dispatcher executes tokenized commands against a register bank.
// It keeps no state of its own between calls.
type Dispatcher struct {
	bank   *Bank
	out    io.Writer
	loader *Loader
	opts   []matrix.Option
	log    log.FieldLogger
}

// NewDispatcher returns a Dispatcher mutating bank and writing results to out.
func NewDispatcher(bank *Bank, out io.Writer, opts ...Option) *Dispatcher {
	s := gatherSettings(opts...)
	return newDispatcher(bank, out, s)
}

func newDispatcher(bank *Bank, out io.Writer, s settings) *Dispatcher {
	return &Dispatcher{
		bank:   bank,
		out:    out,
		loader: NewLoader(s.fs, s.baseDir, s.matrixOpts...),
		opts:   s.matrixOpts,
		log:    s.logger,
	}
}

// Execute runs one command.
// Implementation:
//   - Stage 1: zero tokens is a no-op.
//   - Stage 2: look up the name (ErrUnknownCommand), then check the token count (ErrInvalidFormat).
//   - Stage 3: run the handler; register and index tokens are decoded there.
//
// Returns ErrExit for `exit`; the caller decides how to stop.
func (d *Dispatcher) Execute(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	name, args := tokens[0], tokens[1:]
	cmd, ok := commands[name]
	if !ok {
		d.logUnknown(name)
		return &TokenError{Err: ErrUnknownCommand, Token: name}
	}
	if len(tokens) != cmd.tokens {
		return commandErrorf(name, ErrInvalidFormat)
	}
	d.log.WithFields(log.Fields{"cmd": name, "args": args}).Debug("dispatch")

	if err := cmd.run(d, args); err != nil {
		return commandErrorf(name, err)
	}
	return nil
}

func (d *Dispatcher) logUnknown(name string) {
	fields := log.Fields{"token": name}
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range commandOrder {
		if dist := levenshtein.ComputeDistance(name, c); dist < bestDist {
			best, bestDist = c, dist
		}
	}
	if best != "" {
		fields["suggest"] = best
	}
	d.log.WithFields(fields).Debug("unknown command")
}

func (d *Dispatcher) exit(_ []string) error {
	return ErrExit
}

// load R FILE replaces register R only when the whole file decodes.
func (d *Dispatcher) load(args []string) error {
	r, err := ParseRegister(args[0])
	if err != nil {
		return err
	}
	m, err := d.loader.Load(args[1])
	if err != nil {
		return err
	}
	d.log.WithFields(log.Fields{"register": r, "file": args[1], "rows": m.Rows(), "cols": m.Cols()}).Debug("loaded")
	d.bank.Store(r, m)
	return nil
}

func (d *Dispatcher) print(args []string) error {
	r, err := ParseRegister(args[0])
	if err != nil {
		return err
	}
	_, err = d.bank.At(r).WriteTo(d.out)
	return err
}

func (d *Dispatcher) elem(args []string) error {
	r, err := ParseRegister(args[0])
	if err != nil {
		return err
	}
	i, err := ParseIndex(args[1])
	if err != nil {
		return err
	}
	j, err := ParseIndex(args[2])
	if err != nil {
		return err
	}
	v, err := d.bank.At(r).At(i, j)
	if err != nil {
		return err
	}
	_, err = io.WriteString(d.out, strconv.Itoa(v)+"\n")
	return err
}

// add A B mutates only A.
func (d *Dispatcher) add(args []string) error {
	a, b, err := parseRegisterPair(args)
	if err != nil {
		return err
	}
	return d.bank.At(a).Add(d.bank.At(b))
}

// mul A B stores A×B into A; A is untouched on failure.
func (d *Dispatcher) mul(args []string) error {
	a, b, err := parseRegisterPair(args)
	if err != nil {
		return err
	}
	product, err := d.bank.At(a).Mul(d.bank.At(b), d.opts...)
	if err != nil {
		return err
	}
	d.bank.Store(a, product)
	return nil
}

func parseRegisterPair(args []string) (int, int, error) {
	a, err := ParseRegister(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := ParseRegister(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
