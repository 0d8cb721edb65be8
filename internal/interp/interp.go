// Package interp implements a single-pass interpreter for a tiny
// assignment language: one-letter variables A..Z, integer arithmetic with
// + - * / and parentheses, and the I/O statements ?X and !X.
//
// Parsing and evaluation are fused. Each grammar routine recognises its
// construct by inspecting one byte of lookahead and computes its value in
// the same call; there is no syntax tree. The first error ends the run:
// routines return it unchanged up the call stack and nothing resumes
// after it.
package interp

import (
	"io"
	"strconv"

	"github.com/cmr/lets-build-a-compiler/internal/syntax"
)

// Config configures an Interpreter.
type Config struct {
	// Out receives the values printed by !X. Nil discards them.
	Out io.Writer

	// Trace, if non-nil, receives a tab-prefixed "X = v" line after
	// each assignment and input statement.
	Trace io.Writer
}

// Interpreter owns the lookahead reader and the symbol table of one
// session. It is not safe for concurrent use.
type Interpreter struct {
	src   *syntax.Reader
	vars  Table
	out   io.Writer
	trace *emitter
}

// New creates an Interpreter reading from src. The lookahead is primed
// before New returns. A nil conf is the same as &Config{}.
func New(filename string, src io.Reader, conf *Config) *Interpreter {
	if conf == nil {
		conf = &Config{}
	}
	in := &Interpreter{
		src: syntax.NewReader(filename, src),
		out: conf.Out,
	}
	if in.out == nil {
		in.out = io.Discard
	}
	if conf.Trace != nil {
		in.trace = &emitter{w: conf.Trace}
	}
	return in
}

// ----------------------------------------------------------------------------
// Lookahead

// Look returns the current lookahead byte, or syntax.EOF.
func (in *Interpreter) Look() int {
	return in.src.Look()
}

// Pos returns the position of the lookahead byte.
func (in *Interpreter) Pos() syntax.Pos {
	return in.src.Pos()
}

// read advances the lookahead by one byte.
func (in *Interpreter) read() error {
	if err := in.src.Read(); err != nil {
		if in.src.Err() != nil {
			return in.ioFailure(err)
		}
		return in.fail(UnexpectedEndOfInput)
	}
	return nil
}

// need fails unless a lookahead byte is available.
func (in *Interpreter) need() error {
	if !in.src.AtEOF() {
		return nil
	}
	if err := in.src.Err(); err != nil {
		return in.ioFailure(err)
	}
	return in.fail(UnexpectedEndOfInput)
}

// ----------------------------------------------------------------------------
// Lexical helpers

// Match consumes the lookahead if it is c. Otherwise it fails with
// ExpectedToken and consumes nothing.
func (in *Interpreter) Match(c byte) error {
	if err := in.need(); err != nil {
		return err
	}
	if in.src.Look() != int(c) {
		return in.expected(c)
	}
	return in.read()
}

// GetName consumes one letter and returns it uppercased.
func (in *Interpreter) GetName() (byte, error) {
	if err := in.need(); err != nil {
		return 0, err
	}
	c := in.src.Look()
	if !syntax.IsAlpha(c) {
		return 0, in.fail(ExpectedName)
	}
	if err := in.read(); err != nil {
		return 0, err
	}
	return syntax.Upper(byte(c)), nil
}

// GetNum consumes a run of decimal digits and returns its value.
// Signs are not part of a number.
func (in *Interpreter) GetNum() (int, error) {
	if err := in.need(); err != nil {
		return 0, err
	}
	if !syntax.IsDigit(in.src.Look()) {
		return 0, in.fail(ExpectedInteger)
	}
	value := 0
	for syntax.IsDigit(in.src.Look()) {
		value = 10*value + in.src.Look() - '0'
		if err := in.read(); err != nil {
			return 0, err
		}
	}
	return value, nil
}

// ----------------------------------------------------------------------------
// Symbol table

// Var returns the value of the variable name (A..Z).
func (in *Interpreter) Var(name byte) int {
	return in.vars.Get(name)
}

// SetVar stores v in the variable name (A..Z).
func (in *Interpreter) SetVar(name byte, v int) {
	in.vars.Set(name, v)
}

// Vars returns the symbol table.
func (in *Interpreter) Vars() *Table {
	return &in.vars
}

// traceVar reports a variable update on the trace writer, if any.
func (in *Interpreter) traceVar(name byte, v int) error {
	if in.trace == nil {
		return nil
	}
	in.trace.emitln(string(name) + " = " + strconv.Itoa(v))
	if in.trace.err != nil {
		return in.ioFailure(in.trace.err)
	}
	return nil
}
