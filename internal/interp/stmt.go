package interp

import (
	"fmt"

	"github.com/cmr/lets-build-a-compiler/internal/syntax"
)

// Assignment parses "X=expression" and stores the value in X.
func (in *Interpreter) Assignment() error {
	name, err := in.GetName()
	if err != nil {
		return err
	}
	if err := in.Match('='); err != nil {
		return err
	}
	v, err := in.Expression()
	if err != nil {
		return err
	}
	in.SetVar(name, v)
	return in.traceVar(name, v)
}

// Input parses "?X". The byte after the name is skipped unconditionally,
// the raw value of the byte after that is stored in X, and that byte is
// consumed as well.
func (in *Interpreter) Input() error {
	if err := in.Match('?'); err != nil {
		return err
	}
	name, err := in.GetName()
	if err != nil {
		return err
	}
	if err := in.read(); err != nil {
		return err
	}
	if err := in.need(); err != nil {
		return err
	}
	v := in.src.Look()
	in.SetVar(name, v)
	if err := in.read(); err != nil {
		return err
	}
	return in.traceVar(name, v)
}

// Output parses "!X" and prints the value of X followed by a line ending.
func (in *Interpreter) Output() error {
	if err := in.Match('!'); err != nil {
		return err
	}
	name, err := in.GetName()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(in.out, in.Var(name)); err != nil {
		return in.ioFailure(err)
	}
	return nil
}

// Newline consumes one line ending if present: "\r\n", "\n" or a lone "\r".
func (in *Interpreter) Newline() error {
	if in.src.Look() == '\r' {
		if err := in.read(); err != nil {
			return err
		}
	}
	if in.src.Look() == '\n' {
		return in.read()
	}
	return nil
}

// ----------------------------------------------------------------------------
// Statement driver

// Statement runs one statement, chosen by the lookahead.
func (in *Interpreter) Statement() error {
	if err := in.need(); err != nil {
		return err
	}
	switch c := in.src.Look(); {
	case c == '?':
		return in.Input()
	case c == '!':
		return in.Output()
	case syntax.IsAlpha(c):
		return in.Assignment()
	}
	return in.fail(ExpectedStatement)
}

// Run executes statements, one per line, until the input is exhausted.
// Blank lines are skipped. It returns the first error; statements after
// it are not run.
func (in *Interpreter) Run() error {
	for {
		for syntax.IsNewline(in.src.Look()) {
			if err := in.Newline(); err != nil {
				return err
			}
		}
		if in.src.AtEOF() {
			if err := in.src.Err(); err != nil {
				return in.ioFailure(err)
			}
			return nil
		}
		if err := in.Statement(); err != nil {
			return err
		}
		if err := in.endOfLine(); err != nil {
			return err
		}
	}
}

// Eval evaluates a single expression that must make up the whole input,
// optionally followed by one line ending.
func (in *Interpreter) Eval() (int, error) {
	v, err := in.Expression()
	if err != nil {
		return 0, err
	}
	if err := in.endOfLine(); err != nil {
		return 0, err
	}
	if !in.src.AtEOF() {
		return 0, in.fail(ExpectedNewline)
	}
	return v, nil
}

// endOfLine requires a line ending or the end of input and consumes it.
func (in *Interpreter) endOfLine() error {
	if in.src.AtEOF() {
		if err := in.src.Err(); err != nil {
			return in.ioFailure(err)
		}
		return nil
	}
	if !syntax.IsNewline(in.src.Look()) {
		return in.fail(ExpectedNewline)
	}
	return in.Newline()
}
