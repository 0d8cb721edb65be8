package interp

import (
	"fmt"
	"strconv"

	"github.com/cmr/lets-build-a-compiler/internal/syntax"
)

// Kind classifies an interpreter failure. Every kind is fatal: the
// interpreter has no recovery strategy.
type Kind int

const (
	UnexpectedEndOfInput Kind = iota // input ran out where a character was required
	ExpectedToken                    // lookahead is not the required literal character
	ExpectedName                     // lookahead is not a letter
	ExpectedInteger                  // lookahead is not a digit
	ExpectedStatement                // lookahead cannot start a statement
	ExpectedNewline                  // statement not followed by a line ending
	ArithmeticFault                  // integer division by zero
	IOFailure                        // reading input or writing output failed
)

var kindNames = [...]string{
	UnexpectedEndOfInput: "UnexpectedEndOfInput",
	ExpectedToken:        "ExpectedToken",
	ExpectedName:         "ExpectedName",
	ExpectedInteger:      "ExpectedInteger",
	ExpectedStatement:    "ExpectedStatement",
	ExpectedNewline:      "ExpectedNewline",
	ArithmeticFault:      "ArithmeticFault",
	IOFailure:            "IOFailure",
}

func (k Kind) String() string {
	if 0 <= k && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Sentinel errors for use with errors.Is. An *Error matches the sentinel
// of its Kind.
var (
	ErrUnexpectedEOF = &Error{Kind: UnexpectedEndOfInput}
	ErrArithmetic    = &Error{Kind: ArithmeticFault}
)

// Error is the failure returned by every grammar routine.
type Error struct {
	Pos  syntax.Pos
	Kind Kind
	Want byte  // expected character, for ExpectedToken
	Err  error // underlying error, for IOFailure
}

// Error implements the error interface.
func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return e.msg()
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.msg())
}

func (e *Error) msg() string {
	switch e.Kind {
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	case ExpectedToken:
		return strconv.QuoteRune(rune(e.Want)) + " expected"
	case ExpectedName:
		return "Name expected"
	case ExpectedInteger:
		return "Integer expected"
	case ExpectedStatement:
		return "Statement expected"
	case ExpectedNewline:
		return "Newline expected"
	case ArithmeticFault:
		return "division by zero"
	case IOFailure:
		if e.Err != nil {
			return "i/o failure: " + e.Err.Error()
		}
		return "i/o failure"
	}
	return e.Kind.String()
}

// Unwrap returns the underlying I/O error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. A target
// with a non-zero Want must also match the expected character.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Want == 0 || t.Want == e.Want)
}

// fail builds an error of kind k at the current lookahead position.
func (in *Interpreter) fail(k Kind) *Error {
	return &Error{Pos: in.src.Pos(), Kind: k}
}

// expected reports that the lookahead was not the character c.
func (in *Interpreter) expected(c byte) *Error {
	return &Error{Pos: in.src.Pos(), Kind: ExpectedToken, Want: c}
}

// ioFailure wraps an error from the underlying reader or writer.
func (in *Interpreter) ioFailure(err error) *Error {
	return &Error{Pos: in.src.Pos(), Kind: IOFailure, Err: err}
}
