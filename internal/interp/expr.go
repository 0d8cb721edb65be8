package interp

import (
	"fmt"

	"github.com/cmr/lets-build-a-compiler/internal/syntax"
)

// Grammar, each production evaluated as it is recognised:
//
//	factor     = '(' expression ')' | name | number .
//	term       = factor { ('*' | '/') factor } .
//	expression = [ addop ] term { addop term } .

// Factor evaluates a parenthesised expression, a variable or a number.
func (in *Interpreter) Factor() (int, error) {
	if err := in.need(); err != nil {
		return 0, err
	}

	c := in.src.Look()
	switch {
	case c == '(':
		if err := in.Match('('); err != nil {
			return 0, err
		}
		v, err := in.Expression()
		if err != nil {
			return 0, err
		}
		if err := in.Match(')'); err != nil {
			return 0, err
		}
		return v, nil

	case syntax.IsAlpha(c):
		name, err := in.GetName()
		if err != nil {
			return 0, err
		}
		return in.Var(name), nil

	default:
		return in.GetNum()
	}
}

// Term evaluates a left-associative chain of factors joined by * and /.
// Division truncates toward zero; a zero divisor is an ArithmeticFault.
func (in *Interpreter) Term() (int, error) {
	value, err := in.Factor()
	if err != nil {
		return 0, err
	}

	for syntax.IsMulop(in.src.Look()) {
		pos := in.src.Pos()
		switch in.src.Look() {
		case '*':
			if err := in.Match('*'); err != nil {
				return 0, err
			}
			v, err := in.Factor()
			if err != nil {
				return 0, err
			}
			value *= v

		case '/':
			if err := in.Match('/'); err != nil {
				return 0, err
			}
			v, err := in.Factor()
			if err != nil {
				return 0, err
			}
			if v == 0 {
				return 0, &Error{Pos: pos, Kind: ArithmeticFault}
			}
			value /= v
		}
	}
	return value, nil
}

// Expression evaluates a left-associative chain of terms joined by + and -.
// A leading sign is applied to an implicit zero term.
func (in *Interpreter) Expression() (int, error) {
	var value int
	if !syntax.IsAddop(in.src.Look()) {
		v, err := in.Term()
		if err != nil {
			return 0, err
		}
		value = v
	}

	for syntax.IsAddop(in.src.Look()) {
		switch op := in.src.Look(); op {
		case '+':
			if err := in.Match('+'); err != nil {
				return 0, err
			}
			v, err := in.Term()
			if err != nil {
				return 0, err
			}
			value += v

		case '-':
			if err := in.Match('-'); err != nil {
				return 0, err
			}
			v, err := in.Term()
			if err != nil {
				return 0, err
			}
			value -= v

		default:
			panic(fmt.Sprintf("interp.Expression: unhandled addop %q", rune(op)))
		}
	}
	return value, nil
}
