package interp

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/cmr/lets-build-a-compiler/internal/syntax"
)

func TestAssignment(t *testing.T) {
	in := newInterp(t, "A=5")
	require.NoError(t, in.Assignment())
	require.Equal(t, 5, in.Var('A'))

	in = newInterp(t, "x=(1+2)*-3")
	require.Error(t, in.Assignment(), "unary sign is only allowed at the start of an expression")

	in = newInterp(t, "x=-(1+2)*3")
	require.NoError(t, in.Assignment())
	require.Equal(t, -9, in.Var('X'))
}

func TestAssignmentErrors(t *testing.T) {
	in := newInterp(t, "A+5")
	err := in.Assignment()
	requireKind(t, err, ExpectedToken)
	require.ErrorIs(t, err, &Error{Kind: ExpectedToken, Want: '='})
	require.Equal(t, 0, in.Var('A'))

	in = newInterp(t, "5=A")
	requireKind(t, in.Assignment(), ExpectedName)
}

func TestOutput(t *testing.T) {
	for _, v := range []int{0, 7, -2, 1234567} {
		in, out := newInterpOut(t, "!v")
		in.SetVar('V', v)
		require.NoError(t, in.Output())
		require.Equal(t, strconv.Itoa(v)+"\n", out.String())
	}
}

func TestOutputWriteError(t *testing.T) {
	in := New("test", strings.NewReader("!A"), &Config{Out: failWriter{}})
	requireKind(t, in.Output(), IOFailure)
}

func TestInput(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		want     int
		wantLook int
	}{
		{"newline separator", "?A\nx\n", 'x', '\n'},
		{"space separator", "?a 5", '5', syntax.EOF},
		// The byte after the name is skipped whatever it is.
		{"no separator", "?Bcd", 'd', syntax.EOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newInterp(t, tt.src)
			require.NoError(t, in.Input())
			name := syntax.Upper(tt.src[1])
			require.Equal(t, tt.want, in.Var(name))
			require.Equal(t, tt.wantLook, in.Look())
		})
	}
}

func TestInputTruncated(t *testing.T) {
	for _, src := range []string{"?A", "?A\n"} {
		in := newInterp(t, src)
		requireKind(t, in.Input(), UnexpectedEndOfInput)
	}
}

func TestNewline(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"\nA", 'A'},
		{"\r\nA", 'A'},
		{"\rA", 'A'},
		{"A", 'A'},
		{"\n\nA", '\n'},
		{"\r\n", syntax.EOF},
	}
	for _, tt := range tests {
		t.Run(strconv.Quote(tt.src), func(t *testing.T) {
			in := newInterp(t, tt.src)
			require.NoError(t, in.Newline())
			require.Equal(t, tt.want, in.Look())
		})
	}
}

func TestRun(t *testing.T) {
	src := "A=5\r\nB=A*2+1\n\n!B\n?C\nz\nD=C-96\n!D\n!e\n"
	in, out := newInterpOut(t, src)
	require.NoError(t, in.Run())
	require.Equal(t, "11\n26\n0\n", out.String())
	require.Equal(t, 5, in.Var('A'))
	require.Equal(t, int('z'), in.Var('C'))
}

func TestRunNoTrailingNewline(t *testing.T) {
	in, out := newInterpOut(t, "A=1+2\n!A")
	require.NoError(t, in.Run())
	require.Equal(t, "3\n", out.String())
}

func TestRunEmpty(t *testing.T) {
	for _, src := range []string{"", "\n", "\r\n\n"} {
		in := newInterp(t, src)
		require.NoError(t, in.Run())
	}
}

func TestRunStopsAtFirstError(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind Kind
		line uint32
	}{
		{"bad statement", "A=1\n#\nB=2\n", ExpectedStatement, 2},
		{"trailing junk", "A=1)\nB=2\n", ExpectedNewline, 1},
		{"div by zero", "A=1\nB=1/(A-1)\nC=3\n", ArithmeticFault, 2},
		{"missing equals", "A=1\nB 2\n", ExpectedToken, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out := newInterpOut(t, tt.src+"!C\n")
			err := in.Run()
			ie := requireKind(t, err, tt.kind)
			require.Equal(t, tt.line, ie.Pos.Line())
			require.Equal(t, 1, in.Var('A'), "statements before the error ran")
			require.Equal(t, 0, in.Var('C'), "statements after the error did not run")
			require.Empty(t, out.String())
		})
	}
}

func TestRunReadError(t *testing.T) {
	boom := errors.New("boom")
	src := iotest.DataErrReader(iotest.OneByteReader(strings.NewReader("A=1\n")))
	in := New("test", src, nil)
	require.NoError(t, in.Run())

	in = New("test", iotest.ErrReader(boom), nil)
	err := in.Run()
	requireKind(t, err, IOFailure)
	require.ErrorIs(t, err, boom)
}

func TestTrace(t *testing.T) {
	var trace bytes.Buffer
	in := New("test", strings.NewReader("A=2*3\n?B x\n!A\n"), &Config{Trace: &trace})
	require.NoError(t, in.Run())
	require.Equal(t, "\tA = 6\n\tB = 120\n", trace.String())
}

func TestEval(t *testing.T) {
	in := newInterp(t, "3+4*2")
	v, err := in.Eval()
	require.NoError(t, err)
	require.Equal(t, 11, v)

	in = newInterp(t, "(3+4)*2\n")
	v, err = in.Eval()
	require.NoError(t, err)
	require.Equal(t, 14, v)

	in = newInterp(t, "1+2\n3")
	_, err = in.Eval()
	requireKind(t, err, ExpectedNewline)

	in = newInterp(t, "1+2 ")
	_, err = in.Eval()
	requireKind(t, err, ExpectedNewline)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write failed")
}
