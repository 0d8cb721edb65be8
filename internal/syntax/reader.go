// Package syntax implements the character level input of the cradle
// interpreter: a one-byte lookahead reader with position tracking and
// the character classes the grammar is built on.
package syntax

import (
	"bufio"
	"errors"
	"io"
)

// EOF is the lookahead value once the input is exhausted.
const EOF = -1

// Reader holds exactly one byte of lookahead from an input stream.
//
// The stream is consumed strictly one byte at a time; there is no
// look-back beyond the lookahead slot. Once the stream runs out the
// reader is in a terminal state where Look returns EOF and any further
// Read fails.
type Reader struct {
	src io.ByteReader

	// Position tracking
	filename string
	line     uint32 // line of ch (1-based)
	col      uint32 // column of ch (1-based)

	// Current state
	ch  int   // lookahead byte, EOF when exhausted
	err error // first I/O error other than io.EOF
}

// NewReader creates a Reader on src and primes the lookahead with the
// first byte. If src is not already an io.ByteReader it is buffered.
func NewReader(filename string, src io.Reader) *Reader {
	br, ok := src.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(src)
	}
	r := &Reader{
		src:      br,
		filename: filename,
		line:     1,
		col:      0, // incremented to 1 by the priming read
		ch:       0, // anything but EOF so the priming read is allowed
	}
	// Priming read: Look is only meaningful after it.
	_ = r.Read()
	return r
}

// Look returns the lookahead byte without consuming it, or EOF.
func (r *Reader) Look() int {
	return r.ch
}

// AtEOF reports whether the input is exhausted.
func (r *Reader) AtEOF() bool {
	return r.ch == EOF
}

// Pos returns the position of the lookahead byte.
// At EOF it is the position just past the last byte.
func (r *Reader) Pos() Pos {
	return NewPos(r.filename, r.line, r.col)
}

// Err returns the I/O error that ended the input, if any.
// Running out of input normally is not an error.
func (r *Reader) Err() error {
	return r.err
}

// Read advances the lookahead to the next byte of input.
//
// Reaching the end of the stream is not an error by itself: the lookahead
// becomes EOF. Advancing again from EOF returns io.ErrUnexpectedEOF.
func (r *Reader) Read() error {
	if r.ch == EOF {
		if r.err != nil {
			return r.err
		}
		return io.ErrUnexpectedEOF
	}

	if r.ch == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}

	c, err := r.src.ReadByte()
	if err != nil {
		r.ch = EOF
		if errors.Is(err, io.EOF) {
			return nil
		}
		r.err = err
		return err
	}
	r.ch = int(c)
	return nil
}
