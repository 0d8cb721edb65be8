package interp

import (
	"fmt"
	"io"
)

// emitter wraps an io.Writer with the two tab-prefixed output primitives.
// It keeps the first write error and ignores later writes.
type emitter struct {
	w   io.Writer
	err error // first write error
}

// emit writes s with a leading tab and no line ending.
func (e *emitter) emit(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, "\t%s", s)
}

// emitln writes s with a leading tab and a line ending.
func (e *emitter) emitln(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, "\t%s\n", s)
}

// newline ends the current line.
func (e *emitter) newline() {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w)
}
