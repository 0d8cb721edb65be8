package interp

import (
	"fmt"
	"io"
)

// NumVars is the number of variables, one per letter A..Z.
const NumVars = 26

// Table is the symbol table: one integer slot per uppercase letter,
// zero-initialised. Entries are overwritten, never removed.
type Table [NumVars]int

// Get returns the value of the variable name, which must be in A..Z.
func (t *Table) Get(name byte) int {
	return t[name-'A']
}

// Set stores v in the variable name, which must be in A..Z.
func (t *Table) Set(name byte, v int) {
	t[name-'A'] = v
}

// Dump writes every non-zero variable as a tab-prefixed "X=v" field,
// followed by a line ending. Nothing is written when all are zero.
func (t *Table) Dump(w io.Writer) error {
	e := &emitter{w: w}
	n := 0
	for i, v := range t {
		if v == 0 {
			continue
		}
		e.emit(fmt.Sprintf("%c=%d", 'A'+i, v))
		n++
	}
	if n > 0 {
		e.newline()
	}
	return e.err
}
