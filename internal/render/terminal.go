package render

import (
	"io"

	"golang.org/x/term"
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w is an interactive terminal.
// Buffers, pipes and redirected files are not.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// NewStyler picks the styler for a stream: colors for an interactive
// terminal, plain text otherwise or when noColor is set.
func NewStyler(w io.Writer, noColor bool) Styler {
	if noColor || !IsTerminal(w) {
		return PlainStyler{}
	}
	return NewColorStyler()
}
