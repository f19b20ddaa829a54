package shell

import "io"

// SetTerminalDetector replaces the stdout terminal check.
func SetTerminalDetector(e *Executor, fn func(w io.Writer) bool) {
	e.isTerminal = fn
}
