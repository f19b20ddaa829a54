package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Recipe is the flattened build plan of one target for one mode and system.
// Include and library directories already carry their library's prefix.
type Recipe struct {
	Target       string
	Description  string
	Mode         Mode
	System       System
	Output       string
	SourceDirs   []string
	Files        []string
	CompileFlags string
	LinkFlags    string
	IncludeDirs  []string
	LibraryDirs  []string
}

// Fingerprint returns a hex digest of every field of the recipe.
// Two recipes built from the same script and the same file listing have
// the same fingerprint.
func (r *Recipe) Fingerprint() string {
	d := xxhash.New()
	write := func(field string, values ...string) {
		_, _ = d.WriteString(field)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(strings.Join(values, "\x00"))
		_, _ = d.WriteString("\x01")
	}

	write("target", r.Target)
	write("mode", r.Mode.String())
	write("system", r.System.String())
	write("output", r.Output)
	write("srcdirs", r.SourceDirs...)
	write("files", r.Files...)
	write("cflags", r.CompileFlags)
	write("lflags", r.LinkFlags)
	write("incdirs", r.IncludeDirs...)
	write("libdirs", r.LibraryDirs...)

	return fmt.Sprintf("%016x", d.Sum64())
}

// Command is a compiler invocation.
// Args never pass through a shell; Line is the single-string rendering
// shown to the user.
type Command struct {
	Path string
	Args []string
	Line string
}

// Argv returns the program name followed by its arguments.
func (c Command) Argv() []string {
	return append([]string{c.Path}, c.Args...)
}

// String returns the single-string rendering.
func (c Command) String() string {
	return c.Line
}
