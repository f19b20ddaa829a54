// Package composer renders a Recipe into a compiler invocation.
package composer

import (
	"strings"

	"github.com/google/shlex"
	"go.trai.ch/cbuild/internal/core/domain"
)

// DefaultCompiler is used when neither the script nor the environment name one.
const DefaultCompiler = "gcc"

// Compose renders recipe into a command for compiler.
//
// The field order is fixed: compiler, output, source files, compile flags,
// link flags, include directories and library directories.
//
// Line reproduces the flag strings verbatim and quotes nothing, so paths or
// flags containing spaces only display correctly. Args splits the flag
// strings with shell word rules and is what gets executed.
func Compose(recipe *domain.Recipe, compiler string) domain.Command {
	if compiler == "" {
		compiler = DefaultCompiler
	}

	args := []string{"-o", recipe.Output}
	args = append(args, recipe.Files...)
	args = append(args, splitFlags(recipe.CompileFlags)...)
	args = append(args, splitFlags(recipe.LinkFlags)...)
	for _, dir := range recipe.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	for _, dir := range recipe.LibraryDirs {
		args = append(args, "-L"+dir)
	}

	return domain.Command{
		Path: compiler,
		Args: args,
		Line: line(recipe, compiler),
	}
}

func line(recipe *domain.Recipe, compiler string) string {
	var b domain.Buffer
	b.Append(compiler)
	b.Append(" -o ")
	b.Append(recipe.Output)
	for _, file := range recipe.Files {
		b.Append(" ")
		b.Append(file)
	}
	b.Append(" ")
	b.Append(recipe.CompileFlags)
	b.Append(" ")
	b.Append(recipe.LinkFlags)
	for _, dir := range recipe.IncludeDirs {
		b.Append(" -I")
		b.Append(dir)
	}
	for _, dir := range recipe.LibraryDirs {
		b.Append(" -L")
		b.Append(dir)
	}
	return b.String()
}

// splitFlags splits a flag string into arguments. Quotes group words and
// are removed; backslashes and '#' are kept as typed. Unbalanced quotes fall
// back to splitting on whitespace.
func splitFlags(flags string) []string {
	words, err := shlex.Split(literal(flags))
	if err != nil {
		return strings.Fields(flags)
	}
	return words
}

// literal escapes the runes shlex would otherwise read as an escape or the
// start of a comment. Single-quoted text is already literal to shlex.
func literal(flags string) string {
	var b strings.Builder
	b.Grow(len(flags))

	var quote rune
	for _, r := range flags {
		switch {
		case quote == '\'':
			if r == '\'' {
				quote = 0
			}
		case r == '\\' || (r == '#' && quote == 0):
			b.WriteRune('\\')
		case quote == '"':
			if r == '"' {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		}
		b.WriteRune(r)
	}
	return b.String()
}
