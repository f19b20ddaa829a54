// Package report prints the verbose build report.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/ui/output"
	"go.trai.ch/cbuild/internal/ui/style"
)

// Printer implements ports.Reporter.
type Printer struct{}

// NewPrinter creates a new Printer.
func NewPrinter() *Printer {
	return &Printer{}
}

// Recipe writes every field of recipe, one section per field, followed by
// the command line and the recipe fingerprint.
func (p *Printer) Recipe(w io.Writer, recipe *domain.Recipe, cmd domain.Command) error {
	out := output.New(w)
	var b strings.Builder

	section(&b, out, "Target", fmt.Sprintf("%s (%s, %s)", recipe.Target, recipe.Mode, recipe.System))
	if recipe.Description != "" {
		section(&b, out, "Description", recipe.Description)
	}
	section(&b, out, "Compiler Flags", recipe.CompileFlags)
	section(&b, out, "Linker Flags", recipe.LinkFlags)
	section(&b, out, "Include Directories", recipe.IncludeDirs...)
	section(&b, out, "Library Directories", recipe.LibraryDirs...)
	section(&b, out, "Source Directories", recipe.SourceDirs...)
	section(&b, out, "Source Files", recipe.Files...)
	section(&b, out, "Command", cmd.String())
	section(&b, out, "Fingerprint", recipe.Fingerprint())

	_, err := out.WriteString(b.String())
	return err
}

// Phases writes one line per phase with its duration. Failed phases are marked.
func (p *Printer) Phases(w io.Writer, phases []domain.Phase) error {
	if len(phases) == 0 {
		return nil
	}

	out := output.New(w)
	width := 0
	for _, phase := range phases {
		width = max(width, len(phase.Name))
	}

	var b strings.Builder
	b.WriteString(heading(out, "Timings"))
	for _, phase := range phases {
		mark := out.String(style.Check).Foreground(termenv.RGBColor(string(style.Green)))
		if phase.Failed {
			mark = out.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red)))
		}
		fmt.Fprintf(&b, "\t%s %-*s %s\n", mark, width, phase.Name, formatDuration(phase.Duration))
	}

	_, err := out.WriteString(b.String())
	return err
}

func section(b *strings.Builder, out *termenv.Output, title string, lines ...string) {
	b.WriteString(heading(out, title))
	for _, line := range lines {
		b.WriteString("\t" + line + "\n")
	}
}

func heading(out *termenv.Output, title string) string {
	return out.String(title+":").Bold().Foreground(termenv.RGBColor(string(style.Iris))).String() + "\n"
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}
