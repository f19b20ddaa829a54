// Package app implements the application layer for cbuild.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/cbuild/internal/engine/composer"
	"go.trai.ch/cbuild/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// CompilerVariable is the environment variable naming the compiler.
const CompilerVariable = "CC"

// App represents the main application logic.
type App struct {
	loader   ports.ScriptLoader
	resolver *resolver.Resolver
	executor ports.Executor
	env      ports.Environment
	reporter ports.Reporter
	timings  ports.Timings
	logger   ports.Logger
	stdout   io.Writer
	stderr   io.Writer
}

// New creates a new App instance writing to the process's stdout and stderr.
func New(
	loader ports.ScriptLoader,
	res *resolver.Resolver,
	executor ports.Executor,
	env ports.Environment,
	reporter ports.Reporter,
	timings ports.Timings,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		resolver: res,
		executor: executor,
		env:      env,
		reporter: reporter,
		timings:  timings,
		logger:   log,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithOutput redirects the report and the compiler output.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// BuildOptions configures a single Build.
type BuildOptions struct {
	// ConfigPath is the script file to load.
	ConfigPath string
	// Target is the requested target; empty selects the script's default.
	Target  string
	Mode    domain.Mode
	System  domain.System
	Verbose bool
	// Dir is where the optional .env file is looked up.
	Dir string
}

// Build loads the script, resolves the selected target and runs the compiler.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	script, err := a.loader.Load(opts.ConfigPath, opts.System)
	if err != nil {
		return zerr.Wrap(err, "failed to load script")
	}

	name, err := a.SelectTarget(script, opts.Target)
	if err != nil {
		return err
	}

	if opts.Verbose {
		a.logger.Info(fmt.Sprintf("building %s (%s, %s)", name, opts.Mode, opts.System))
	}

	recipe, err := a.resolver.Resolve(ctx, script, name, opts.Mode, opts.System)
	if err != nil {
		return err
	}

	compiler, err := a.compiler(script, opts.Dir)
	if err != nil {
		return err
	}

	cmd := composer.Compose(recipe, compiler)

	if opts.Verbose {
		if err := a.reporter.Recipe(a.stdout, recipe, cmd); err != nil {
			return zerr.Wrap(err, "failed to write report")
		}
	}

	execErr := a.executor.Execute(ctx, cmd, a.stdout, a.stderr)

	if opts.Verbose {
		if err := a.reporter.Phases(a.stdout, a.timings.Phases()); err != nil {
			a.logger.Warn("failed to write timings: " + err.Error())
		}
	}

	if execErr != nil {
		return zerr.With(execErr, "target", name)
	}
	return nil
}

// SelectTarget returns requested when it is registered. An empty request
// selects the script's default target. No callback is invoked.
func (a *App) SelectTarget(script *domain.Script, requested string) (string, error) {
	name := requested
	if name == "" {
		def, ok := script.Default()
		if !ok {
			return "", domain.ErrNoTargetSpecified
		}
		name = def
	}

	if !script.Exists(name) {
		return "", zerr.With(domain.ErrTargetNotFound, "target", name)
	}
	return name, nil
}

// ListOptions configures ListTargets.
type ListOptions struct {
	ConfigPath string
	System     domain.System
}

// ListTargets prints the targets registered for the given system in
// registration order and marks the default one.
func (a *App) ListTargets(_ context.Context, opts ListOptions) error {
	script, err := a.loader.Load(opts.ConfigPath, opts.System)
	if err != nil {
		return zerr.Wrap(err, "failed to load script")
	}

	targets := script.Targets()
	def, _ := script.Default()

	width := 0
	for _, t := range targets {
		width = max(width, len(t.Name.String()))
	}

	var b strings.Builder
	seen := make(map[domain.InternedString]bool, len(targets))
	for _, t := range targets {
		if seen[t.Name] {
			// Lookup only ever returns the first registration of a name.
			continue
		}
		seen[t.Name] = true

		marker := ""
		if t.Name.String() == def {
			marker = "  (default)"
		}
		fmt.Fprintf(&b, "%-*s  %s%s\n", width, t.Name.String(), t.Output, marker)
	}

	_, err = io.WriteString(a.stdout, b.String())
	return err
}

// compiler picks the script's compiler, then $CC, then the composer default.
func (a *App) compiler(script *domain.Script, dir string) (string, error) {
	if c := script.Compiler(); c != "" {
		return c, nil
	}

	if dir == "" {
		dir = "."
	}
	vars, err := a.env.Load(dir)
	if err != nil {
		return "", err
	}
	return vars[CompilerVariable], nil
}
