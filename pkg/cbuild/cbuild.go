// Package cbuild lets a Go program declare its build targets in code and
// hand the command line over to cbuild.
//
//	func main() {
//		cbuild.Main(func(s *cbuild.Script, sys cbuild.System) {
//			s.Register("app", "build/app", func(t *cbuild.Target, mode cbuild.Mode, _ cbuild.System) {
//				t.SourceDir("src")
//				if mode == cbuild.Debug {
//					t.CompileFlags("-g")
//				}
//			})
//			s.SetDefault("app")
//		})
//	}
package cbuild

import (
	"context"
	"io"
	"os"

	"go.trai.ch/cbuild/cmd/cbuild/commands"
	"go.trai.ch/cbuild/internal/adapters/env"
	"go.trai.ch/cbuild/internal/adapters/fs"
	"go.trai.ch/cbuild/internal/adapters/logger"
	"go.trai.ch/cbuild/internal/adapters/report"
	"go.trai.ch/cbuild/internal/adapters/shell"
	"go.trai.ch/cbuild/internal/adapters/telemetry"
	"go.trai.ch/cbuild/internal/app"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/cbuild/internal/engine/resolver"
)

type (
	// Script is the registry a ConfigureFunc populates.
	Script = domain.Script
	// Target is what a TargetFunc declares.
	Target = domain.Target
	// Library is what a LibraryFunc declares.
	Library = domain.Library
	// Mode is the build variant.
	Mode = domain.Mode
	// System is the operating system a build targets.
	System = domain.System
	// TargetFunc configures a Target.
	TargetFunc = domain.TargetFunc
	// LibraryFunc configures a Library.
	LibraryFunc = domain.LibraryFunc
)

// Build modes and target systems accepted by callbacks.
const (
	Debug   = domain.ModeDebug
	Release = domain.ModeRelease
	Linux   = domain.SystemLinux
	Windows = domain.SystemWindows
)

// ConfigureFunc registers targets for the operating system being built for.
type ConfigureFunc func(s *Script, sys System)

// Main runs cbuild with the process arguments and exits with its status.
func Main(configure ConfigureFunc) {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, configure))
}

// Run scans args like the cbuild command, builds the selected target and
// returns the exit status: 0 on success, the compiler's status when it
// failed, 1 otherwise.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, configure ConfigureFunc) int {
	log := logger.New()
	if s, ok := log.(interface{ SetOutput(w io.Writer) }); ok {
		s.SetOutput(stderr)
	}

	recorder := telemetry.NewRecorder()
	provider := telemetry.Install(recorder)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	a := app.New(
		funcLoader(configure),
		resolver.New(fs.NewScanner()),
		shell.NewExecutor(log),
		env.New(),
		report.NewPrinter(),
		recorder,
		log,
	).WithOutput(stdout, stderr)

	cli := commands.New(a, log)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		log.Error(err)
		return commands.ExitCode(err)
	}
	return 0
}

// funcLoader registers targets by calling a ConfigureFunc instead of
// reading a script file.
type funcLoader ConfigureFunc

var _ ports.ScriptLoader = funcLoader(nil)

func (f funcLoader) Load(_ string, sys domain.System) (*domain.Script, error) {
	script := domain.NewScript()
	f(script, sys)
	return script, nil
}
