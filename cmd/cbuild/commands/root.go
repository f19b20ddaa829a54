// Package commands implements the CLI commands for the cbuild tool.
package commands

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/spf13/cobra"
	"go.trai.ch/cbuild/internal/adapters/config"
	"go.trai.ch/cbuild/internal/app"
	"go.trai.ch/cbuild/internal/core/domain"
)

// CLI represents the command line interface for cbuild.
type CLI struct {
	app     Application
	warn    Warner
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	ListTargets(ctx context.Context, opts app.ListOptions) error
}

// New creates a new CLI instance with the given app. Command line warnings
// are reported to warn.
func New(a Application, warn Warner) *CLI {
	c := &CLI{
		app:  a,
		warn: warn,
	}

	rootCmd := &cobra.Command{
		Use:   "cbuild [target] [--mode debug|release] [--os linux|windows] [--verbose]",
		Short: "Build C targets declared in a cbuild script",
		Long: "cbuild resolves a target declared in cbuild.yaml into a single compiler\n" +
			"invocation and runs it. Without a target the script's default is built.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		// Options are scanned by ParseOptions, which accepts options without
		// their value and treats every other argument as a target name.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE:               c.runBuild,
	}

	// Declared for the help text only.
	rootCmd.Flags().String("mode", "debug", "Build mode: debug or release")
	rootCmd.Flags().String("os", domain.CurrentSystem().String(), "Target operating system: linux or windows")
	rootCmd.Flags().StringP("config", "c", config.DefaultFilename, "Path to the cbuild script")
	rootCmd.Flags().Bool("verbose", false, "Print the resolved recipe, the command and timings")
	rootCmd.Flags().BoolP("help", "h", false, "Show help for command")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) runBuild(cmd *cobra.Command, args []string) error {
	opts, err := ParseOptions(args, c.warn)
	if err != nil {
		return err
	}

	if opts.Help {
		return cmd.Help()
	}

	return c.app.Build(cmd.Context(), app.BuildOptions{
		ConfigPath: opts.ConfigPath,
		Target:     opts.Target,
		Mode:       opts.Mode,
		System:     opts.System,
		Verbose:    opts.Verbose,
		Dir:        ".",
	})
}

// ExitCode maps err to the process exit status: the compiler's own status
// when the compiler failed, 1 for every other error.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
