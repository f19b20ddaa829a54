// Package shell runs the composed compiler command.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/creack/pty"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// TracerName is the instrumentation name of the executor's spans.
const TracerName = "go.trai.ch/cbuild/shell"

// Executor implements ports.Executor using os/exec and pty.
// The command is started directly, never through a shell.
type Executor struct {
	logger     ports.Logger
	isTerminal func(w io.Writer) bool
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger:     logger,
		isTerminal: isTerminal,
	}
}

// Execute runs cmd and waits for it to complete.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	ctx, span := otel.Tracer(TracerName).Start(ctx, "compile")
	defer span.End()
	span.SetAttributes(attribute.String("command", cmd.Path))

	err := e.run(ctx, cmd, stdout, stderr)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (e *Executor) run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	if e.usePTY(stdout) {
		err := runPTY(e.command(ctx, cmd), stdout)
		if !errors.Is(err, errPTYUnavailable) {
			return err
		}
		e.logger.Warn("terminal unavailable, compiler output is not colored")
	}
	return runPipes(e.command(ctx, cmd), stdout, stderr)
}

func (e *Executor) command(ctx context.Context, cmd domain.Command) *exec.Cmd {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...) //nolint:gosec // command comes from the user's script
	c.Env = os.Environ()
	return c
}

func (e *Executor) usePTY(stdout io.Writer) bool {
	return runtime.GOOS != "windows" && e.isTerminal(stdout)
}

var errPTYUnavailable = errors.New("pty unavailable")

// runPTY attaches the process to a pseudo terminal. Both output streams of the
// process arrive on the terminal and are copied to stdout.
func runPTY(c *exec.Cmd, stdout io.Writer) error {
	ptmx, err := pty.Start(c)
	if err != nil {
		if isLaunchError(err) {
			return launchFailed(err, c.Path)
		}
		return errors.Join(errPTYUnavailable, err)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading a terminal whose child has exited ends with EIO.
		_, _ = io.Copy(stdout, ptmx)
	}()

	waitErr := c.Wait()
	<-ioDone
	_ = ptmx.Close()

	return exitError(waitErr)
}

// runPipes copies the process's stdout and stderr concurrently.
func runPipes(c *exec.Cmd, stdout, stderr io.Writer) error {
	outPipe, err := c.StdoutPipe()
	if err != nil {
		return launchFailed(err, c.Path)
	}
	errPipe, err := c.StderrPipe()
	if err != nil {
		return launchFailed(err, c.Path)
	}

	if err := c.Start(); err != nil {
		return launchFailed(err, c.Path)
	}

	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(stdout, outPipe)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(stderr, errPipe)
		return err
	})
	copyErr := g.Wait()

	if err := exitError(c.Wait()); err != nil {
		return err
	}
	if copyErr != nil {
		return zerr.Wrap(copyErr, "failed to copy compiler output")
	}
	return nil
}

func exitError(err error) error {
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(zerr.Wrap(err, domain.ErrCompilerFailed.Error()), "exit_code", exitCode)
}

func launchFailed(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrProcessLaunchFailed.Error()), "compiler", path)
}

// isLaunchError reports whether err stems from the executable rather than the terminal.
func isLaunchError(err error) bool {
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return true
	}
	var pathErr *os.PathError
	return errors.As(err, &pathErr) && pathErr.Op != "open"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
