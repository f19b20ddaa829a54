package shell_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/internal/adapters/shell"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newExecutor(t *testing.T) *shell.Executor {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	ctrl := gomock.NewController(t)
	return shell.NewExecutor(mocks.NewMockLogger(ctrl))
}

func shCommand(script string) domain.Command {
	return domain.Command{Path: "sh", Args: []string{"-c", script}, Line: "sh -c " + script}
}

func TestExecutor_Execute_StreamsBothOutputs(t *testing.T) {
	executor := newExecutor(t)

	var stdout, stderr bytes.Buffer
	err := executor.Execute(context.Background(), shCommand("echo out; echo err >&2"), &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Execute_ArgumentsBypassShell(t *testing.T) {
	executor := newExecutor(t)

	cmd := domain.Command{Path: "echo", Args: []string{"a;b", "$HOME", "two words"}}
	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), cmd, &stdout, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, "a;b $HOME two words\n", stdout.String())
}

func TestExecutor_Execute_ExitCode(t *testing.T) {
	executor := newExecutor(t)

	err := executor.Execute(context.Background(), shCommand("echo broken >&2; exit 3"), io.Discard, io.Discard)

	require.Error(t, err)
	assert.ErrorContains(t, err, "compiler failed")

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestExecutor_Execute_LaunchFailure(t *testing.T) {
	executor := newExecutor(t)

	cmd := domain.Command{Path: "cbuild-test-no-such-compiler", Args: []string{"-o", "app"}}
	err := executor.Execute(context.Background(), cmd, io.Discard, io.Discard)

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to launch compiler")

	var exitErr *exec.ExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestExecutor_Execute_ContextCanceled(t *testing.T) {
	executor := newExecutor(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := executor.Execute(ctx, domain.Command{Path: "sleep", Args: []string{"5"}}, io.Discard, io.Discard)

	require.Error(t, err)
	assert.ErrorContains(t, err, "compiler failed")
}

func TestExecutor_Execute_Terminal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("pty is not used on windows")
	}

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	// Environments without /dev/ptmx fall back to pipes.
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(log)
	shell.SetTerminalDetector(executor, func(io.Writer) bool { return true })

	var stdout bytes.Buffer
	err := executor.Execute(context.Background(), shCommand("echo colored; exit 0"), &stdout, io.Discard)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "colored")
}

func TestExecutor_Execute_TerminalExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("pty is not used on windows")
	}

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(log)
	shell.SetTerminalDetector(executor, func(io.Writer) bool { return true })

	err := executor.Execute(context.Background(), shCommand("exit 4"), io.Discard, io.Discard)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 4, exitErr.ExitCode())
}
