package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/internal/app"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports/mocks"
	"go.trai.ch/cbuild/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader   *mocks.MockScriptLoader
	scanner  *mocks.MockSourceScanner
	executor *mocks.MockExecutor
	env      *mocks.MockEnvironment
	reporter *mocks.MockReporter
	timings  *mocks.MockTimings
	logger   *mocks.MockLogger
	stdout   *bytes.Buffer
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:   mocks.NewMockScriptLoader(ctrl),
		scanner:  mocks.NewMockSourceScanner(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		env:      mocks.NewMockEnvironment(ctrl),
		reporter: mocks.NewMockReporter(ctrl),
		timings:  mocks.NewMockTimings(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		stdout:   &bytes.Buffer{},
	}
	f.app = app.New(f.loader, resolver.New(f.scanner), f.executor, f.env, f.reporter, f.timings, f.logger).
		WithOutput(f.stdout, io.Discard)
	return f
}

// newScript registers "app" and "tool". calls counts callback invocations.
func newScript(calls *int) *domain.Script {
	script := domain.NewScript()
	script.Register("app", "build/app", func(t *domain.Target, mode domain.Mode, _ domain.System) {
		*calls++
		t.SourceDir("src")
		t.CompileFlags("-Wall")
		if mode == domain.ModeRelease {
			t.CompileFlags("-O2")
		}
	})
	script.Register("tool", "build/tool", func(t *domain.Target, _ domain.Mode, _ domain.System) {
		*calls++
		t.SourceDir("tools")
	})
	return script
}

func TestApp_Build(t *testing.T) {
	f := newFixture(t)
	var calls int
	script := newScript(&calls)

	f.loader.EXPECT().Load("cbuild.yaml", domain.SystemLinux).Return(script, nil)
	f.scanner.EXPECT().Discover("src", ".c").Return([]string{"src/main.c"}, nil)
	f.env.EXPECT().Load(".").Return(map[string]string{"CC": "clang"}, nil)
	f.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			assert.Equal(t, []string{"clang", "-o", "build/app", "src/main.c", "-Wall", "-O2"}, cmd.Argv())
			assert.Equal(t, "clang -o build/app src/main.c  -Wall -O2 ", cmd.String())
			return nil
		})

	err := f.app.Build(context.Background(), app.BuildOptions{
		ConfigPath: "cbuild.yaml",
		Target:     "app",
		Mode:       domain.ModeRelease,
		System:     domain.SystemLinux,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, f.stdout.String())
}

func TestApp_Build_DefaultTarget(t *testing.T) {
	f := newFixture(t)
	var calls int
	script := newScript(&calls)
	script.SetDefault("tool")

	f.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(script, nil)
	f.scanner.EXPECT().Discover("tools", ".c").Return(nil, nil)
	f.env.EXPECT().Load(".").Return(map[string]string{}, nil)
	f.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			assert.Equal(t, []string{"gcc", "-o", "build/tool"}, cmd.Argv())
			return nil
		})

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{}))
}

func TestApp_Build_ScriptCompilerWins(t *testing.T) {
	f := newFixture(t)
	var calls int
	script := newScript(&calls)
	script.SetCompiler("tcc")

	f.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(script, nil)
	f.scanner.EXPECT().Discover("src", ".c").Return(nil, nil)
	f.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			assert.Equal(t, "tcc", cmd.Path)
			return nil
		})

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{Target: "app"}))
}

func TestApp_Build_Verbose(t *testing.T) {
	f := newFixture(t)
	var calls int
	script := newScript(&calls)
	phases := []domain.Phase{{Name: "resolve"}}

	gomock.InOrder(
		f.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(script, nil),
		f.logger.EXPECT().Info("building app (debug, linux)"),
		f.scanner.EXPECT().Discover("src", ".c").Return([]string{"src/main.c"}, nil),
		f.env.EXPECT().Load(".").Return(map[string]string{}, nil),
		f.reporter.EXPECT().Recipe(f.stdout, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ io.Writer, recipe *domain.Recipe, _ domain.Command) error {
				assert.Equal(t, []string{"src/main.c"}, recipe.Files)
				assert.Equal(t, " -Wall", recipe.CompileFlags)
				return nil
			}),
		f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		f.timings.EXPECT().Phases().Return(phases),
		f.reporter.EXPECT().Phases(f.stdout, phases).Return(nil),
	)

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{Target: "app", Verbose: true}))
}

func TestApp_Build_CompilerFailure(t *testing.T) {
	f := newFixture(t)
	var calls int
	script := newScript(&calls)
	compileErr := errors.New("exit status 1")

	f.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(script, nil)
	f.scanner.EXPECT().Discover("src", ".c").Return(nil, nil)
	f.env.EXPECT().Load(".").Return(map[string]string{}, nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(compileErr)

	err := f.app.Build(context.Background(), app.BuildOptions{Target: "app"})

	require.Error(t, err)
	assert.ErrorIs(t, err, compileErr)
}

func TestApp_Build_TargetSelectionFailures(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantErr string
	}{
		{name: "no target and no default", target: "", wantErr: "no target specified"},
		{name: "unknown target", target: "missing", wantErr: "no such target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			var calls int
			f.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(newScript(&calls), nil)

			err := f.app.Build(context.Background(), app.BuildOptions{Target: tt.target})

			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Zero(t, calls, "no callback runs when selection fails")
		})
	}
}

func TestApp_Build_LoadFailure(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	err := f.app.Build(context.Background(), app.BuildOptions{Target: "app"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load script")
}

func TestApp_Build_DiscoveryFailure(t *testing.T) {
	f := newFixture(t)
	var calls int

	f.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(newScript(&calls), nil)
	f.scanner.EXPECT().Discover("src", ".c").Return(nil, errors.New("permission denied"))

	err := f.app.Build(context.Background(), app.BuildOptions{Target: "app"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to build target recipe")
}

func TestApp_SelectTarget(t *testing.T) {
	tests := []struct {
		name      string
		def       string
		requested string
		want      string
		wantErr   error
	}{
		{name: "requested", requested: "tool", want: "tool"},
		{name: "requested wins over default", def: "app", requested: "tool", want: "tool"},
		{name: "default", def: "app", want: "app"},
		{name: "none", wantErr: domain.ErrNoTargetSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			var calls int
			script := newScript(&calls)
			if tt.def != "" {
				script.SetDefault(tt.def)
			}

			got, err := f.app.SelectTarget(script, tt.requested)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Zero(t, calls)
		})
	}
}

func TestApp_SelectTarget_DefaultNotRegistered(t *testing.T) {
	f := newFixture(t)
	var calls int
	script := newScript(&calls)
	script.SetDefault("ghost")

	_, err := f.app.SelectTarget(script, "")

	assert.ErrorContains(t, err, "no such target")
}

func TestApp_ListTargets(t *testing.T) {
	f := newFixture(t)
	var calls int
	script := newScript(&calls)
	script.Register("app", "build/shadowed", nil)
	script.SetDefault("app")

	f.loader.EXPECT().Load("cbuild.yaml", domain.SystemWindows).Return(script, nil)

	err := f.app.ListTargets(context.Background(), app.ListOptions{
		ConfigPath: "cbuild.yaml",
		System:     domain.SystemWindows,
	})

	require.NoError(t, err)
	assert.Equal(t, "app   build/app  (default)\ntool  build/tool\n", f.stdout.String())
	assert.Zero(t, calls)
}
