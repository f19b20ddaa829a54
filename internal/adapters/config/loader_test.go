package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/internal/adapters/config"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const fullScript = `
version: "1"
compiler: clang
extension: .cc
default: app
libraries:
  zlib:
    include: [include]
    libdirs: [lib]
    link: -lz
    when:
      - os: windows
        link: -lzlib
        libdirs: [lib/win]
targets:
  - name: app
    output: build/app
    description: demo application
    sources: [src]
    cflags: -Wall
    when:
      - mode: debug
        cflags: -g -O0
      - mode: release
        os: linux
        cflags: -O2
        sources: [src/linux]
    libraries:
      - use: zlib
        dir: vendor/zlib/
  - name: tool
    output: build/tool
    systems: [windows]
    sources: [tools]
`

func writeScript(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()

	ctrl := gomock.NewController(t)
	return config.NewLoader(mocks.NewMockLogger(ctrl))
}

func configure(t *testing.T, d domain.TargetDescriptor, mode domain.Mode, sys domain.System) *domain.Target {
	t.Helper()

	target := &domain.Target{}
	d.Configure(target, mode, sys)
	return target
}

func TestLoad_ScriptSettings(t *testing.T) {
	script, err := newLoader(t).Load(writeScript(t, fullScript), domain.SystemLinux)
	require.NoError(t, err)

	assert.Equal(t, "clang", script.Compiler())
	assert.Equal(t, ".cc", script.SourceExtension())

	def, ok := script.Default()
	assert.True(t, ok)
	assert.Equal(t, "app", def)
}

func TestLoad_SystemsFilter(t *testing.T) {
	path := writeScript(t, fullScript)

	linux, err := newLoader(t).Load(path, domain.SystemLinux)
	require.NoError(t, err)
	assert.True(t, linux.Exists("app"))
	assert.False(t, linux.Exists("tool"))

	windows, err := newLoader(t).Load(path, domain.SystemWindows)
	require.NoError(t, err)
	require.Len(t, windows.Targets(), 2)
	assert.Equal(t, "app", windows.Targets()[0].Name.String())
	assert.Equal(t, "tool", windows.Targets()[1].Name.String())
}

func TestLoad_TargetCallback(t *testing.T) {
	script, err := newLoader(t).Load(writeScript(t, fullScript), domain.SystemLinux)
	require.NoError(t, err)

	d, ok := script.Lookup("app")
	require.True(t, ok)
	assert.Equal(t, "build/app", d.Output)

	tests := []struct {
		name     string
		mode     domain.Mode
		sys      domain.System
		wantDirs []string
		wantFlag string
	}{
		{
			name:     "debug linux",
			mode:     domain.ModeDebug,
			sys:      domain.SystemLinux,
			wantDirs: []string{"src"},
			wantFlag: " -Wall -g -O0",
		},
		{
			name:     "release linux",
			mode:     domain.ModeRelease,
			sys:      domain.SystemLinux,
			wantDirs: []string{"src", "src/linux"},
			wantFlag: " -Wall -O2",
		},
		{
			name:     "release windows",
			mode:     domain.ModeRelease,
			sys:      domain.SystemWindows,
			wantDirs: []string{"src"},
			wantFlag: " -Wall",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := configure(t, d, tt.mode, tt.sys)

			assert.Equal(t, "demo application", target.Description())
			assert.Equal(t, tt.wantDirs, target.SourceDirs())
			assert.Equal(t, tt.wantFlag, target.Flags())
			require.Len(t, target.Libraries(), 1)
			assert.Equal(t, "vendor/zlib/", target.Libraries()[0].Dir)
		})
	}
}

func TestLoad_LibraryCallback(t *testing.T) {
	script, err := newLoader(t).Load(writeScript(t, fullScript), domain.SystemLinux)
	require.NoError(t, err)

	d, ok := script.Lookup("app")
	require.True(t, ok)
	binding := configure(t, d, domain.ModeDebug, domain.SystemLinux).Libraries()[0]

	linux := &domain.Library{}
	binding.Configure(linux, domain.ModeDebug, domain.SystemLinux)
	assert.Equal(t, []string{"include"}, linux.IncludeDirs())
	assert.Equal(t, []string{"lib"}, linux.LibraryDirs())
	assert.Equal(t, " -lz", linux.Flags())

	windows := &domain.Library{}
	binding.Configure(windows, domain.ModeDebug, domain.SystemWindows)
	assert.Equal(t, []string{"lib", "lib/win"}, windows.LibraryDirs())
	assert.Equal(t, " -lz -lzlib", windows.Flags())
}

func TestLoad_MinimalScript(t *testing.T) {
	script, err := newLoader(t).Load(writeScript(t, "targets:\n  - name: hello\n    output: hello\n"), domain.SystemLinux)
	require.NoError(t, err)

	_, ok := script.Default()
	assert.False(t, ok)
	assert.Empty(t, script.Compiler())
	assert.Equal(t, domain.DefaultSourceExtension, script.SourceExtension())

	d, ok := script.Lookup("hello")
	require.True(t, ok)
	target := configure(t, d, domain.ModeDebug, domain.SystemLinux)
	assert.Empty(t, target.SourceDirs())
	assert.Empty(t, target.Flags())
}

func TestLoad_DuplicateTargetsKeepOrder(t *testing.T) {
	content := `
targets:
  - name: app
    output: first
  - name: app
    output: second
`
	script, err := newLoader(t).Load(writeScript(t, content), domain.SystemLinux)
	require.NoError(t, err)

	assert.Len(t, script.Targets(), 2)
	d, ok := script.Lookup("app")
	require.True(t, ok)
	assert.Equal(t, "first", d.Output)
}

func TestLoad_UnsupportedVersionWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := config.NewLoader(log).Load(writeScript(t, "version: \"2\"\n"), domain.SystemLinux)
	require.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
		wantIs  error
	}{
		{
			name:    "malformed yaml",
			content: "targets: [",
			wantErr: "failed to parse script file",
		},
		{
			name:    "missing name",
			content: "targets:\n  - output: app\n",
			wantErr: "missing required field",
			wantIs:  domain.ErrConfigInvalid,
		},
		{
			name:    "missing output",
			content: "targets:\n  - name: app\n",
			wantErr: "missing required field",
			wantIs:  domain.ErrConfigInvalid,
		},
		{
			name:    "unknown library",
			content: "targets:\n  - name: app\n    output: app\n    libraries:\n      - use: zlib\n",
			wantErr: "invalid script",
			wantIs:  domain.ErrUnknownLibrary,
		},
		{
			name:    "unknown mode selector",
			content: "targets:\n  - name: app\n    output: app\n    when:\n      - mode: fast\n",
			wantErr: "unexpected mode",
		},
		{
			name:    "unknown system filter",
			content: "targets:\n  - name: app\n    output: app\n    systems: [darwin]\n",
			wantErr: "unknown system",
		},
		{
			name:    "unknown library selector",
			content: "libraries:\n  zlib:\n    when:\n      - os: plan9\n",
			wantErr: "unknown system",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Load(writeScript(t, tt.content), domain.SystemLinux)

			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "missing.yaml"), domain.SystemLinux)

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read script file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
