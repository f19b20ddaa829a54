// Package config loads cbuild.yaml scripts into a domain.Script.
package config

import (
	"os"
	"slices"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the script file looked up when none is given.
const DefaultFilename = "cbuild.yaml"

// SupportedVersion is the script format version this loader understands.
const SupportedVersion = "1"

// Loader implements ports.ScriptLoader for YAML scripts.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the script at path and registers the targets enabled for sys.
func (l *Loader) Load(path string, sys domain.System) (*domain.Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Scriptfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn("script version " + file.Version + " is not supported, reading it as version " + SupportedVersion)
	}

	libraries, err := compileLibraries(file.Libraries)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	script := domain.NewScript()
	script.SetCompiler(file.Compiler)
	script.SetSourceExtension(file.Extension)
	if file.Default != "" {
		script.SetDefault(file.Default)
	}

	for i := range file.Targets {
		dto := &file.Targets[i]
		enabled, fn, err := compileTarget(dto, libraries, sys)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		if enabled {
			script.Register(dto.Name, dto.Output, fn)
		}
	}

	return script, nil
}

// selector is a parsed when block.
type selector struct {
	mode  *domain.Mode
	sys   *domain.System
	block WhenDTO
}

func (s selector) matches(mode domain.Mode, sys domain.System) bool {
	if s.mode != nil && *s.mode != mode {
		return false
	}
	if s.sys != nil && *s.sys != sys {
		return false
	}
	return true
}

func compileSelectors(blocks []WhenDTO) ([]selector, error) {
	selectors := make([]selector, 0, len(blocks))
	for _, block := range blocks {
		sel := selector{block: block}
		if block.Mode != "" {
			mode, err := domain.ParseMode(block.Mode)
			if err != nil {
				return nil, invalid(err)
			}
			sel.mode = &mode
		}
		if block.OS != "" {
			sys, err := domain.ParseSystem(block.OS)
			if err != nil {
				return nil, invalid(err)
			}
			sel.sys = &sys
		}
		selectors = append(selectors, sel)
	}
	return selectors, nil
}

func compileLibraries(dtos map[string]LibraryDTO) (map[string]domain.LibraryFunc, error) {
	libraries := make(map[string]domain.LibraryFunc, len(dtos))
	for name, dto := range dtos {
		selectors, err := compileSelectors(dto.When)
		if err != nil {
			return nil, zerr.With(err, "library", name)
		}
		libraries[name] = libraryFunc(dto, selectors)
	}
	return libraries, nil
}

func libraryFunc(dto LibraryDTO, selectors []selector) domain.LibraryFunc {
	return func(l *domain.Library, mode domain.Mode, sys domain.System) {
		for _, dir := range dto.Include {
			l.IncludeDir(dir)
		}
		for _, dir := range dto.LibDirs {
			l.LibraryDir(dir)
		}
		l.LinkFlags(dto.Link)

		for _, sel := range selectors {
			if !sel.matches(mode, sys) {
				continue
			}
			for _, dir := range sel.block.Include {
				l.IncludeDir(dir)
			}
			for _, dir := range sel.block.LibDirs {
				l.LibraryDir(dir)
			}
			l.LinkFlags(sel.block.Link)
		}
	}
}

// compileTarget validates dto and reports whether the target is registered for registerFor.
func compileTarget(
	dto *TargetDTO,
	libraries map[string]domain.LibraryFunc,
	registerFor domain.System,
) (bool, domain.TargetFunc, error) {
	if dto.Name == "" {
		return false, nil, missingField("name")
	}
	if dto.Output == "" {
		return false, nil, zerr.With(missingField("output"), "target", dto.Name)
	}

	systems := make([]domain.System, 0, len(dto.Systems))
	for _, name := range dto.Systems {
		s, err := domain.ParseSystem(name)
		if err != nil {
			return false, nil, zerr.With(invalid(err), "target", dto.Name)
		}
		systems = append(systems, s)
	}

	selectors, err := compileSelectors(dto.When)
	if err != nil {
		return false, nil, zerr.With(err, "target", dto.Name)
	}

	uses := make([]domain.LibraryBinding, 0, len(dto.Libraries))
	for _, use := range dto.Libraries {
		fn, ok := libraries[use.Use]
		if !ok {
			return false, nil, zerr.With(
				zerr.With(invalid(domain.ErrUnknownLibrary), "library", use.Use),
				"target", dto.Name,
			)
		}
		uses = append(uses, domain.LibraryBinding{Dir: use.Dir, Configure: fn})
	}

	if len(systems) > 0 && !slices.Contains(systems, registerFor) {
		return false, nil, nil
	}

	fn := func(t *domain.Target, mode domain.Mode, sys domain.System) {
		t.Describe(dto.Description)
		for _, dir := range dto.Sources {
			t.SourceDir(dir)
		}
		t.CompileFlags(dto.CFlags)

		for _, sel := range selectors {
			if !sel.matches(mode, sys) {
				continue
			}
			for _, dir := range sel.block.Sources {
				t.SourceDir(dir)
			}
			t.CompileFlags(sel.block.CFlags)
		}

		for _, use := range uses {
			t.PlugLibrary(use.Configure, use.Dir)
		}
	}

	return true, fn, nil
}

// missingField reports a target entry without a required key.
func missingField(field string) error {
	return zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "missing required field"), "field", field)
}

func invalid(err error) error {
	return zerr.Wrap(err, domain.ErrConfigInvalid.Error())
}
