// Package domain contains the registration model and the resolved build plan.
package domain

// TargetFunc configures a Target for the given mode and system.
type TargetFunc func(t *Target, mode Mode, sys System)

// LibraryFunc configures a Library for the given mode and system.
type LibraryFunc func(l *Library, mode Mode, sys System)

// TargetDescriptor is a registered target. It is never modified after registration.
type TargetDescriptor struct {
	Name      InternedString
	Output    string
	Configure TargetFunc
}

// Script is the registry of targets a configuration routine populates.
type Script struct {
	targets       List[TargetDescriptor]
	defaultTarget string
	compiler      string
	extension     string
}

// NewScript returns an empty Script.
func NewScript() *Script {
	return &Script{}
}

// Register appends a target. Duplicate names are kept; Lookup returns the first.
func (s *Script) Register(name, output string, fn TargetFunc) {
	s.targets.Append(TargetDescriptor{
		Name:      NewInternedString(name),
		Output:    output,
		Configure: fn,
	})
}

// SetDefault sets the target built when none is requested. The last call wins.
func (s *Script) SetDefault(name string) {
	s.defaultTarget = name
}

// Default returns the default target name, if one was set.
func (s *Script) Default() (string, bool) {
	return s.defaultTarget, s.defaultTarget != ""
}

// SetCompiler overrides the compiler used for every target of the script.
func (s *Script) SetCompiler(name string) {
	s.compiler = name
}

// Compiler returns the compiler set with SetCompiler, or "".
func (s *Script) Compiler() string {
	return s.compiler
}

// SetSourceExtension overrides the suffix used to discover source files.
func (s *Script) SetSourceExtension(ext string) {
	s.extension = ext
}

// SourceExtension returns the discovery suffix, DefaultSourceExtension when unset.
func (s *Script) SourceExtension() string {
	if s.extension == "" {
		return DefaultSourceExtension
	}
	return s.extension
}

// Lookup returns the first target registered under name.
func (s *Script) Lookup(name string) (TargetDescriptor, bool) {
	key := NewInternedString(name)
	for d := range s.targets.All() {
		if d.Name == key {
			return d, true
		}
	}
	return TargetDescriptor{}, false
}

// Exists reports whether a target is registered under name.
func (s *Script) Exists(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Targets returns the registered targets in registration order.
func (s *Script) Targets() []TargetDescriptor {
	return s.targets.Items()
}
