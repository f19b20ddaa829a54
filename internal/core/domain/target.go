package domain

// DefaultSourceExtension is the suffix of the files source discovery picks up.
const DefaultSourceExtension = ".c"

// LibraryBinding pairs a library callback with the directory its paths are relative to.
type LibraryBinding struct {
	Dir       string
	Configure LibraryFunc
}

// Target collects what a TargetFunc declares during one resolution.
type Target struct {
	description  string
	sourceDirs   StringList
	compileFlags Buffer
	libraries    List[LibraryBinding]
}

// Describe sets the informational description. The last call wins.
func (t *Target) Describe(desc string) {
	t.description = desc
}

// SourceDir adds a directory scanned for source files.
func (t *Target) SourceDir(dir string) {
	t.sourceDirs.Append(dir)
}

// CompileFlags appends compiler flags.
func (t *Target) CompileFlags(flags string) {
	t.compileFlags.AppendFlags(flags)
}

// PlugLibrary binds a library whose include and library directories are
// prefixed with dir.
func (t *Target) PlugLibrary(fn LibraryFunc, dir string) {
	t.libraries.Append(LibraryBinding{Dir: dir, Configure: fn})
}

// Description returns the text set by Describe.
func (t *Target) Description() string {
	return t.description
}

// SourceDirs returns the source directories in declaration order.
func (t *Target) SourceDirs() []string {
	return t.sourceDirs.Items()
}

// Flags returns the accumulated compiler flags.
func (t *Target) Flags() string {
	return t.compileFlags.String()
}

// Libraries returns the library bindings in declaration order.
func (t *Target) Libraries() []LibraryBinding {
	return t.libraries.Items()
}

// Library collects what a LibraryFunc declares during one resolution.
type Library struct {
	includeDirs StringList
	libraryDirs StringList
	linkFlags   Buffer
}

// IncludeDir adds a header search directory.
func (l *Library) IncludeDir(dir string) {
	l.includeDirs.Append(dir)
}

// LibraryDir adds a library search directory.
func (l *Library) LibraryDir(dir string) {
	l.libraryDirs.Append(dir)
}

// LinkFlags appends linker flags.
func (l *Library) LinkFlags(flags string) {
	l.linkFlags.AppendFlags(flags)
}

// IncludeDirs returns the include directories in declaration order.
func (l *Library) IncludeDirs() []string {
	return l.includeDirs.Items()
}

// LibraryDirs returns the library directories in declaration order.
func (l *Library) LibraryDirs() []string {
	return l.libraryDirs.Items()
}

// Flags returns the accumulated linker flags.
func (l *Library) Flags() string {
	return l.linkFlags.String()
}
