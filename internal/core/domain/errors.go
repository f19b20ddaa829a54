package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownMode is returned when a build mode name is neither "debug" nor "release".
	ErrUnknownMode = zerr.New("unexpected mode, only 'debug' and 'release' are allowed")

	// ErrUnknownSystem is returned when an operating system name is not supported.
	ErrUnknownSystem = zerr.New("unknown system, only 'linux' and 'windows' are allowed")

	// ErrNoTargetSpecified is returned when no target was requested and the script has no default.
	ErrNoTargetSpecified = zerr.New("no target specified")

	// ErrTargetNotFound is returned when the requested target is not registered.
	ErrTargetNotFound = zerr.New("no such target")

	// ErrSourceDiscoveryFailed is returned when a source directory cannot be listed.
	ErrSourceDiscoveryFailed = zerr.New("failed to list source directory")

	// ErrRecipeResolutionFailed is returned when a target's recipe cannot be built.
	ErrRecipeResolutionFailed = zerr.New("failed to build target recipe")

	// ErrProcessLaunchFailed is returned when the compiler process cannot be started.
	ErrProcessLaunchFailed = zerr.New("failed to launch compiler")

	// ErrCompilerFailed is returned when the compiler exits with a non-zero status.
	ErrCompilerFailed = zerr.New("compiler failed")

	// ErrConfigReadFailed is returned when the script file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read script file")

	// ErrConfigParseFailed is returned when the script file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse script file")

	// ErrConfigInvalid is returned when the script file is well-formed but inconsistent.
	ErrConfigInvalid = zerr.New("invalid script")

	// ErrUnknownLibrary is returned when a target uses a library the script does not declare.
	ErrUnknownLibrary = zerr.New("unknown library")

	// ErrEnvFileReadFailed is returned when an existing .env file cannot be parsed.
	ErrEnvFileReadFailed = zerr.New("failed to read env file")

	// ErrMissingOptionValue is reported when a command line option is given without its value.
	ErrMissingOptionValue = zerr.New("missing argument for option")
)
