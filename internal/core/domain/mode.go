package domain

import (
	"runtime"

	"go.trai.ch/zerr"
)

// Mode is the build variant passed to target and library callbacks.
type Mode int

const (
	// ModeDebug is the default build variant.
	ModeDebug Mode = iota
	// ModeRelease is the optimized build variant.
	ModeRelease
)

// String returns the name used on the command line.
func (m Mode) String() string {
	switch m {
	case ModeDebug:
		return "debug"
	case ModeRelease:
		return "release"
	default:
		return "unknown"
	}
}

// ParseMode maps a command line name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "debug":
		return ModeDebug, nil
	case "release":
		return ModeRelease, nil
	default:
		return ModeDebug, zerr.With(ErrUnknownMode, "mode", name)
	}
}

// System is the operating system a build targets.
type System int

const (
	// SystemLinux targets Linux.
	SystemLinux System = iota
	// SystemWindows targets Windows.
	SystemWindows
)

// String returns the name used on the command line.
func (s System) String() string {
	switch s {
	case SystemLinux:
		return "linux"
	case SystemWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// ParseSystem maps a command line name to a System.
func ParseSystem(name string) (System, error) {
	switch name {
	case "linux":
		return SystemLinux, nil
	case "windows":
		return SystemWindows, nil
	default:
		return SystemLinux, zerr.With(ErrUnknownSystem, "system", name)
	}
}

// CurrentSystem returns the System cbuild itself runs on.
// Every non-Windows host is treated as Linux.
func CurrentSystem() System {
	if runtime.GOOS == "windows" {
		return SystemWindows
	}
	return SystemLinux
}
