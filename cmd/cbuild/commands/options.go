package commands

import (
	"fmt"

	"go.trai.ch/cbuild/internal/adapters/config"
	"go.trai.ch/cbuild/internal/core/domain"
)

// Option names recognized on the command line.
const (
	flagVerbose     = "--verbose"
	flagMode        = "--mode"
	flagOS          = "--os"
	flagConfig      = "--config"
	flagConfigShort = "-c"
	flagHelp        = "--help"
	flagHelpShort   = "-h"
)

// Options is the run configuration scanned from the command line.
type Options struct {
	Mode       domain.Mode
	System     domain.System
	Target     string
	Verbose    bool
	ConfigPath string
	Help       bool
}

// Warner receives non-fatal notices about the command line.
type Warner interface {
	Warn(msg string)
}

// DefaultOptions returns the configuration used when no option is given.
func DefaultOptions() Options {
	return Options{
		Mode:       domain.ModeDebug,
		System:     domain.CurrentSystem(),
		ConfigPath: config.DefaultFilename,
	}
}

// ParseOptions scans args from left to right.
//
// --verbose is looked for before anything else since it controls some
// warnings. An option that takes a value always consumes the next argument.
// An unknown --os or --mode value is an error, a missing one is a warning.
// The first remaining argument names the target and later ones are ignored.
func ParseOptions(args []string, warn Warner) (Options, error) {
	opts := DefaultOptions()

	for _, arg := range args {
		if arg == flagVerbose {
			opts.Verbose = true
			break
		}
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case flagVerbose:
		case flagHelp, flagHelpShort:
			opts.Help = true
		case flagOS:
			if i+1 >= len(args) {
				if opts.Verbose {
					warn.Warn(missingValue(arg))
				}
				continue
			}
			i++
			sys, err := domain.ParseSystem(args[i])
			if err != nil {
				return opts, err
			}
			opts.System = sys
		case flagMode:
			if i+1 >= len(args) {
				warn.Warn(missingValue(arg))
				continue
			}
			i++
			mode, err := domain.ParseMode(args[i])
			if err != nil {
				return opts, err
			}
			opts.Mode = mode
		case flagConfig, flagConfigShort:
			if i+1 >= len(args) {
				warn.Warn(missingValue(arg))
				continue
			}
			i++
			opts.ConfigPath = args[i]
		default:
			if opts.Target == "" {
				opts.Target = arg
			} else if opts.Verbose {
				warn.Warn(fmt.Sprintf("ignoring option '%s'", arg))
			}
		}
	}

	return opts, nil
}

func missingValue(option string) string {
	return fmt.Sprintf("%s '%s'", domain.ErrMissingOptionValue.Error(), option)
}
