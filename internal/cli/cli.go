// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	retrocli "github.com/retroenv/retrogolib/cli"
	"github.com/retroenv/retrogolib/log"
)

// ErrHelpRequested is returned when the usage was requested with -h. The
// usage has already been printed in that case.
var ErrHelpRequested = retrocli.ErrHelpRequested

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := retrocli.NewFlagSet("retrochip8")
	var opts options.Program
	var positional options.Positional
	flags.AddSection("Parameters", &opts.Parameters)
	flags.AddSection("Emulation", &opts.Flags)
	flags.AddPositional(&positional)

	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, retrocli.ErrHelpRequested) {
			return opts, ErrHelpRequested
		}
		// the flag package printed the usage already
		return opts, &UsageError{msg: err.Error()}
	}
	if opts.Version {
		return opts, nil
	}
	if positional.File != "" {
		opts.Input = positional.File
	}
	if opts.Input == "" {
		return opts, &UsageError{flags: flags, msg: "no ROM file given"}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *retrocli.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and all flag defaults, unless the flag parser
// printed them already.
func (e *UsageError) ShowUsage() {
	if e.flags != nil {
		e.flags.ShowUsage()
	}
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}

// validateArgs checks that no flags follow the ROM file.
func validateArgs(flags *retrocli.FlagSet, args []string) error {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	switch opts.Frontend {
	case "", options.FrontendWindow, options.FrontendTerminal, options.FrontendHeadless:
	default:
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s", opts.Frontend,
			strings.Join([]string{options.FrontendWindow, options.FrontendTerminal, options.FrontendHeadless}, ", "))
	}

	if opts.InstructionsPerSecond <= 0 {
		return fmt.Errorf("invalid instructions per second %d: must be positive", opts.InstructionsPerSecond)
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("invalid scale %d: must be positive", opts.Scale)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame limit %d: must not be negative", opts.Frames)
	}
	return nil
}
