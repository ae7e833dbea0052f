// Package detector handles frontend and ROM system detection.
package detector

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// Environment gives access to the process environment that the detection
// depends on.
type Environment struct {
	GOOS       string
	Getenv     func(key string) string
	IsTerminal func() bool
}

// Detector selects the frontend to use from options and the environment.
type Detector struct {
	logger *log.Logger
	env    Environment
}

// New creates a new detector for the environment of the current process.
func New(logger *log.Logger) *Detector {
	return NewWithEnvironment(logger, Environment{
		GOOS:   runtime.GOOS,
		Getenv: os.Getenv,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	})
}

// NewWithEnvironment creates a new detector for the given environment.
func NewWithEnvironment(logger *log.Logger, env Environment) *Detector {
	return &Detector{
		logger: logger,
		env:    env,
	}
}

// Detect determines the frontend from options or auto-detection.
// An explicitly requested frontend is always used, otherwise a window is
// preferred if a display is available, then the terminal and finally the
// headless frontend.
func (d *Detector) Detect(opts options.Program) string {
	d.checkSystem(opts.Input)

	if opts.Frontend != "" {
		return opts.Frontend
	}

	frontend := d.detectFromEnvironment()
	d.logger.Debug("Auto-detected frontend", log.String("frontend", frontend))
	return frontend
}

func (d *Detector) detectFromEnvironment() string {
	switch {
	case d.hasDisplay():
		return options.FrontendWindow
	case d.env.IsTerminal():
		return options.FrontendTerminal
	default:
		return options.FrontendHeadless
	}
}

// hasDisplay returns whether a graphical session is available. Windows and
// macOS always have one, on other systems an X11 or Wayland display has to be
// set.
func (d *Detector) hasDisplay() bool {
	switch d.env.GOOS {
	case "windows", "darwin":
		return true
	}
	return d.env.Getenv("DISPLAY") != "" || d.env.Getenv("WAYLAND_DISPLAY") != ""
}

// checkSystem warns if the file extension indicates a ROM of another system.
func (d *Detector) checkSystem(filename string) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	switch ext {
	case "", "ch8", "rom", "bin":
		return
	}

	system, ok := arch.SystemFromString(ext)
	if ok && system != arch.CHIP8System {
		d.logger.Warn("File extension indicates a ROM of another system",
			log.String("file", filename),
			log.Stringer("system", system))
	}
}
