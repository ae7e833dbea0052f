// Package options contains the program options.
package options

import "time"

// Frontend names that can be passed with -f.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Defaults of the emulation speed and presentation options.
const (
	DefaultInstructionsPerSecond = 700
	DefaultScale                 = 10
	FrameRate                    = 60
)

// Positional contains positional arguments.
type Positional struct {
	File string `arg:"positional" usage:"CHIP-8 ROM file to run"`
}

// Parameters contains file path and frontend options.
type Parameters struct {
	Input    string `flag:"i" usage:"input ROM file, alternative to the positional argument"`
	Frontend string `flag:"f" usage:"frontend: window, terminal, headless (default: auto-detect)"`
}

// Flags contains behavior options. The defaults in the tags match
// DefaultInstructionsPerSecond and DefaultScale.
type Flags struct {
	InstructionsPerSecond int    `flag:"ips" usage:"instructions executed per second" default:"700"`
	Scale                 int    `flag:"scale" usage:"window scale factor" default:"10"`
	Frames                int    `flag:"frames" usage:"stop after the given number of frames (0: unlimited)"`
	Seed                  uint64 `flag:"seed" usage:"seed for the random number instruction (0: random)"`
	Trace                 bool   `flag:"trace" usage:"log every executed instruction, requires -debug"`
	Mute                  bool   `flag:"mute" usage:"disable audio"`
	Debug                 bool   `flag:"debug" usage:"enable debug logging"`
	Quiet                 bool   `flag:"q" usage:"quiet mode"`
	Version               bool   `flag:"version" usage:"print version information"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
}

// Emulation defines options to control the frame loop.
type Emulation struct {
	InstructionsPerFrame int           // instructions executed between two timer ticks
	FrameInterval        time.Duration // time between two frames
	MaxFrames            int           // stop after this many frames, 0 runs until cancelled
	Trace                bool
}

// NewEmulation returns emulation options derived from the program options.
func NewEmulation(opts Program) Emulation {
	perFrame := opts.InstructionsPerSecond / FrameRate
	if perFrame < 1 {
		perFrame = 1
	}

	return Emulation{
		InstructionsPerFrame: perFrame,
		FrameInterval:        time.Second / FrameRate,
		MaxFrames:            opts.Frames,
		Trace:                opts.Trace,
	}
}
