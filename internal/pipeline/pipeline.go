// Package pipeline orchestrates the emulator startup stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// Speaker is a machine speaker that holds resources.
type Speaker interface {
	machine.Speaker
	io.Closer
}

// Pipeline orchestrates the complete emulator workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new emulator pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute loads the ROM, sets up the frontend and audio output and runs the
// emulation until it is stopped.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) error {
	frontendName := p.detector.Detect(opts)

	program, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	fe, err := p.createFrontend(frontendName, opts)
	if err != nil {
		return fmt.Errorf("creating %s frontend: %w", frontendName, err)
	}
	defer func() {
		if err := fe.Close(); err != nil {
			p.logger.Error("Closing frontend failed", log.Err(err))
		}
	}()

	speaker := p.createSpeaker(frontendName, opts)
	defer func() { _ = speaker.Close() }()

	p.printInfo(opts, program, frontendName)
	_, err = p.ExecuteWithFrontend(ctx, program, opts, fe, speaker)
	return err
}

// ExecuteWithFrontend runs a pre-loaded program on the given frontend.
// This is useful for testing and programmatic usage where the ROM is already
// in memory. The runner is returned after the emulation stopped.
func (p *Pipeline) ExecuteWithFrontend(ctx context.Context, program []byte, opts options.Program,
	fe frontend.Frontend, speaker machine.Speaker) (*runner.Runner, error) {

	p.analyze(ctx, program)

	m := p.createMachine(opts, fe, speaker)
	if err := m.Load(program); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	r := runner.New(p.logger, m, fe, program, options.NewEmulation(opts))
	if err := r.Run(ctx); err != nil {
		return r, fmt.Errorf("running emulation: %w", err)
	}
	return r, nil
}

// createMachine creates the machine connected to frontend and speaker.
func (p *Pipeline) createMachine(opts options.Program, fe frontend.Frontend, speaker machine.Speaker) *machine.Machine {
	machineOpts := []machine.Option{
		machine.WithKeyPad(fe),
		machine.WithSpeaker(speaker),
		machine.WithLogger(p.logger),
	}
	if opts.Seed != 0 {
		machineOpts = append(machineOpts, machine.WithSeed(opts.Seed))
	}
	return machine.New(machineOpts...)
}

// createFrontend creates the frontend with the given name.
func (p *Pipeline) createFrontend(name string, opts options.Program) (frontend.Frontend, error) {
	interval := options.NewEmulation(opts).FrameInterval

	switch name {
	case options.FrontendWindow:
		title := "retrochip8 - " + filepath.Base(opts.Input)
		fe, err := window.New(p.logger, title, opts.Scale)
		if err != nil {
			return nil, fmt.Errorf("creating window: %w", err)
		}
		return fe, nil

	case options.FrontendTerminal:
		fe, err := terminal.New(os.Stdin, os.Stdout, interval)
		if err != nil {
			return nil, fmt.Errorf("creating terminal: %w", err)
		}
		return fe, nil

	case options.FrontendHeadless:
		return frontend.NewHeadless(interval), nil

	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", name)
	}
}

// createSpeaker opens the audio output. Without audio device the emulation
// continues silently.
func (p *Pipeline) createSpeaker(frontendName string, opts options.Program) Speaker {
	if opts.Mute || frontendName == options.FrontendHeadless {
		return audio.Silent{}
	}

	player, err := audio.NewPlayer()
	if err != nil {
		p.logger.Warn("Audio output not available", log.Err(err))
		return audio.Silent{}
	}
	return player
}

// analyze logs the instruction statistics of the program.
func (p *Pipeline) analyze(ctx context.Context, program []byte) {
	stats, err := chip8.Analyze(ctx, program, 0)
	if err != nil {
		p.logger.Debug("Analyzing program failed", log.Err(err))
		return
	}

	p.logger.Debug("Program analyzed",
		log.Int("words", stats.Words),
		log.Int("known", stats.Known()),
		log.Int("unknown", stats.Unknown),
		log.Int("shapes", len(stats.Ops)))
}

// printInfo prints information about the ROM being run.
func (p *Pipeline) printInfo(opts options.Program, program []byte, frontendName string) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(program)),
		log.String("frontend", frontendName),
		log.Int("ips", opts.InstructionsPerSecond),
	)
}
