// Package runner drives a machine at a fixed instruction rate and connects it
// to a frontend.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// errFrameLimit stops the frontend loop once the configured number of frames
// has been emulated.
var errFrameLimit = errors.New("frame limit reached")

// Runner emulates frames of a machine. Each frame executes a fixed number of
// instructions, ticks the timers once and renders the display.
type Runner struct {
	logger   *log.Logger
	machine  *machine.Machine
	frontend frontend.Frontend
	program  []byte
	opts     options.Emulation

	frames int
}

// New returns a runner for a machine that has the program already loaded.
// The program is kept to reload it on a hard reset.
func New(logger *log.Logger, m *machine.Machine, fe frontend.Frontend,
	program []byte, opts options.Emulation) *Runner {

	if opts.InstructionsPerFrame < 1 {
		opts.InstructionsPerFrame = 1
	}
	return &Runner{
		logger:   logger,
		machine:  m,
		frontend: fe,
		program:  program,
		opts:     opts,
	}
}

// Run emulates frames until the context is cancelled, the user quits or the
// frame limit is reached.
func (r *Runner) Run(ctx context.Context) error {
	err := r.frontend.Run(ctx, r.RunFrame)
	if errors.Is(err, errFrameLimit) {
		r.logger.Debug("Frame limit reached", log.Int("frames", r.frames))
		return nil
	}
	return err
}

// RunFrame emulates a single frame.
func (r *Runner) RunFrame() error {
	if r.frontend.ResetRequested() {
		if err := r.reset(); err != nil {
			return err
		}
	}

	r.executeInstructions()
	r.machine.DecrementTimers()

	if err := r.frontend.Render(r.machine.Framebuffer()); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}

	r.frames++
	if r.opts.MaxFrames > 0 && r.frames >= r.opts.MaxFrames {
		return errFrameLimit
	}
	return nil
}

// Frames returns the number of emulated frames.
func (r *Runner) Frames() int {
	return r.frames
}

// executeInstructions runs the instructions of one frame. A pending key wait
// is satisfied by a held key, if no key is held the rest of the frame is
// skipped.
func (r *Runner) executeInstructions() {
	for range r.opts.InstructionsPerFrame {
		if _, waiting := r.machine.WaitingKey(); waiting {
			key, ok := r.frontend.PressedKey()
			if !ok {
				return
			}
			r.machine.DeliverKey(key)
		}

		address := r.machine.PC()
		ins, _ := r.machine.Step()
		if r.opts.Trace {
			r.logger.Debug("Executed",
				log.Hex("address", address),
				log.Hex("opcode", ins.Word),
				log.Stringer("instruction", ins))
		}
	}
}

func (r *Runner) reset() error {
	r.machine.Reset()
	if err := r.machine.Load(r.program); err != nil {
		return fmt.Errorf("reloading program: %w", err)
	}
	r.logger.Info("Machine reset")
	return nil
}
