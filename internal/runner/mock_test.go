package runner

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
)

var errRender = errors.New("render failed")

// failingFrontend is a headless frontend whose rendering fails.
type failingFrontend struct {
	*frontend.Headless
}

func (f failingFrontend) Render(machine.Framebuffer) error {
	return errRender
}

func (f failingFrontend) Run(ctx context.Context, frame frontend.FrameFunc) error {
	return frontend.TickLoop(ctx, 0, frame)
}
