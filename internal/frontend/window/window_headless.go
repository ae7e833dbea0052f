//go:build headless

// Package window implements a frontend that presents the display in a
// window and reads the keypad from the keyboard.
package window

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnavailable is returned by New in builds without window support.
var ErrUnavailable = errors.New("window frontend is not available in headless builds")

// Window is not available in headless builds.
type Window struct{}

// New returns ErrUnavailable.
func New(*log.Logger, string, int) (*Window, error) {
	return nil, ErrUnavailable
}

// IsKeyPressed implements machine.KeyPad, no key is ever pressed.
func (w *Window) IsKeyPressed(uint8) bool { return false }

// PressedKey reports that no key is held.
func (w *Window) PressedKey() (uint8, bool) { return 0, false }

// Render returns ErrUnavailable.
func (w *Window) Render(machine.Framebuffer) error { return ErrUnavailable }

// ResetRequested reports that no reset is pending.
func (w *Window) ResetRequested() bool { return false }

// Run returns ErrUnavailable.
func (w *Window) Run(context.Context, frontend.FrameFunc) error { return ErrUnavailable }

// Close implements io.Closer.
func (w *Window) Close() error { return nil }
