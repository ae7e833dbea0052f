// Package frontend defines how the emulator presents the display and reads
// the keypad, and contains the headless frontend.
package frontend

import (
	"context"
	"time"

	"github.com/retroenv/retrochip8/internal/machine"
)

// FrameFunc emulates a single frame. Returning an error stops the frontend
// loop, the error is passed through to the caller of Run.
type FrameFunc func() error

// Frontend presents the machine to the user.
type Frontend interface {
	machine.KeyPad

	// PressedKey returns the lowest logical key that is currently held.
	PressedKey() (uint8, bool)

	// Render presents a framebuffer snapshot.
	Render(screen machine.Framebuffer) error

	// ResetRequested returns whether the user asked for a hard reset since
	// the last call.
	ResetRequested() bool

	// Run calls frame at the display rate until the context is cancelled,
	// the user quits or frame returns an error. Quitting returns nil.
	Run(ctx context.Context, frame FrameFunc) error

	// Close releases all resources of the frontend.
	Close() error
}

// TickLoop calls frame every interval until the context is cancelled or
// frame returns an error. An interval of 0 runs frames back to back.
func TickLoop(ctx context.Context, interval time.Duration, frame FrameFunc) error {
	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := frame(); err != nil {
			return err
		}
		if tick == nil {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
}

// Keys is the held state of the 16 logical keys.
type Keys [16]bool

// IsKeyPressed returns whether the key selected by the low nibble is held.
func (k *Keys) IsKeyPressed(key uint8) bool {
	return k[key&0xF]
}

// Lowest returns the lowest held key.
func (k *Keys) Lowest() (uint8, bool) {
	for key, pressed := range k {
		if pressed {
			return uint8(key), true
		}
	}
	return 0, false
}
