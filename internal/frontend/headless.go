package frontend

import (
	"context"
	"sync"
	"time"

	"github.com/retroenv/retrochip8/internal/machine"
)

// Headless is a frontend without any output that keeps the last rendered
// frame in memory. Keys are controlled programmatically.
type Headless struct {
	mutex    sync.Mutex
	interval time.Duration
	keys     Keys
	reset    bool
	screen   machine.Framebuffer
	frames   int
}

// NewHeadless returns a headless frontend that runs a frame every interval.
func NewHeadless(interval time.Duration) *Headless {
	return &Headless{interval: interval}
}

// Press marks the logical key as held.
func (h *Headless) Press(key uint8) {
	h.mutex.Lock()
	h.keys[key&0xF] = true
	h.mutex.Unlock()
}

// Release marks the logical key as released.
func (h *Headless) Release(key uint8) {
	h.mutex.Lock()
	h.keys[key&0xF] = false
	h.mutex.Unlock()
}

// RequestReset asks the runner for a hard reset before the next frame.
func (h *Headless) RequestReset() {
	h.mutex.Lock()
	h.reset = true
	h.mutex.Unlock()
}

// IsKeyPressed implements machine.KeyPad.
func (h *Headless) IsKeyPressed(key uint8) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.keys.IsKeyPressed(key)
}

// PressedKey implements Frontend.
func (h *Headless) PressedKey() (uint8, bool) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.keys.Lowest()
}

// Render implements Frontend.
func (h *Headless) Render(screen machine.Framebuffer) error {
	h.mutex.Lock()
	h.screen = screen
	h.frames++
	h.mutex.Unlock()
	return nil
}

// ResetRequested implements Frontend.
func (h *Headless) ResetRequested() bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	reset := h.reset
	h.reset = false
	return reset
}

// Run implements Frontend.
func (h *Headless) Run(ctx context.Context, frame FrameFunc) error {
	return TickLoop(ctx, h.interval, frame)
}

// Close implements Frontend.
func (h *Headless) Close() error {
	return nil
}

// Screen returns the last rendered framebuffer.
func (h *Headless) Screen() machine.Framebuffer {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.screen
}

// Frames returns the number of rendered frames.
func (h *Headless) Frames() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.frames
}
