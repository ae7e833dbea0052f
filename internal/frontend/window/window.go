//go:build !headless

// Package window implements a frontend that presents the display in a
// window and reads the keypad from the keyboard.
package window

import (
	"context"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

const (
	statusBarHeight = 16
	statusFrames    = 120 // frames that a status message stays visible
)

// keyMap maps the hex keypad to the left side of a QWERTY keyboard.
var keyMap = [16]ebiten.Key{
	0x0: ebiten.KeyX,
	0x1: ebiten.KeyDigit1, 0x2: ebiten.KeyDigit2, 0x3: ebiten.KeyDigit3,
	0x4: ebiten.KeyQ, 0x5: ebiten.KeyW, 0x6: ebiten.KeyE,
	0x7: ebiten.KeyA, 0x8: ebiten.KeyS, 0x9: ebiten.KeyD,
	0xA: ebiten.KeyZ, 0xB: ebiten.KeyC,
	0xC: ebiten.KeyDigit4, 0xD: ebiten.KeyR, 0xE: ebiten.KeyF, 0xF: ebiten.KeyV,
}

// Window is an ebiten based frontend. All methods besides Run are called
// from the ebiten update loop.
type Window struct {
	logger *log.Logger
	title  string
	scale  int

	ctx   context.Context
	frame frontend.FrameFunc

	keys       frontend.Keys
	screen     machine.Framebuffer
	pixels     []byte
	image      *ebiten.Image
	paused     bool
	reset      bool
	fullscreen bool

	status       string
	statusFrames int

	clipboardOnce sync.Once
	clipboardOK   bool
}

// New returns a window frontend with the given title and scale factor.
func New(logger *log.Logger, title string, scale int) (*Window, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale %d", scale)
	}
	return &Window{
		logger: logger,
		title:  title,
		scale:  scale,
		pixels: make([]byte, machine.Width*machine.Height*4),
	}, nil
}

// IsKeyPressed implements machine.KeyPad.
func (w *Window) IsKeyPressed(key uint8) bool {
	return w.keys.IsKeyPressed(key)
}

// PressedKey implements frontend.Frontend.
func (w *Window) PressedKey() (uint8, bool) {
	return w.keys.Lowest()
}

// Render implements frontend.Frontend.
func (w *Window) Render(screen machine.Framebuffer) error {
	w.screen = screen
	fillPixels(w.pixels, &screen)
	return nil
}

// ResetRequested implements frontend.Frontend.
func (w *Window) ResetRequested() bool {
	reset := w.reset
	w.reset = false
	return reset
}

// Run opens the window and calls frame on every tick until the window is
// closed, the context is cancelled or frame returns an error.
func (w *Window) Run(ctx context.Context, frame frontend.FrameFunc) error {
	w.ctx = ctx
	w.frame = frame

	ebiten.SetWindowSize(machine.Width*w.scale, machine.Height*w.scale)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(options.FrameRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Close implements frontend.Frontend.
func (w *Window) Close() error {
	return nil
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if err := w.ctx.Err(); err != nil {
		return err
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyF9):
		w.copyScreenshot()
	case inpututil.IsKeyJustPressed(ebiten.KeyF10):
		w.reset = true
		w.setStatus("Reset")
	case inpututil.IsKeyJustPressed(ebiten.KeyF11):
		w.fullscreen = !w.fullscreen
		ebiten.SetFullscreen(w.fullscreen)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		w.paused = !w.paused
	}

	for key, ebitenKey := range keyMap {
		w.keys[key] = ebiten.IsKeyPressed(ebitenKey)
	}

	if w.statusFrames > 0 {
		w.statusFrames--
	}
	if w.paused {
		return nil
	}
	return w.frame()
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.image == nil {
		w.image = ebiten.NewImage(machine.Width, machine.Height)
	}
	w.image.WritePixels(w.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.image, op)

	status := w.statusLine()
	if status == "" {
		return
	}
	width := machine.Width * w.scale
	y := machine.Height*w.scale - statusBarHeight
	ebitenutil.DrawRect(screen, 0, float64(y), float64(width), statusBarHeight, color.RGBA{0, 0, 0, 180})
	text.Draw(screen, status, basicfont.Face7x13, 4, y+12, color.White)
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) {
	return machine.Width * w.scale, machine.Height * w.scale
}

func (w *Window) statusLine() string {
	switch {
	case w.statusFrames > 0:
		return w.status
	case w.paused:
		return "Paused - press P to continue"
	default:
		return ""
	}
}

func (w *Window) setStatus(status string) {
	w.status = status
	w.statusFrames = statusFrames
}

// copyScreenshot copies the display as PNG image into the clipboard.
func (w *Window) copyScreenshot() {
	w.clipboardOnce.Do(func() {
		w.clipboardOK = clipboard.Init() == nil
	})
	if !w.clipboardOK {
		w.setStatus("Clipboard not available")
		return
	}

	data, err := screenshotPNG(&w.screen, w.scale)
	if err != nil {
		w.logger.Error("Creating screenshot failed", log.Err(err))
		return
	}
	clipboard.Write(clipboard.FmtImage, data)
	w.setStatus("Screenshot copied to clipboard")
}
