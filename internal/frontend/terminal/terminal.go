// Package terminal implements a frontend that renders into a terminal using
// half block characters and reads the keypad from raw stdin.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
	"golang.org/x/term"
)

// Terminals do not report key releases, a key counts as held for this
// duration after its last repeat. It has to cover the keyboard auto-repeat
// delay between the first byte and the first repeat.
const holdDuration = 500 * time.Millisecond

// ANSI control sequences.
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

var errQuit = errors.New("quit requested")

// Terminal is a frontend that uses the controlling terminal.
type Terminal struct {
	in       *os.File
	out      io.Writer
	interval time.Duration
	now      func() time.Time

	fd       int
	oldState *term.State

	mutex    sync.Mutex
	lastSeen [16]time.Time
	reset    bool
	quit     bool
	last     string // last rendered frame
}

// New puts the terminal into raw mode and starts reading keys from in.
func New(in *os.File, out io.Writer, interval time.Duration) (*Terminal, error) {
	t := newTerminal(out, interval)
	t.in = in
	t.fd = int(in.Fd())

	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		return nil, fmt.Errorf("setting terminal raw mode: %w", err)
	}
	t.oldState = oldState

	if _, err := io.WriteString(out, hideCursor+clearScreen); err != nil {
		_ = term.Restore(t.fd, t.oldState)
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}

	go t.readInput()
	return t, nil
}

func newTerminal(out io.Writer, interval time.Duration) *Terminal {
	return &Terminal{
		out:      out,
		interval: interval,
		now:      time.Now,
	}
}

// readInput processes stdin until it is closed. The read blocks, the
// goroutine ends with the process.
func (t *Terminal) readInput() {
	buf := make([]byte, 16)
	for {
		n, err := t.in.Read(buf)
		if n > 0 {
			t.handleInput(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// handleInput handles one chunk of raw input. A single escape byte quits, a
// longer chunk starting with escape is a control sequence and ignored.
func (t *Terminal) handleInput(input []byte) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if len(input) > 1 && input[0] == escape {
		return
	}

	now := t.now()
	for _, b := range input {
		switch b {
		case ctrlC, escape:
			t.quit = true
		case ctrlR:
			t.reset = true
		default:
			if key, ok := lookupKey(b); ok {
				t.lastSeen[key] = now
			}
		}
	}
}

// IsKeyPressed implements machine.KeyPad.
func (t *Terminal) IsKeyPressed(key uint8) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.isHeld(key&0xF, t.now())
}

// PressedKey implements frontend.Frontend.
func (t *Terminal) PressedKey() (uint8, bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	now := t.now()
	for key := range uint8(len(t.lastSeen)) {
		if t.isHeld(key, now) {
			return key, true
		}
	}
	return 0, false
}

func (t *Terminal) isHeld(key uint8, now time.Time) bool {
	seen := t.lastSeen[key]
	return !seen.IsZero() && now.Sub(seen) < holdDuration
}

// Render implements frontend.Frontend. Unchanged frames are not written.
func (t *Terminal) Render(screen machine.Framebuffer) error {
	text := renderText(&screen)

	t.mutex.Lock()
	unchanged := text == t.last
	t.last = text
	t.mutex.Unlock()
	if unchanged {
		return nil
	}

	if _, err := io.WriteString(t.out, cursorHome+text); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// ResetRequested implements frontend.Frontend.
func (t *Terminal) ResetRequested() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	reset := t.reset
	t.reset = false
	return reset
}

// Run implements frontend.Frontend. Ctrl+C and Escape quit.
func (t *Terminal) Run(ctx context.Context, frame frontend.FrameFunc) error {
	err := frontend.TickLoop(ctx, t.interval, func() error {
		t.mutex.Lock()
		quit := t.quit
		t.mutex.Unlock()
		if quit {
			return errQuit
		}
		return frame()
	})
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// Close restores the terminal state.
func (t *Terminal) Close() error {
	if t.oldState == nil {
		return nil
	}
	_, _ = io.WriteString(t.out, showCursor+"\r\n")
	err := term.Restore(t.fd, t.oldState)
	t.oldState = nil
	if err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}
