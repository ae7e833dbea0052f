package options

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewEmulation(t *testing.T) {
	tests := []struct {
		name     string
		ips      int
		frames   int
		perFrame int
	}{
		{"default speed", DefaultInstructionsPerSecond, 0, 11},
		{"exact multiple", 600, 5, 10},
		{"below frame rate", 30, 0, 1},
		{"zero", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Program{Flags: Flags{InstructionsPerSecond: tt.ips, Frames: tt.frames, Trace: true}}

			emu := NewEmulation(opts)
			assert.Equal(t, tt.perFrame, emu.InstructionsPerFrame)
			assert.Equal(t, tt.frames, emu.MaxFrames)
			assert.Equal(t, time.Second/60, emu.FrameInterval)
			assert.True(t, emu.Trace)
		})
	}
}
