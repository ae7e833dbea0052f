package detector

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)

	tests := []struct {
		name         string
		frontendOpt  string
		inputFile    string
		goos         string
		env          map[string]string
		terminal     bool
		wantFrontend string
	}{
		{
			name:         "explicit frontend option",
			frontendOpt:  options.FrontendHeadless,
			inputFile:    "pong.ch8",
			goos:         "linux",
			env:          map[string]string{"DISPLAY": ":0"},
			terminal:     true,
			wantFrontend: options.FrontendHeadless,
		},
		{
			name:         "X11 display",
			inputFile:    "pong.ch8",
			goos:         "linux",
			env:          map[string]string{"DISPLAY": ":0"},
			wantFrontend: options.FrontendWindow,
		},
		{
			name:         "Wayland display",
			inputFile:    "pong.ch8",
			goos:         "linux",
			env:          map[string]string{"WAYLAND_DISPLAY": "wayland-0"},
			wantFrontend: options.FrontendWindow,
		},
		{
			name:         "macOS always has a display",
			inputFile:    "pong.rom",
			goos:         "darwin",
			wantFrontend: options.FrontendWindow,
		},
		{
			name:         "terminal without display",
			inputFile:    "pong.ch8",
			goos:         "linux",
			terminal:     true,
			wantFrontend: options.FrontendTerminal,
		},
		{
			name:         "no display and no terminal",
			inputFile:    "game.nes",
			goos:         "linux",
			wantFrontend: options.FrontendHeadless,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewWithEnvironment(logger, Environment{
				GOOS:       tt.goos,
				Getenv:     func(key string) string { return tt.env[key] },
				IsTerminal: func() bool { return tt.terminal },
			})

			opts := options.Program{
				Parameters: options.Parameters{Input: tt.inputFile, Frontend: tt.frontendOpt},
			}
			assert.Equal(t, tt.wantFrontend, d.Detect(opts))
		})
	}
}
