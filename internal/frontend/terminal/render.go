package terminal

import (
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
)

// Half block characters combine two display rows into one text row.
const (
	blockEmpty = " "
	blockUpper = "▀"
	blockLower = "▄"
	blockFull  = "█"
)

// renderText converts the framebuffer into Height/2 lines of text, every
// line is terminated by CR LF as the terminal is in raw mode.
func renderText(screen *machine.Framebuffer) string {
	var sb strings.Builder
	sb.Grow(machine.Height / 2 * (machine.Width*len(blockFull) + 2))

	for y := 0; y < machine.Height; y += 2 {
		for x := range machine.Width {
			upper := screen.Pixel(x, y)
			lower := screen.Pixel(x, y+1)

			switch {
			case upper && lower:
				sb.WriteString(blockFull)
			case upper:
				sb.WriteString(blockUpper)
			case lower:
				sb.WriteString(blockLower)
			default:
				sb.WriteString(blockEmpty)
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}
