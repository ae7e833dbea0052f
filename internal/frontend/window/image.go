package window

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/retroenv/retrochip8/internal/machine"
)

// Display colors of lit and unlit pixels.
var (
	foreground = color.RGBA{R: 0xE0, G: 0xF0, B: 0xD0, A: 0xFF}
	background = color.RGBA{R: 0x10, G: 0x18, B: 0x10, A: 0xFF}
)

// fillPixels converts the framebuffer to RGBA pixel data of Width*Height*4
// bytes.
func fillPixels(dst []byte, screen *machine.Framebuffer) {
	for i, lit := range screen {
		c := background
		if lit {
			c = foreground
		}
		offset := i * 4
		dst[offset] = c.R
		dst[offset+1] = c.G
		dst[offset+2] = c.B
		dst[offset+3] = c.A
	}
}

// screenshotPNG encodes the framebuffer as PNG image, every display pixel
// is scaled to a square of scale image pixels.
func screenshotPNG(screen *machine.Framebuffer, scale int) ([]byte, error) {
	scale = max(scale, 1)
	img := image.NewPaletted(image.Rect(0, 0, machine.Width*scale, machine.Height*scale),
		color.Palette{background, foreground})

	for y := range machine.Height * scale {
		for x := range machine.Width * scale {
			if screen.Pixel(x/scale, y/scale) {
				img.SetColorIndex(x, y, 1)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding screenshot: %w", err)
	}
	return buf.Bytes(), nil
}
