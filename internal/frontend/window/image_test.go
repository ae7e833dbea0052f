package window

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
)

func TestFillPixels(t *testing.T) {
	var screen machine.Framebuffer
	screen[1] = true

	pixels := make([]byte, machine.Width*machine.Height*4)
	fillPixels(pixels, &screen)

	assert.Equal(t, []byte{background.R, background.G, background.B, 0xFF}, pixels[0:4])
	assert.Equal(t, []byte{foreground.R, foreground.G, foreground.B, 0xFF}, pixels[4:8])
}

func TestScreenshotPNG(t *testing.T) {
	var screen machine.Framebuffer
	screen[0] = true
	screen[machine.Width*machine.Height-1] = true

	data, err := screenshotPNG(&screen, 3)
	assert.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, machine.Width*3, bounds.Dx())
	assert.Equal(t, machine.Height*3, bounds.Dy())

	lit := func(x, y int) bool {
		r, _, _, _ := img.At(x, y).RGBA()
		return r>>8 == uint32(foreground.R)
	}
	assert.True(t, lit(0, 0))
	assert.True(t, lit(2, 2))
	assert.False(t, lit(3, 0))
	assert.True(t, lit(machine.Width*3-1, machine.Height*3-1))
}
