package machine

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Framebuffer is the monochrome display, stored row-major with one entry per
// pixel that is true when the pixel is lit.
type Framebuffer [Width * Height]bool

// Pixel returns whether the pixel at the given coordinates is lit.
// Coordinates wrap around the display edges.
func (f *Framebuffer) Pixel(x, y int) bool {
	return f[index(x, y)]
}

// Lit returns the number of lit pixels.
func (f *Framebuffer) Lit() int {
	count := 0
	for _, on := range f {
		if on {
			count++
		}
	}
	return count
}

// flip XORs the pixel at the given coordinates and returns true if a lit
// pixel was turned off.
func (f *Framebuffer) flip(x, y int) bool {
	i := index(x, y)
	collision := f[i]
	f[i] = !f[i]
	return collision
}

func index(x, y int) int {
	x %= Width
	if x < 0 {
		x += Width
	}
	y %= Height
	if y < 0 {
		y += Height
	}
	return y*Width + x
}
