package audio

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

// Tone output parameters.
const (
	SampleRate = 44100
	Frequency  = 1000
	Volume     = 0.25

	bytesPerSample = 4 // mono float32
)

// Tone is an io.Reader that generates a sine wave as little-endian float32
// samples. While the tone is disabled silence is generated.
type Tone struct {
	enabled atomic.Bool

	phase float64 // only accessed by the reading goroutine
	step  float64
}

// NewTone returns a disabled tone of the given frequency.
func NewTone(sampleRate, frequency int) *Tone {
	return &Tone{
		step: 2 * math.Pi * float64(frequency) / float64(sampleRate),
	}
}

// SetEnabled switches the tone on or off. It is safe to call concurrently
// with Read.
func (t *Tone) SetEnabled(enabled bool) {
	t.enabled.Store(enabled)
}

// Enabled returns whether the tone is audible.
func (t *Tone) Enabled() bool {
	return t.enabled.Load()
}

// Read fills p with as many complete samples as fit.
func (t *Tone) Read(p []byte) (int, error) {
	n := len(p) / bytesPerSample * bytesPerSample
	enabled := t.enabled.Load()

	for offset := 0; offset < n; offset += bytesPerSample {
		var sample float32
		if enabled {
			sample = float32(math.Sin(t.phase)) * Volume
			t.phase += t.step
			if t.phase >= 2*math.Pi {
				t.phase -= 2 * math.Pi
			}
		}
		binary.LittleEndian.PutUint32(p[offset:], math.Float32bits(sample))
	}
	return n, nil
}
