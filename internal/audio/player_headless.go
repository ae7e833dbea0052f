//go:build headless

package audio

// Player tracks the buzzer state without an audio device.
type Player struct {
	tone *Tone
}

// NewPlayer returns a player that produces no output.
func NewPlayer() (*Player, error) {
	return &Player{tone: NewTone(SampleRate, Frequency)}, nil
}

// PauseAudio implements machine.Speaker.
func (p *Player) PauseAudio(pause bool) {
	p.tone.SetEnabled(!pause)
}

// Close implements io.Closer.
func (p *Player) Close() error { return nil }
