//go:build !headless

package audio

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Player plays the buzzer tone on the default audio device.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	tone   *Tone
	mutex  sync.Mutex
}

// NewPlayer opens the audio device and starts playing the gated tone.
func NewPlayer() (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	p := &Player{
		ctx:  ctx,
		tone: NewTone(SampleRate, Frequency),
	}
	p.player = ctx.NewPlayer(p.tone)
	p.player.Play()
	return p, nil
}

// PauseAudio implements machine.Speaker.
func (p *Player) PauseAudio(pause bool) {
	p.tone.SetEnabled(!pause)
}

// Close stops the playback.
func (p *Player) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.player == nil {
		return nil
	}
	err := p.player.Close()
	p.player = nil
	if err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
