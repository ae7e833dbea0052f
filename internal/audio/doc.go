// Package audio produces the CHIP-8 buzzer tone.
//
// The machine only knows whether the sound timer is running. A Player turns
// these notifications into a continuous sine tone that is gated
// on and off, so that the output device is opened once and never stalls the
// emulation:
//
//	player, err := audio.NewPlayer()
//	if err != nil {
//		return err
//	}
//	defer player.Close()
//	m := machine.New(machine.WithSpeaker(player))
//
// Builds with the headless tag use a Player without an output device.
package audio
