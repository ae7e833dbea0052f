package machine

// mockKeyPad is a keypad with settable key state that records queries.
type mockKeyPad struct {
	pressed [16]bool
	queries []uint8
}

func (k *mockKeyPad) IsKeyPressed(key uint8) bool {
	k.queries = append(k.queries, key)
	return k.pressed[key&0xF]
}

// mockSpeaker records every audio notification.
type mockSpeaker struct {
	calls []bool
}

func (s *mockSpeaker) PauseAudio(pause bool) {
	s.calls = append(s.calls, pause)
}

// fixedRandom returns the same value for every request.
type fixedRandom uint32

func (r fixedRandom) Uint32() uint32 {
	return uint32(r)
}

// newTestMachine returns a machine with the program loaded at ProgramStart.
func newTestMachine(program ...byte) *Machine {
	m := New()
	if err := m.Load(program); err != nil {
		panic(err)
	}
	return m
}
