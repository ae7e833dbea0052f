package machine

// DecrementTimers decrements the delay and sound timers if they are not 0
// and notifies the speaker whether the tone should be paused. The caller
// invokes it at 60 Hz.
func (m *Machine) DecrementTimers() {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}
	m.speaker.PauseAudio(m.soundTimer == 0)
}

// WaitingKey returns the register that waits for a key press and whether
// the wait-key latch is set.
func (m *Machine) WaitingKey() (uint8, bool) {
	return m.waitRegister, m.waiting
}

// DeliverKey completes a pending key wait by writing the key into the waiting
// register and clearing the latch. It returns false and changes nothing if
// no key wait is pending.
func (m *Machine) DeliverKey(key uint8) bool {
	if !m.waiting {
		return false
	}
	m.v[m.waitRegister] = key & 0xF
	m.waiting = false
	m.waitRegister = 0
	return true
}
