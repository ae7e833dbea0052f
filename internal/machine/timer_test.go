package machine

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecrementTimers(t *testing.T) {
	speaker := &mockSpeaker{}
	m := New(WithSpeaker(speaker))
	m.delayTimer = 2
	m.soundTimer = 1

	m.DecrementTimers()
	assert.Equal(t, uint8(1), m.DelayTimer())
	assert.Equal(t, uint8(0), m.SoundTimer())

	m.DecrementTimers()
	assert.Equal(t, uint8(0), m.DelayTimer())
	assert.Equal(t, uint8(0), m.SoundTimer())

	m.DecrementTimers()
	assert.Equal(t, uint8(0), m.DelayTimer())
	assert.Equal(t, uint8(0), m.SoundTimer())

	assert.Equal(t, []bool{true, true, true}, speaker.calls)
}

func TestDecrementTimersSpeaker(t *testing.T) {
	speaker := &mockSpeaker{}
	m := New(WithSpeaker(speaker))

	m.v[0] = 3
	m.Execute(chip8.Decode(0xF018)) // ld ST, V0

	for range 4 {
		m.DecrementTimers()
	}
	assert.Equal(t, []bool{false, false, true, true}, speaker.calls)
}

func TestWaitKeyLatch(t *testing.T) {
	m := newTestMachine(
		0xF5, 0x0A, // ld V5, K
		0x60, 0x01, // ld V0, $01
	)

	_, ok := m.Step()
	assert.True(t, ok)
	register, waiting := m.WaitingKey()
	assert.True(t, waiting)
	assert.Equal(t, uint8(5), register)
	assert.Equal(t, uint16(0x202), m.PC())

	_, ok = m.Step()
	assert.False(t, ok)
	assert.Equal(t, uint16(0x202), m.PC())
	assert.Equal(t, uint8(0), m.V(0))

	assert.True(t, m.DeliverKey(0xB))
	assert.Equal(t, uint8(0xB), m.V(5))
	_, waiting = m.WaitingKey()
	assert.False(t, waiting)

	_, ok = m.Step()
	assert.True(t, ok)
	assert.Equal(t, uint8(1), m.V(0))
}

func TestWaitKeyTimersKeepRunning(t *testing.T) {
	m := newTestMachine(0xF0, 0x0A)
	m.delayTimer = 3
	m.Step()

	m.DecrementTimers()
	_, ok := m.Step()
	assert.False(t, ok)
	assert.Equal(t, uint8(2), m.DelayTimer())
}

func TestDeliverKey(t *testing.T) {
	m := New()
	assert.False(t, m.DeliverKey(3))
	assert.Equal(t, uint8(0), m.V(0))

	m.Execute(chip8.Decode(0xF20A))
	assert.True(t, m.DeliverKey(0x1C))
	assert.Equal(t, uint8(0xC), m.V(2))
	assert.False(t, m.DeliverKey(4))
	assert.Equal(t, uint8(0xC), m.V(2))
}
