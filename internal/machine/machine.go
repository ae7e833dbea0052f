package machine

import (
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 memory layout and register file constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// AddressMask keeps addresses and the program counter within memory.
	AddressMask = MemorySize - 1

	// ProgramStart is the address that programs are loaded to and where
	// execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontStart is the address of the first built-in font glyph.
	FontStart = 0x050

	// FontGlyphSize is the number of bytes of a single font glyph.
	FontGlyphSize = 5

	// FontGlyphCount is the number of built-in font glyphs.
	FontGlyphCount = 16

	// RegisterCount is the number of general purpose V registers.
	RegisterCount = 16

	// FlagRegister is the register index that holds carry, borrow and
	// collision flags.
	FlagRegister = 0xF

	// StackSize is the maximum subroutine nesting depth.
	StackSize = 16

	// InstructionSize is the size of an instruction word in bytes.
	InstructionSize = 2
)

// KeyPad reports the state of the 16-key hexadecimal keypad.
type KeyPad interface {
	// IsKeyPressed returns whether the logical key 0x0-0xF is held.
	IsKeyPressed(key uint8) bool
}

// Speaker is notified about the sound timer state.
type Speaker interface {
	// PauseAudio is called once per timer tick, pause is true while the
	// sound timer is 0.
	PauseAudio(pause bool)
}

// RandomSource provides random numbers for the RND instruction.
// *rand.Rand of math/rand/v2 satisfies it.
type RandomSource interface {
	Uint32() uint32
}

// Machine is the complete state of a CHIP-8 virtual machine.
type Machine struct {
	memory [MemorySize]uint8
	v      [RegisterCount]uint8
	i      uint16
	pc     uint16

	stack [StackSize]uint16
	sp    uint8

	delayTimer uint8
	soundTimer uint8

	screen Framebuffer

	waiting      bool  // wait-key latch is set
	waitRegister uint8 // register that receives the delivered key

	keys    KeyPad
	speaker Speaker
	random  RandomSource
	logger  *log.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithKeyPad sets the keypad that SKP and SKNP query.
func WithKeyPad(keys KeyPad) Option {
	return func(m *Machine) {
		if keys != nil {
			m.keys = keys
		}
	}
}

// WithSpeaker sets the speaker that is notified on every timer tick.
func WithSpeaker(speaker Speaker) Option {
	return func(m *Machine) {
		if speaker != nil {
			m.speaker = speaker
		}
	}
}

// WithRandom sets the random source of the RND instruction.
func WithRandom(random RandomSource) Option {
	return func(m *Machine) {
		if random != nil {
			m.random = random
		}
	}
}

// WithSeed makes the RND instruction deterministic by seeding a PCG source.
func WithSeed(seed uint64) Option {
	return func(m *Machine) {
		m.random = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithLogger sets the logger used to report unknown instructions.
func WithLogger(logger *log.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// New returns a machine in its power-on state: memory cleared, font loaded
// and the program counter at ProgramStart.
func New(opts ...Option) *Machine {
	m := &Machine{
		keys:    releasedKeys{},
		speaker: silentSpeaker{},
		random:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Reset()
	return m
}

// Reset restores the power-on state. Collaborators are kept, a previously
// loaded program is erased and has to be loaded again.
func (m *Machine) Reset() {
	m.memory = [MemorySize]uint8{}
	copy(m.memory[FontStart:], font[:])
	m.v = [RegisterCount]uint8{}
	m.i = 0
	m.pc = ProgramStart
	m.stack = [StackSize]uint16{}
	m.sp = 0
	m.delayTimer = 0
	m.soundTimer = 0
	m.screen = Framebuffer{}
	m.waiting = false
	m.waitRegister = 0
}

// Load copies the program into memory starting at ProgramStart. Programs
// larger than MaxProgramSize are rejected without modifying memory.
func (m *Machine) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}
	copy(m.memory[ProgramStart:], program)
	return nil
}

// Opcode returns the big-endian instruction word at the program counter.
func (m *Machine) Opcode() uint16 {
	return uint16(m.read(m.pc))<<8 | uint16(m.read(m.pc+1))
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// I returns the address register.
func (m *Machine) I() uint16 {
	return m.i
}

// V returns the value of the general purpose register x.
func (m *Machine) V(x uint8) uint8 {
	return m.v[x&0xF]
}

// SP returns the stack pointer, the number of active subroutine calls.
func (m *Machine) SP() uint8 {
	return m.sp
}

// DelayTimer returns the delay timer.
func (m *Machine) DelayTimer() uint8 {
	return m.delayTimer
}

// SoundTimer returns the sound timer.
func (m *Machine) SoundTimer() uint8 {
	return m.soundTimer
}

// Memory returns the byte at the given address.
func (m *Machine) Memory(address uint16) uint8 {
	return m.read(address)
}

// Framebuffer returns a snapshot of the display.
func (m *Machine) Framebuffer() Framebuffer {
	return m.screen
}

func (m *Machine) read(address uint16) uint8 {
	return m.memory[address&AddressMask]
}

func (m *Machine) write(address uint16, value uint8) {
	m.memory[address&AddressMask] = value
}

// setPC assigns the program counter, keeping it within memory.
func (m *Machine) setPC(address uint16) {
	m.pc = address & AddressMask
}

type releasedKeys struct{}

func (releasedKeys) IsKeyPressed(uint8) bool { return false }

type silentSpeaker struct{}

func (silentSpeaker) PauseAudio(bool) {}
