package machine

import (
	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrogolib/log"
)

// spriteWidth is the width of every sprite in pixels.
const spriteWidth = 8

// Step fetches, decodes and executes the instruction at the program counter
// and returns it. While the wait-key latch is set no instruction is executed
// and false is returned.
func (m *Machine) Step() (chip8.Instruction, bool) {
	if m.waiting {
		return chip8.Instruction{}, false
	}
	ins := chip8.Decode(m.Opcode())
	m.Execute(ins)
	return ins, true
}

// Execute applies a decoded instruction to the machine state. The program
// counter is advanced past the instruction before its effect is applied, so
// jumps, calls and skips see the address of the following instruction.
//
//nolint:funlen,cyclop // one case per instruction shape
func (m *Machine) Execute(ins chip8.Instruction) {
	address := m.pc
	m.setPC(m.pc + InstructionSize)

	x, y := ins.X&0xF, ins.Y&0xF

	switch ins.Op {
	case chip8.Cls:
		m.screen = Framebuffer{}

	case chip8.Ret:
		if m.sp == 0 {
			return
		}
		m.sp--
		m.setPC(m.stack[m.sp])

	case chip8.Jp:
		m.setPC(ins.NNN)

	case chip8.Call:
		if m.sp == StackSize {
			return
		}
		m.stack[m.sp] = m.pc
		m.sp++
		m.setPC(ins.NNN)

	case chip8.Se:
		m.skipIf(m.v[x] == ins.KK)
	case chip8.Sne:
		m.skipIf(m.v[x] != ins.KK)
	case chip8.SeVxVy:
		m.skipIf(m.v[x] == m.v[y])
	case chip8.SneVxVy:
		m.skipIf(m.v[x] != m.v[y])

	case chip8.LdVx:
		m.v[x] = ins.KK
	case chip8.Add:
		m.v[x] += ins.KK // no carry flag for the immediate form
	case chip8.LdVxVy:
		m.v[x] = m.v[y]

	case chip8.Or:
		m.v[x] |= m.v[y]
	case chip8.And:
		m.v[x] &= m.v[y]
	case chip8.Xor:
		m.v[x] ^= m.v[y]

	case chip8.AddVxVy:
		old := m.v[x]
		sum := old + m.v[y]
		m.v[x] = sum
		m.v[FlagRegister] = flag(old > sum)

	case chip8.Sub:
		vx, vy := m.v[x], m.v[y]
		m.v[x] = vx - vy
		m.v[FlagRegister] = flag(vx > vy)

	case chip8.Subn:
		vx, vy := m.v[x], m.v[y]
		m.v[x] = vy - vx
		m.v[FlagRegister] = flag(vy > vx)

	case chip8.Shr:
		vx := m.v[x]
		m.v[x] = vx >> 1
		m.v[FlagRegister] = vx & 0x01

	case chip8.Shl:
		vx := m.v[x]
		m.v[x] = vx << 1
		m.v[FlagRegister] = vx >> 7

	case chip8.LdI:
		m.i = ins.NNN

	case chip8.JpV0:
		m.setPC(uint16(m.v[0]) + ins.NNN)

	case chip8.Rnd:
		m.v[x] = uint8(m.random.Uint32()) & ins.KK

	case chip8.Drw:
		m.draw(x, y, ins.N)

	case chip8.Skp:
		m.skipIf(m.keys.IsKeyPressed(m.v[x] & 0xF))
	case chip8.Sknp:
		m.skipIf(!m.keys.IsKeyPressed(m.v[x] & 0xF))

	case chip8.LdVxDT:
		m.v[x] = m.delayTimer
	case chip8.LdVxK:
		m.waiting = true
		m.waitRegister = x
	case chip8.LdDTVx:
		m.delayTimer = m.v[x]
	case chip8.LdSTVx:
		m.soundTimer = m.v[x]

	case chip8.AddIVx:
		m.i += uint16(m.v[x])
	case chip8.LdFVx:
		m.i = glyphAddress(m.v[x])
	case chip8.LdBVx:
		m.storeBCD(m.v[x])

	case chip8.LdIVx:
		for r := range x + 1 {
			m.write(m.i+uint16(r), m.v[r])
		}
	case chip8.LdVxI:
		for r := range x + 1 {
			m.v[r] = m.read(m.i + uint16(r))
		}

	default:
		if m.logger != nil {
			m.logger.Debug("Skipping unknown instruction",
				log.Hex("address", address),
				log.Hex("opcode", ins.Word))
		}
	}
}

// skipIf skips the next instruction when the condition holds.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.setPC(m.pc + InstructionSize)
	}
}

// draw XORs a sprite of the given number of rows read from memory at I onto
// the display at (Vx, Vy). Coordinates wrap around the display edges. VF is
// set if any lit pixel was turned off.
func (m *Machine) draw(x, y, rows uint8) {
	originX := int(m.v[x])
	originY := int(m.v[y])
	collision := false

	for row := range int(rows) {
		sprite := m.read(m.i + uint16(row))
		for col := range spriteWidth {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			if m.screen.flip(originX+col, originY+row) {
				collision = true
			}
		}
	}

	m.v[FlagRegister] = flag(collision)
}

// storeBCD writes the hundreds, tens and units digits of value to memory at
// I, I+1 and I+2.
func (m *Machine) storeBCD(value uint8) {
	m.write(m.i, value/100)
	m.write(m.i+1, (value/10)%10)
	m.write(m.i+2, value%10)
}

func flag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
